package wiki

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/inbucket/html2text"
	"github.com/sandevgo/wikirag/internal/config"
	"github.com/sandevgo/wikirag/internal/core"
	"github.com/sandevgo/wikirag/pkg/log"
	"github.com/sandevgo/wikirag/pkg/retry"
)

// Client loads pages through the MediaWiki Action API: a title search
// followed by an extract fetch per matching page. It implements
// core.PageLoader.
type Client struct {
	baseURL    string
	maxDocs    int
	httpClient *http.Client
	retrier    *retry.Retrier
}

func NewClient(cfg *config.AppConfig) *Client {
	return &Client{
		baseURL: fmt.Sprintf("https://%s.wikipedia.org/w/api.php", cfg.Language),
		maxDocs: cfg.MaxDocs,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
		retrier: retry.NewDefaultRetrier(),
	}
}

type searchResponse struct {
	Query struct {
		Search []struct {
			PageID int    `json:"pageid"`
			Title  string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

type pageResponse struct {
	Query struct {
		Pages []struct {
			PageID  int    `json:"pageid"`
			Title   string `json:"title"`
			Extract string `json:"extract"`
			FullURL string `json:"fullurl"`
		} `json:"pages"`
	} `json:"query"`
}

// Load searches for the title and returns one document per matching
// page, best match first. Page HTML is flattened to plain text.
func (c *Client) Load(ctx context.Context, title string) ([]core.Document, error) {
	hits, err := c.search(ctx, title)
	if err != nil {
		return nil, err
	}

	docs := make([]core.Document, 0, len(hits))
	for _, pageID := range hits {
		doc, err := c.fetchPage(ctx, pageID)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	log.FromCtx(ctx).Debug().
		Str("title", title).
		Int("docs", len(docs)).
		Msg("loaded wikipedia pages")
	return docs, nil
}

func (c *Client) search(ctx context.Context, title string) ([]int, error) {
	params := url.Values{
		"action":   {"query"},
		"format":   {"json"},
		"list":     {"search"},
		"srsearch": {title},
		"srlimit":  {strconv.Itoa(c.maxDocs)},
	}

	var resp searchResponse
	if err := c.apiGet(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("failed to search for %q: %w", title, err)
	}

	ids := make([]int, 0, len(resp.Query.Search))
	for _, hit := range resp.Query.Search {
		ids = append(ids, hit.PageID)
	}
	return ids, nil
}

func (c *Client) fetchPage(ctx context.Context, pageID int) (core.Document, error) {
	params := url.Values{
		"action":        {"query"},
		"format":        {"json"},
		"formatversion": {"2"},
		"prop":          {"extracts|info"},
		"inprop":        {"url"},
		"pageids":       {strconv.Itoa(pageID)},
	}

	var resp pageResponse
	if err := c.apiGet(ctx, params, &resp); err != nil {
		return core.Document{}, fmt.Errorf("failed to fetch page %d: %w", pageID, err)
	}
	if len(resp.Query.Pages) == 0 {
		return core.Document{}, fmt.Errorf("page %d not found", pageID)
	}

	page := resp.Query.Pages[0]
	text, err := html2text.FromString(page.Extract, html2text.Options{OmitLinks: true})
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to convert page %d to text: %w", pageID, err)
	}

	return core.NewDocument(text, map[string]any{
		"title":  page.Title,
		"source": page.FullURL,
		"pageid": page.PageID,
	}), nil
}

// apiGet performs a GET with retries on transport errors and 5xx
// responses only; other statuses and malformed bodies fail immediately.
// The JSON body is decoded into out.
func (c *Client) apiGet(ctx context.Context, params url.Values, out any) error {
	requestURL := c.baseURL + "?" + params.Encode()

	var (
		statusCode int
		body       []byte
	)
	err := c.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("User-Agent", core.AppUserAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("server error: status %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read body: %w", err)
		}
		statusCode = resp.StatusCode
		return nil
	})
	if err != nil {
		return err
	}

	if statusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", statusCode)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
