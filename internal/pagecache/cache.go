package pagecache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sandevgo/wikirag/internal/core"
	"github.com/sandevgo/wikirag/pkg/log"
)

// FileCache wraps a page loader with a title-keyed JSON cache file.
// The whole file is rewritten on every miss, pretty-printed with
// 4-space indentation; concurrent goroutines in one process are
// serialized by a mutex, concurrent processes are last-writer-wins.
type FileCache struct {
	path   string
	loader core.PageLoader
	mu     sync.Mutex
}

func New(path string, loader core.PageLoader) *FileCache {
	return &FileCache{
		path:   path,
		loader: loader,
	}
}

// Load returns the documents for a title. Cache hits return the stored
// documents without touching the loader; misses invoke the loader,
// persist the result and return it. A missing cache file counts as an
// empty cache; any other read or parse failure propagates, as do
// loader errors.
func (c *FileCache) Load(ctx context.Context, title string) ([]core.Document, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cache, err := c.read()
	if err != nil {
		return nil, err
	}

	if docs, ok := cache[title]; ok {
		log.FromCtx(ctx).Debug().Str("title", title).Msg("page cache hit")
		return docs, nil
	}

	fresh, err := c.loader.Load(ctx, title)
	if err != nil {
		return nil, err
	}

	// Round-trip fresh documents through the cache encoding so a miss
	// returns exactly what a later hit will read back (JSON turns
	// numeric metadata into float64 either way).
	docs, err := normalize(fresh)
	if err != nil {
		return nil, err
	}

	cache[title] = docs
	if err := c.write(cache); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().
		Str("title", title).
		Int("docs", len(docs)).
		Msg("page cache filled")
	return docs, nil
}

func normalize(docs []core.Document) ([]core.Document, error) {
	if docs == nil {
		docs = []core.Document{}
	}
	for i := range docs {
		if docs[i].Metadata == nil {
			docs[i].Metadata = make(map[string]any)
		}
	}

	data, err := json.Marshal(docs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal documents: %w", err)
	}
	var normalized []core.Document
	if err := json.Unmarshal(data, &normalized); err != nil {
		return nil, fmt.Errorf("failed to normalize documents: %w", err)
	}
	return normalized, nil
}

func (c *FileCache) read() (map[string][]core.Document, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return make(map[string][]core.Document), nil
		}
		return nil, fmt.Errorf("failed to read page cache: %w", err)
	}

	cache := make(map[string][]core.Document)
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("failed to parse page cache: %w", err)
	}
	return cache, nil
}

func (c *FileCache) write(cache map[string][]core.Document) error {
	// Notebook cache files use 4-space indentation, keep it for interop
	data, err := json.MarshalIndent(cache, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal page cache: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write page cache: %w", err)
	}
	return nil
}
