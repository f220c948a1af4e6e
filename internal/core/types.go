package core

const (
	AppName          = "WikiRAG"
	AppUserAgent     = "WikiRAG-Toolkit/0.1"
	AppRepositoryURL = "https://github.com/sandevgo/wikirag"
	AppVersion       = "0.1.0"
)

// Chat roles as stored in session history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Document is the unit exchanged between loading, splitting and
// concatenation. The JSON field names match the cache files produced
// by the original notebook, so existing caches stay readable.
type Document struct {
	PageContent string         `json:"page_content"`
	Metadata    map[string]any `json:"metadata"`
}

// NewDocument returns a Document with a non-nil metadata map.
func NewDocument(content string, metadata map[string]any) Document {
	if metadata == nil {
		metadata = make(map[string]any)
	}
	return Document{PageContent: content, Metadata: metadata}
}

// CloneMetadata returns a shallow copy of the document metadata.
// Splitting one document into many chunks must not share one map.
func (d Document) CloneMetadata() map[string]any {
	meta := make(map[string]any, len(d.Metadata))
	for k, v := range d.Metadata {
		meta[k] = v
	}
	return meta
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
