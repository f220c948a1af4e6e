package core

import "context"

// PageLoader loads the documents for a page title from a remote source.
type PageLoader interface {
	Load(ctx context.Context, title string) ([]Document, error)
}

// MessagesRepository is a persistent variant of the in-memory session
// store, keeping the same append/list contract.
type MessagesRepository interface {
	AddMessage(ctx context.Context, sessionID string, msg Message) error
	GetMessages(ctx context.Context, sessionID string, limit int) ([]Message, error)
}
