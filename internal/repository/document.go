package repository

import (
	"context"

	"doclib/internal/model"
)

// DocumentRepository is the Document half of the record store.
// No business logic here; strictly record keeping.
type DocumentRepository interface {
	// Create stores a new document with a fresh ID and CreatedAt.
	// There is no uniqueness constraint on title or author.
	Create(ctx context.Context, meta model.DocumentMetadata, file model.FileRef) (*model.Document, error)

	// FindByID returns ErrNotFound when no document has the given ID.
	FindByID(ctx context.Context, id string) (*model.Document, error)

	// List returns all documents in insertion order.
	List(ctx context.Context) ([]model.Document, error)

	// Search returns documents matching q, in insertion order.
	Search(ctx context.Context, q SearchQuery) ([]model.Document, error)

	// Delete removes a document and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)
}

// SearchQuery filters documents.
//
// Text matches when empty, or when it is a case-insensitive substring of the
// title, author, keywords or description. Category, when set, must equal the
// document's category exactly.
type SearchQuery struct {
	Text     string
	Category *string
}
