// Package storage defines persistence for the site's content document.
package storage

import (
	"context"
	"errors"

	"github.com/sukrucan/portfolio/internal/content"
)

// ErrNoContent indicates no document has been stored yet.
var ErrNoContent = errors.New("no content stored")

// BlobStore persists the full bilingual content document as a single blob.
// Save replaces the stored document wholesale; there are no partial updates
// and no version tokens.
type BlobStore interface {
	Load(ctx context.Context) (content.Document, error)
	Save(ctx context.Context, doc content.Document) error
}
