// Package file persists the content document as a pretty-printed JSON file.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sukrucan/portfolio/internal/content"
	"github.com/sukrucan/portfolio/internal/site/storage"
)

// Store is a JSON-file-backed content blob store.
type Store struct {
	path string
}

// New builds a store writing to path. The parent directory must exist.
func New(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("content path is required")
	}
	return &Store{path: filepath.Clean(path)}, nil
}

// Load reads and decodes the stored document.
func (s *Store) Load(_ context.Context) (content.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNoContent
		}
		return nil, fmt.Errorf("read content file: %w", err)
	}
	var doc content.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode content file: %w", err)
	}
	return doc, nil
}

// Save replaces the stored document. The file is written through a temp
// file and renamed so a crash mid-write never leaves a torn document.
func (s *Store) Save(_ context.Context, doc content.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".content-*.json")
	if err != nil {
		return fmt.Errorf("create temp content file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write content file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close content file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace content file: %w", err)
	}
	return nil
}
