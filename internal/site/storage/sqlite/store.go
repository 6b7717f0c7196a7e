// Package sqlite persists the content document as a single-row blob in a
// SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/sukrucan/portfolio/internal/content"
	"github.com/sukrucan/portfolio/internal/platform/storage/sqlitemigrate"
	"github.com/sukrucan/portfolio/internal/site/storage"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// The document always lives in the same row; saves replace it wholesale.
const contentRowID = 1

// Store is a SQLite-backed content blob store.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a content SQLite store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("database path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	migrations, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("open migrations: %w", err)
	}
	if err := sqlitemigrate.Apply(sqlDB, migrations); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Load reads and decodes the stored document.
func (s *Store) Load(ctx context.Context) (content.Document, error) {
	var payload []byte
	row := s.sqlDB.QueryRowContext(ctx, "SELECT payload_json FROM content_blobs WHERE id = ?", contentRowID)
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return nil, storage.ErrNoContent
		}
		return nil, fmt.Errorf("read content row: %w", err)
	}
	var doc content.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return nil, fmt.Errorf("decode content row: %w", err)
	}
	return doc, nil
}

// Save replaces the stored document.
func (s *Store) Save(ctx context.Context, doc content.Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO content_blobs (id, payload_json, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET payload_json = excluded.payload_json, updated_at = excluded.updated_at`,
		contentRowID, payload, time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("write content row: %w", err)
	}
	return nil
}
