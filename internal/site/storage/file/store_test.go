package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sukrucan/portfolio/internal/content"
	"github.com/sukrucan/portfolio/internal/site/storage"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Parallel()

	store, err := New(filepath.Join(t.TempDir(), "content.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	doc := content.Document{"tr": content.Mapping{"hero_title": content.Scalar{Val: "Merhaba"}}}
	if err := store.Save(context.Background(), doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := content.Text(loaded["tr"]["hero_title"]); got != "Merhaba" {
		t.Fatalf("hero_title = %q, want %q", got, "Merhaba")
	}
}

func TestSavePrettyPrints(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "content.json")
	store, err := New(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	doc := content.Document{"tr": content.Mapping{"a": content.Scalar{Val: "b"}}}
	if err := store.Save(context.Background(), doc); err != nil {
		t.Fatalf("save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Fatalf("stored file is not indented: %q", data)
	}
}

func TestLoadMissingFileReportsErrNoContent(t *testing.T) {
	t.Parallel()

	store, err := New(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Load(context.Background()); !errors.Is(err, storage.ErrNoContent) {
		t.Fatalf("load error = %v, want ErrNoContent", err)
	}
}

func TestLoadMalformedFileFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "content.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}
	store, err := New(path)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if _, err := store.Load(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestNewRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := New("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}
