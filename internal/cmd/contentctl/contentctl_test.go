package contentctl

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/sukrucan/portfolio/internal/content"
)

// contentAPI is a minimal in-memory stand-in for the server's content
// endpoints.
type contentAPI struct {
	mu     sync.Mutex
	doc    content.Document
	secret string
}

func (api *contentAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/content", func(w http.ResponseWriter, _ *http.Request) {
		api.mu.Lock()
		defer api.mu.Unlock()
		json.NewEncoder(w).Encode(api.doc)
	})
	mux.HandleFunc("POST /api/content", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(content.SecretHeader) != api.secret {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "Unauthorized"})
			return
		}
		var doc content.Document
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "Invalid data format"})
			return
		}
		api.mu.Lock()
		api.doc = doc
		api.mu.Unlock()
		json.NewEncoder(w).Encode(map[string]string{"message": "Content updated successfully"})
	})
	return mux
}

func (api *contentAPI) snapshot() content.Document {
	api.mu.Lock()
	defer api.mu.Unlock()
	return api.doc.Clone()
}

func newTestAPI(t *testing.T) (*contentAPI, Config) {
	t.Helper()
	api := &contentAPI{
		secret: "test-secret",
		doc: content.Document{
			"tr": content.Mapping{
				"hero_title": content.Scalar{Val: "Merhaba"},
				"blog_list": content.Sequence{
					content.Mapping{"id": content.Scalar{Val: "100"}, "title": content.Scalar{Val: "İlk"}},
				},
			},
			"en": content.Mapping{"hero_title": content.Scalar{Val: "Hello"}},
		},
	}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)
	return api, Config{ServerURL: srv.URL, AdminSecret: "test-secret"}
}

func TestRunGetPrintsResolvedValue(t *testing.T) {
	t.Parallel()

	_, cfg := newTestAPI(t)
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, []string{"get", "en", "hero_title"}, &out); err != nil {
		t.Fatalf("run get: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != `"Hello"` {
		t.Fatalf("output = %q, want %q", got, `"Hello"`)
	}
}

func TestRunGetUnresolvedPathFails(t *testing.T) {
	t.Parallel()

	_, cfg := newTestAPI(t)
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, []string{"get", "en", "missing.key"}, &out); err == nil {
		t.Fatal("get succeeded for an unresolved path")
	}
}

func TestRunSetPersistsScalar(t *testing.T) {
	t.Parallel()

	api, cfg := newTestAPI(t)
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, []string{"set", "tr", "hero_title", "Selam"}, &out); err != nil {
		t.Fatalf("run set: %v", err)
	}
	doc := api.snapshot()
	if got := content.Text(doc["tr"]["hero_title"]); got != "Selam" {
		t.Fatalf("hero_title = %q, want %q", got, "Selam")
	}
}

func TestRunSetMergesListItemByID(t *testing.T) {
	t.Parallel()

	api, cfg := newTestAPI(t)
	var out bytes.Buffer
	err := Run(context.Background(), cfg, []string{"set", "tr", "blog_list.100", `{"title":"Güncel"}`}, &out)
	if err != nil {
		t.Fatalf("run set: %v", err)
	}
	doc := api.snapshot()
	list, _ := doc["tr"]["blog_list"].(content.Sequence)
	if len(list) != 1 {
		t.Fatalf("blog_list has %d items, want 1", len(list))
	}
	item, _ := list[0].(content.Mapping)
	if got := content.Text(item["title"]); got != "Güncel" {
		t.Fatalf("title = %q, want %q", got, "Güncel")
	}
	if id, _ := content.ItemID(item); id != "100" {
		t.Fatalf("id = %q, want preserved %q", id, "100")
	}
}

func TestRunAddAppendsItemWithID(t *testing.T) {
	t.Parallel()

	api, cfg := newTestAPI(t)
	var out bytes.Buffer
	err := Run(context.Background(), cfg, []string{"add", "tr", "blog_list", `{"title":"Yeni"}`}, &out)
	if err != nil {
		t.Fatalf("run add: %v", err)
	}
	doc := api.snapshot()
	list, _ := doc["tr"]["blog_list"].(content.Sequence)
	if len(list) != 2 {
		t.Fatalf("blog_list has %d items, want 2", len(list))
	}
	added, _ := list[1].(content.Mapping)
	if id, ok := content.ItemID(added); !ok || id == "" {
		t.Fatal("added item has no id")
	}
}

func TestRunRemoveDeletesByPosition(t *testing.T) {
	t.Parallel()

	api, cfg := newTestAPI(t)
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, []string{"remove", "tr", "blog_list", "0"}, &out); err != nil {
		t.Fatalf("run remove: %v", err)
	}
	doc := api.snapshot()
	list, _ := doc["tr"]["blog_list"].(content.Sequence)
	if len(list) != 0 {
		t.Fatalf("blog_list has %d items, want 0", len(list))
	}
}

func TestRunRejectsUnknownSubcommand(t *testing.T) {
	t.Parallel()

	_, cfg := newTestAPI(t)
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, []string{"frobnicate"}, &out); err == nil {
		t.Fatal("unknown subcommand accepted")
	}
}

func TestRunSetWrongSecretSurfacesPersistError(t *testing.T) {
	t.Parallel()

	_, cfg := newTestAPI(t)
	cfg.AdminSecret = "wrong"
	var out bytes.Buffer
	err := Run(context.Background(), cfg, []string{"set", "tr", "hero_title", "Selam"}, &out)
	if err == nil {
		t.Fatal("set succeeded with the wrong secret")
	}
	if !strings.Contains(err.Error(), "Unauthorized") {
		t.Fatalf("error = %q, want it to carry the server message", err)
	}
}

func TestParseConfigFlagsAndArgs(t *testing.T) {
	fs := flag.NewFlagSet("contentctl", flag.ContinueOnError)
	cfg, args, err := ParseConfig(fs, []string{"-server-url", "http://example.test", "get", "tr", "hero_title"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.ServerURL != "http://example.test" {
		t.Fatalf("ServerURL = %q, want flag value", cfg.ServerURL)
	}
	want := []string{"get", "tr", "hero_title"}
	if len(args) != len(want) {
		t.Fatalf("args = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Fatalf("args = %v, want %v", args, want)
		}
	}
}
