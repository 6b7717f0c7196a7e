package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SecretHeader carries the shared admin secret on persist requests.
const SecretHeader = "X-Admin-Secret"

// Client is the remote content store: a whole-document blob with fetch and
// replace semantics. There is no partial update and no concurrency token;
// the last writer wins.
type Client interface {
	Fetch(ctx context.Context) (Document, error)
	Persist(ctx context.Context, doc Document) error
}

// HTTPClient speaks the content API of a running portfolio server.
type HTTPClient struct {
	baseURL string
	secret  string
	httpc   *http.Client
}

// NewHTTPClient builds a client for the content API at baseURL. The secret
// authenticates persist calls.
func NewHTTPClient(baseURL, secret string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		secret:  secret,
		httpc:   &http.Client{},
	}
}

// Fetch retrieves the full bilingual document.
func (c *HTTPClient) Fetch(ctx context.Context) (Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/content", nil)
	if err != nil {
		return nil, fmt.Errorf("build fetch request: %w", err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch content: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch content: %s", responseError(resp))
	}
	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return doc, nil
}

// Persist replaces the stored document with doc. The engine always sends the
// complete document, never a delta.
func (c *HTTPClient) Persist(ctx context.Context, doc Document) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/content", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build persist request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SecretHeader, c.secret)
	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("persist content: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("persist content: %s", responseError(resp))
	}
	return nil
}

func responseError(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var payload struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(body, &payload) == nil && strings.TrimSpace(payload.Error) != "" {
			return fmt.Sprintf("%s (status %d)", payload.Error, resp.StatusCode)
		}
	}
	return fmt.Sprintf("unexpected status %d", resp.StatusCode)
}
