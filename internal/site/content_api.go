package site

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sukrucan/portfolio/internal/content"
	"github.com/sukrucan/portfolio/internal/site/platform/admintoken"
	apperrors "github.com/sukrucan/portfolio/internal/site/platform/errors"
	"github.com/sukrucan/portfolio/internal/site/platform/httpx"
	"github.com/sukrucan/portfolio/internal/site/storage"
)

// maxContentBytes bounds accepted content payloads. The whole bilingual
// document rides in one request.
const maxContentBytes = 4 << 20

// writeAPIError maps a typed application error onto the JSON wire format.
func writeAPIError(w http.ResponseWriter, err error) {
	_ = httpx.WriteJSONError(w, apperrors.HTTPStatus(err), err.Error())
}

// handleGetContent serves the full stored document. Before the first save
// the static fallback document is returned, so the admin editor always has a
// complete document to start from.
func (s *Server) handleGetContent(w http.ResponseWriter, r *http.Request) {
	doc, err := s.blobs.Load(r.Context())
	if errors.Is(err, storage.ErrNoContent) {
		doc = content.Fallback()
		err = nil
	}
	if err != nil {
		s.logger.Printf("read content: %v", err)
		writeAPIError(w, apperrors.E(apperrors.KindUnknown, "Error reading content"))
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, doc)
}

// handlePostContent replaces the stored document wholesale. There is no
// concurrency token: overlapping writers race and the last one wins.
func (s *Server) handlePostContent(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeAPIError(w, apperrors.E(apperrors.KindUnauthorized, "Unauthorized"))
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxContentBytes))
	if err != nil {
		writeAPIError(w, apperrors.E(apperrors.KindInvalidInput, "Invalid data format"))
		return
	}
	var doc content.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		writeAPIError(w, apperrors.E(apperrors.KindInvalidInput, "Invalid data format"))
		return
	}
	if err := s.blobs.Save(r.Context(), doc); err != nil {
		s.logger.Printf("save content: %v", err)
		writeAPIError(w, apperrors.E(apperrors.KindUnknown, "Error saving content"))
		return
	}
	// Saved documents become visible to server-rendered pages immediately.
	s.engine.Replace(doc)
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Content updated successfully"})
}

// authorized accepts either the shared secret header or a minted admin
// session cookie.
func (s *Server) authorized(r *http.Request) bool {
	if r.Header.Get(content.SecretHeader) == s.secret {
		return true
	}
	cookie, err := r.Cookie(admintoken.CookieName)
	if err != nil {
		return false
	}
	return admintoken.Verify(s.secret, cookie.Value) == nil
}
