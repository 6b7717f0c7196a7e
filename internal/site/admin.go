package site

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/sukrucan/portfolio/internal/site/platform/admintoken"
	apperrors "github.com/sukrucan/portfolio/internal/site/platform/errors"
	"github.com/sukrucan/portfolio/internal/site/platform/httpx"
)

// handleAdminLogin exchanges the shared secret for an admin session cookie so
// the editor does not resend the secret on every request.
func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Secret string `json:"secret"`
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 4096))
	if err != nil || json.Unmarshal(body, &payload) != nil {
		writeAPIError(w, apperrors.E(apperrors.KindInvalidInput, "Invalid data format"))
		return
	}
	if subtle.ConstantTimeCompare([]byte(payload.Secret), []byte(s.secret)) != 1 {
		writeAPIError(w, apperrors.E(apperrors.KindUnauthorized, "Unauthorized"))
		return
	}
	token, err := admintoken.Mint(s.secret, time.Now(), admintoken.DefaultTTL)
	if err != nil {
		s.logger.Printf("mint admin token: %v", err)
		writeAPIError(w, apperrors.E(apperrors.KindUnknown, "Error creating session"))
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     admintoken.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(admintoken.DefaultTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
}

// handleAdminLogout clears the admin session cookie.
func (s *Server) handleAdminLogout(w http.ResponseWriter, _ *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     admintoken.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
