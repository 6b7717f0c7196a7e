// Package i18n resolves the display language for site requests. Turkish is
// the default; English is the alternate. The choice persists in a cookie and
// can be switched with the lang query parameter.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to switch languages.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "site_lang"
)

var supported = []language.Tag{language.Turkish, language.English}

var matcher = language.NewMatcher(supported)

// DefaultTag returns the default language tag.
func DefaultTag() language.Tag {
	return supported[0]
}

// SupportedTags returns the supported language tags, default first.
func SupportedTags() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Code returns the two-letter language code for a supported tag.
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// ParseTag parses value into a supported tag. Unsupported or malformed
// values report false.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Tag{}, false
	}
	parsed, err := language.Parse(value)
	if err != nil {
		return language.Tag{}, false
	}
	parsedBase, _ := parsed.Base()
	for _, tag := range supported {
		base, _ := tag.Base()
		if base == parsedBase {
			return tag, true
		}
	}
	return language.Tag{}, false
}

// MatchTags picks the best supported tag for an Accept-Language preference
// list.
func MatchTags(tags []language.Tag) language.Tag {
	if len(tags) == 0 {
		return DefaultTag()
	}
	_, index, _ := matcher.Match(tags...)
	return supported[index]
}

// ResolveTag determines the language for a request: lang query parameter
// first, then the language cookie, then Accept-Language, then the default.
// The bool reports whether the choice should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return DefaultTag(), false
	}
	if value := strings.TrimSpace(r.URL.Query().Get(LangParam)); value != "" {
		if tag, ok := ParseTag(value); ok {
			return tag, true
		}
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return MatchTags(tags), false
		}
	}
	return DefaultTag(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    Code(tag),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveLanguage resolves the request language as a two-letter code and
// persists an explicit switch.
func ResolveLanguage(w http.ResponseWriter, r *http.Request) string {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Code(tag)
}
