// Package guest backs the anonymous reviewer identity with client-side storage.
package guest

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"spinrate/config"
	"spinrate/internal/domain/service"
)

// HeaderGuestID lets non-browser clients carry the guest identifier explicitly.
const HeaderGuestID = "X-Guest-Id"

// Browsers cap cookie lifetime at 400 days.
const cookieMaxAge = 400 * 24 * time.Hour

var validGuestID = regexp.MustCompile(`^[A-Za-z0-9-]{8,128}$`)

// CookieStoreFactory binds a GuestStore to one HTTP exchange.
type CookieStoreFactory struct {
	cookieName string
	secure     bool
}

// NewCookieStoreFactory creates a factory from the guest configuration.
func NewCookieStoreFactory(cfg *config.Config) *CookieStoreFactory {
	factory := &CookieStoreFactory{cookieName: config.DefaultGuestCookieName}
	if cfg.Guest != nil {
		if cfg.Guest.CookieName != "" {
			factory.cookieName = cfg.Guest.CookieName
		}
		factory.secure = cfg.Guest.Secure
	}

	return factory
}

// For returns the store for the given request and its response writer.
func (f *CookieStoreFactory) For(w http.ResponseWriter, r *http.Request) service.GuestStore {
	return &cookieStore{
		w:          w,
		r:          r,
		cookieName: f.cookieName,
		secure:     f.secure,
	}
}

type cookieStore struct {
	w          http.ResponseWriter
	r          *http.Request
	cookieName string
	secure     bool
}

// Load prefers the explicit header over the cookie. Malformed values count as absent.
func (s *cookieStore) Load(_ context.Context) (string, error) {
	if id := s.r.Header.Get(HeaderGuestID); validGuestID.MatchString(id) {
		return id, nil
	}

	cookie, err := s.r.Cookie(s.cookieName)
	if err != nil {
		return "", nil
	}
	if !validGuestID.MatchString(cookie.Value) {
		return "", nil
	}

	return cookie.Value, nil
}

// Save sets a long-lived cookie and echoes the identifier in the response header.
func (s *cookieStore) Save(_ context.Context, id string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     s.cookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(cookieMaxAge.Seconds()),
	})
	s.w.Header().Set(HeaderGuestID, id)

	return nil
}
