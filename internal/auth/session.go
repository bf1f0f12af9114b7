package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// CookieName is the session cookie written to the client.
const CookieName = "vault-session"

// CookieStore persists the session token in a client-held cookie. The server
// keeps no copy; the cookie is the only storage.
type CookieStore struct {
	secure bool
}

// NewCookieStore creates a cookie store. secure controls the Secure attribute
// and should be true in production.
func NewCookieStore(secure bool) *CookieStore {
	return &CookieStore{secure: secure}
}

// Write stores the token as an HTTP-only, SameSite=Lax cookie for 7 days.
func (s *CookieStore) Write(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(SessionLifetime.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Read retrieves the token from the current request, reporting absence.
func (s *CookieStore) Read(c echo.Context) (string, bool) {
	cookie, err := c.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Clear removes the session cookie (logout).
func (s *CookieStore) Clear(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
