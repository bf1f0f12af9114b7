package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"vault/internal/auth"
)

const (
	loginPath   = "/auth/login"
	signupPath  = "/auth/signup"
	landingPath = "/dashboard"
)

// publicPaths are reachable without a session.
var publicPaths = []string{"/", loginPath, signupPath}

// authPaths are the pages an authenticated user is redirected away from.
var authPaths = []string{loginPath, signupPath}

// PathClass is the gate's classification of a request path.
type PathClass int

const (
	PathProtected PathClass = iota
	PathPublic
	PathAuthOnly
	PathAsset
)

// ClassifyPath buckets a request path for the route gate. API, upload, and
// swagger prefixes plus anything with a file extension count as assets and
// bypass the gate; /api enforces its own token check separately.
func ClassifyPath(path string) PathClass {
	if strings.HasPrefix(path, "/api") ||
		strings.HasPrefix(path, "/uploads") ||
		strings.HasPrefix(path, "/swagger") ||
		path == "/healthz" ||
		strings.Contains(path, ".") {
		return PathAsset
	}
	for _, p := range authPaths {
		if path == p {
			return PathAuthOnly
		}
	}
	for _, p := range publicPaths {
		if path == p {
			return PathPublic
		}
	}
	return PathProtected
}

// RouteGate decides allow/redirect for every page navigation based on the
// session cookie. Verification failures degrade to "not authenticated"; the
// gate itself never fails a request.
func RouteGate(tokens *auth.TokenService, cookies *auth.CookieStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			class := ClassifyPath(c.Request().URL.Path)
			if class == PathAsset {
				return next(c)
			}

			authenticated := false
			if token, ok := cookies.Read(c); ok {
				if claims, err := tokens.Verify(token); err == nil {
					authenticated = true
					c.Set("session", claims)
				}
			}

			switch {
			case authenticated && class == PathAuthOnly:
				return c.Redirect(http.StatusFound, landingPath)
			case !authenticated && class == PathProtected:
				return c.Redirect(http.StatusFound, loginPath)
			default:
				return next(c)
			}
		}
	}
}
