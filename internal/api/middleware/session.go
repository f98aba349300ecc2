package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// SessionCookie is the cookie carrying the token for browser page routing.
const SessionCookie = "auth_token"

// RequireSession guards browser page routes: requests without a session
// cookie are redirected to loginPath. This is a routing concern only: it
// checks presence, not validity. API authorization is enforced separately by
// Auth on the header.
func RequireSession(loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, loginPath)
			}
			return next(c)
		}
	}
}
