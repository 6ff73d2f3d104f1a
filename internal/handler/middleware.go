package handler

import (
	"strings"

	"github.com/labstack/echo/v4"
)

type TokenCookieReader interface {
	GetSessionToken(echo.Context) (string, error)
}

// SessionMiddleware pulls the bearer token out of the Authorization header,
// falling back to the session cookie, and stashes the raw token on the
// context. Validation happens in the services, not here.
func SessionMiddleware(cookieService TokenCookieReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" && cookieService != nil {
				if t, err := cookieService.GetSessionToken(c); err == nil {
					token = t
				}
			}
			c.Set("token", token)
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}
