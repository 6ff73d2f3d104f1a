package service

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/haarala/answerhub/internal"
	"github.com/haarala/answerhub/internal/settings"
	"github.com/labstack/echo/v4"
)

// CookieService wraps the bearer token in a securecookie for browser clients.
// The Authorization header stays the primary transport; the cookie is a
// fallback read by the session middleware.
type CookieService struct {
	s *securecookie.SecureCookie
}

func NewCookieService(hashKey, blockKey []byte) *CookieService {
	return &CookieService{
		s: securecookie.New(hashKey, blockKey),
	}
}

func (cs *CookieService) GetSessionToken(c echo.Context) (string, error) {
	cookie, err := c.Cookie(internal.SessionCookie)
	if err != nil {
		return "", err
	}
	values := make(map[string]string)
	if err := cs.s.Decode(internal.SessionCookie, cookie.Value, &values); err != nil {
		return "", err
	}
	return values["access_token"], nil
}

func (cs *CookieService) SetSessionCookie(c echo.Context, token string, expires time.Time) error {
	encoded, err := cs.s.Encode(
		internal.SessionCookie,
		map[string]string{"access_token": token},
	)
	if err != nil {
		return err
	}
	cookie := &http.Cookie{
		Name:     internal.SessionCookie,
		Value:    encoded,
		Path:     "/",
		Secure:   settings.Settings.Domain != "localhost",
		HttpOnly: true,
		Expires:  expires,
		Domain:   settings.Settings.Domain,
	}
	c.SetCookie(cookie)
	return nil
}

func (cs *CookieService) RemoveSessionCookie(c echo.Context) {
	cookie := &http.Cookie{
		Name:     internal.SessionCookie,
		Value:    "",
		Path:     "/",
		Secure:   settings.Settings.Domain != "localhost",
		HttpOnly: true,
		Expires:  time.Now().UTC(),
		Domain:   settings.Settings.Domain,
	}
	c.SetCookie(cookie)
}
