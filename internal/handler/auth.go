package handler

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/haarala/answerhub/internal/store"

	"github.com/labstack/echo/v4"
)

type AuthServicer interface {
	SignIn(ctx context.Context, username, password string) (*store.SessionWithUser, error)
	SignOut(ctx context.Context, token string) (*store.SessionWithUser, error)
}

type AuthCookieServicer interface {
	SetSessionCookie(c echo.Context, token string, expires time.Time) error
	RemoveSessionCookie(echo.Context)
}

func SetupAuthRoutes(
	g *echo.Group,
	authService AuthServicer,
	cookieService AuthCookieServicer,
) {
	h := NewAuthHandler(authService, cookieService)
	g.POST("/user/signin", h.PostSignin)
	g.POST("/user/signout", h.PostSignout)
}

type AuthHandler struct {
	authService   AuthServicer
	cookieService AuthCookieServicer
}

func NewAuthHandler(
	authService AuthServicer,
	cookieService AuthCookieServicer,
) *AuthHandler {
	return &AuthHandler{authService, cookieService}
}

type signinResponse struct {
	ID          string    `json:"id"`
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	Message     string    `json:"message"`
}

type statusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (h *AuthHandler) PostSignin(c echo.Context) error {
	username, password, err := basicCredentials(c)
	if err != nil {
		return err
	}

	su, err := h.authService.SignIn(c.Request().Context(), username, password)
	if err != nil {
		return err
	}

	if err := h.cookieService.SetSessionCookie(
		c, su.Session.Token, su.Session.ExpiresAt,
	); err != nil {
		return echo.NewHTTPError(
			http.StatusInternalServerError, "unable to set session cookie",
		).WithInternal(err)
	}

	c.Response().Header().Set("access-token", su.Session.Token)
	return c.JSON(http.StatusOK, signinResponse{
		ID:          su.User.UUID,
		AccessToken: su.Session.Token,
		ExpiresAt:   su.Session.ExpiresAt,
		Message:     "SIGNED IN SUCCESSFULLY",
	})
}

func (h *AuthHandler) PostSignout(c echo.Context) error {
	su, err := h.authService.SignOut(c.Request().Context(), getCtxToken(c))
	if err != nil {
		return err
	}

	h.cookieService.RemoveSessionCookie(c)
	return c.JSON(http.StatusOK, statusResponse{
		ID:     su.User.UUID,
		Status: "SIGNED OUT SUCCESSFULLY",
	})
}

// basicCredentials decodes the "Basic base64(username:password)" authorization
// header into the credential pair the auth service expects.
func basicCredentials(c echo.Context) (string, string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	encoded, ok := strings.CutPrefix(header, "Basic ")
	if !ok {
		return "", "", echo.NewHTTPError(
			http.StatusBadRequest, "missing basic authorization header",
		)
	}
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", "", echo.NewHTTPError(
			http.StatusBadRequest, "invalid basic authorization header",
		).WithInternal(err)
	}
	username, password, ok := strings.Cut(string(decoded), ":")
	if !ok {
		return "", "", echo.NewHTTPError(
			http.StatusBadRequest, "invalid basic authorization header",
		)
	}
	return username, password, nil
}
