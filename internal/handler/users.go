package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/haarala/answerhub/internal/service"
	"github.com/haarala/answerhub/internal/store"

	"github.com/labstack/echo/v4"
)

type UserServicer interface {
	Signup(ctx context.Context, p service.SignupParams) (*store.User, error)
	GetUserProfile(ctx context.Context, token, userUUID string) (*store.User, error)
	DeleteUser(ctx context.Context, token, userUUID string) (*store.User, error)
}

func SetupUserRoutes(g *echo.Group, userService UserServicer) {
	h := NewUserHandler(userService)
	g.POST("/user/signup", h.PostSignup)
	g.GET("/userprofile/:user_id", h.GetUserProfile)
	g.DELETE("/admin/user/:user_id", h.DeleteUser)
}

type UserHandler struct {
	userService UserServicer
}

func NewUserHandler(userService UserServicer) *UserHandler {
	return &UserHandler{userService}
}

type profileResponse struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	AboutMe       string `json:"about_me"`
	Dob           string `json:"dob"`
	ContactNumber string `json:"contact_number"`
	Country       string `json:"country"`
}

func (h *UserHandler) PostSignup(c echo.Context) error {
	sp := new(SignupParams)
	if err := c.Bind(sp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user data").WithInternal(err)
	}

	u, err := h.userService.Signup(c.Request().Context(), service.SignupParams{
		Username:      sp.Username,
		Email:         sp.Email,
		Password:      sp.Password,
		FirstName:     sp.FirstName,
		LastName:      sp.LastName,
		AboutMe:       sp.AboutMe,
		Dob:           sp.Dob,
		ContactNumber: sp.ContactNumber,
		Country:       sp.Country,
	})
	if err != nil {
		// concurrent signups can get past the service's duplicate checks and
		// trip the unique constraint at insert instead
		if isUniqueConstraintError(err) {
			if strings.Contains(err.Error(), "users.username") {
				return service.ErrUsernameTaken
			}
			return service.ErrEmailRegistered
		}
		return err
	}

	return c.JSON(http.StatusCreated, statusResponse{
		ID:     u.UUID,
		Status: "USER SUCCESSFULLY REGISTERED",
	})
}

func (h *UserHandler) GetUserProfile(c echo.Context) error {
	up := new(UserParams)
	if err := c.Bind(up); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id").WithInternal(err)
	}

	u, err := h.userService.GetUserProfile(c.Request().Context(), getCtxToken(c), up.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		ID:            u.UUID,
		Username:      u.Username,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		AboutMe:       u.AboutMe,
		Dob:           u.Dob,
		ContactNumber: u.ContactNumber,
		Country:       u.Country,
	})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	up := new(UserParams)
	if err := c.Bind(up); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id").WithInternal(err)
	}

	u, err := h.userService.DeleteUser(c.Request().Context(), getCtxToken(c), up.UserID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, statusResponse{
		ID:     u.UUID,
		Status: "USER SUCCESSFULLY DELETED",
	})
}
