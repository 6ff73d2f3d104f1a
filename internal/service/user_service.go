package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"syscall"

	"github.com/haarala/answerhub/internal/security"
	"github.com/haarala/answerhub/internal/store"

	"github.com/google/uuid"
	"golang.org/x/term"
)

type Authenticator interface {
	ValidateSession(ctx context.Context, token string) (*store.User, error)
}

type UserStore interface {
	CreateUser(context.Context, *store.User) (*store.User, error)
	ReadUserByUUID(context.Context, string) (*store.User, error)
	ReadUserByUsername(context.Context, string) (*store.User, error)
	ReadUserByEmail(context.Context, string) (*store.User, error)
	ListAdmins(context.Context) ([]store.User, error)
	DeleteUser(context.Context, int64) error
}

type UserService struct {
	userStore UserStore
	auth      Authenticator
}

func NewUserService(userStore UserStore, auth Authenticator) *UserService {
	return &UserService{userStore: userStore, auth: auth}
}

type SignupParams struct {
	Username      string
	Email         string
	Password      string
	FirstName     string
	LastName      string
	AboutMe       string
	Dob           string
	ContactNumber string
	Country       string
}

// Signup creates a regular user. Duplicate checks run before any hashing, and
// the username check takes precedence over the email check.
func (s *UserService) Signup(ctx context.Context, p SignupParams) (*store.User, error) {
	if _, err := s.userStore.ReadUserByUsername(ctx, p.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if _, err := s.userStore.ReadUserByEmail(ctx, p.Email); err == nil {
		return nil, ErrEmailRegistered
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	salt, err := security.GenerateSalt()
	if err != nil {
		return nil, err
	}

	return s.userStore.CreateUser(ctx, &store.User{
		UUID:          uuid.NewString(),
		Username:      p.Username,
		Email:         p.Email,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		AboutMe:       p.AboutMe,
		Dob:           p.Dob,
		ContactNumber: p.ContactNumber,
		Country:       p.Country,
		Role:          store.RoleUser,
		Salt:          salt,
		PasswordHash:  security.HashPassword(p.Password, salt),
	})
}

// GetUserProfile returns any user's profile to any authenticated user.
func (s *UserService) GetUserProfile(
	ctx context.Context,
	token, userUUID string,
) (*store.User, error) {
	if _, err := s.auth.ValidateSession(ctx, token); err != nil {
		return nil, err
	}
	u, err := s.userStore.ReadUserByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// DeleteUser hard-deletes a user and, via the store's cascades, their sessions,
// questions and answers. Admin only.
func (s *UserService) DeleteUser(
	ctx context.Context,
	token, userUUID string,
) (*store.User, error) {
	actingUser, err := s.auth.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := AuthorizeUserDelete(actingUser); err != nil {
		return nil, err
	}

	target, err := s.userStore.ReadUserByUUID(ctx, userUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.userStore.DeleteUser(ctx, target.UserID); err != nil {
		return nil, err
	}
	return target, nil
}

func (s *UserService) CreateAdmin(
	ctx context.Context,
	username, email, password string,
) (*store.User, error) {
	salt, err := security.GenerateSalt()
	if err != nil {
		return nil, err
	}
	return s.userStore.CreateUser(ctx, &store.User{
		UUID:         uuid.NewString(),
		Username:     username,
		Email:        email,
		Role:         store.RoleAdmin,
		Salt:         salt,
		PasswordHash: security.HashPassword(password, salt),
	})
}

// InitializeAdmin prompts for and creates an admin account on first start.
func (s *UserService) InitializeAdmin(ctx context.Context) {
	admins, err := s.userStore.ListAdmins(ctx)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Fatal(err)
	}
	if len(admins) == 0 {
		fmt.Println("Create an admin user")
		fmt.Print("Username: ")
		var username string
		if _, err := fmt.Scanln(&username); err != nil {
			log.Fatal(err)
		}
		fmt.Print("Email: ")
		var email string
		if _, err := fmt.Scanln(&email); err != nil {
			log.Fatal(err)
		}
		fmt.Print("Password: ")
		passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println()

		if _, err := s.CreateAdmin(ctx, username, email, string(passwordBytes)); err != nil {
			log.Fatal(err)
		}
	}
}
