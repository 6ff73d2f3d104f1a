package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/haarala/answerhub/internal/security"
	"github.com/haarala/answerhub/internal/store"

	"github.com/go-co-op/gocron/v2"
)

type AuthUserReader interface {
	ReadUserByUsername(context.Context, string) (*store.User, error)
}

type SessionStore interface {
	CreateSession(context.Context, *store.UserSession) (*store.UserSession, error)
	ReadSessionByToken(context.Context, string) (*store.SessionWithUser, error)
	UpdateSessionLogout(context.Context, int64, time.Time) error
	DeleteSessionsExpiredBefore(context.Context, time.Time) error
}

// AuthService owns the session lifecycle: credential verification at sign-in,
// the one-way logout transition at sign-out, and the validation gate every
// protected operation calls first.
type AuthService struct {
	userStore      AuthUserReader
	sessionStore   SessionStore
	sessionExpires time.Duration
}

func NewAuthService(
	userStore AuthUserReader,
	sessionStore SessionStore,
	sessionExpires time.Duration,
) *AuthService {
	return &AuthService{
		userStore:      userStore,
		sessionStore:   sessionStore,
		sessionExpires: sessionExpires,
	}
}

// SignIn verifies the credential pair and mints a fresh session. Every
// successful call creates exactly one new session; concurrent sign-ins for the
// same user never share tokens.
func (s *AuthService) SignIn(
	ctx context.Context,
	username, password string,
) (*store.SessionWithUser, error) {
	u, err := s.userStore.ReadUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	if !security.VerifyPassword(password, u.Salt, u.PasswordHash) {
		return nil, ErrInvalidCredential
	}

	now := time.Now().UTC()
	expiresAt := now.Add(s.sessionExpires)
	token, err := security.GenerateAccessToken([]byte(u.PasswordHash), u.UUID, now, expiresAt)
	if err != nil {
		return nil, err
	}

	session, err := s.sessionStore.CreateSession(ctx, &store.UserSession{
		Token:     token,
		UserID:    u.UserID,
		LoginAt:   now,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return nil, err
	}
	return &store.SessionWithUser{Session: *session, User: *u}, nil
}

// SignOut marks the session logged out. Unknown tokens and tokens that were
// already logged out fail identically. An expired session can still be signed
// out so a client can always invalidate its token.
func (s *AuthService) SignOut(ctx context.Context, token string) (*store.SessionWithUser, error) {
	su, err := s.sessionStore.ReadSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSignOutNotSignedIn
		}
		return nil, err
	}
	if su.Session.LogoutAt != nil {
		return nil, ErrSignOutNotSignedIn
	}

	now := time.Now().UTC()
	if err := s.sessionStore.UpdateSessionLogout(ctx, su.Session.SessionID, now); err != nil {
		return nil, err
	}
	su.Session.LogoutAt = &now
	return su, nil
}

// ValidateSession resolves a bearer token to its user. This is the single
// choke point for authentication: no protected operation runs without passing
// through here first. The token is treated as an opaque lookup key; expiry is
// enforced lazily on every call.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (*store.User, error) {
	su, err := s.sessionStore.ReadSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotSignedIn
		}
		return nil, err
	}
	if su.Session.LogoutAt != nil {
		return nil, ErrSignedOut
	}
	if !time.Now().UTC().Before(su.Session.ExpiresAt) {
		return nil, ErrSessionExpired
	}
	return &su.User, nil
}

const sessionRetention = 30 * 24 * time.Hour

// ScheduleSessionCleanUp prunes session rows whose expiry is long past. The
// services themselves never delete sessions.
func (s *AuthService) ScheduleSessionCleanUp(sched gocron.Scheduler) {
	if _, err := sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 0, 0))),
		gocron.NewTask(func() {
			cutoff := time.Now().UTC().Add(-sessionRetention)
			if err := s.sessionStore.DeleteSessionsExpiredBefore(context.Background(), cutoff); err != nil {
				log.Println("err deleting expired sessions:", err)
			}
		}),
	); err != nil {
		log.Fatal(err)
	}
}
