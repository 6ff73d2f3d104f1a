package store

import (
	"context"
	"time"
)

// UserSession is one sign-in. It is only ever mutated once, to set LogoutAt,
// and is never deleted by the services; stale rows are pruned by the scheduled
// clean-up job.
type UserSession struct {
	SessionID int64
	Token     string
	UserID    int64
	LoginAt   time.Time
	ExpiresAt time.Time
	LogoutAt  *time.Time
}

// SessionWithUser joins a session row with its owning user for token lookups.
type SessionWithUser struct {
	Session UserSession
	User    User
}

type SessionStore interface {
	CreateSession(context.Context, *UserSession) (*UserSession, error)
	ReadSessionByToken(context.Context, string) (*SessionWithUser, error)
	UpdateSessionLogout(context.Context, int64, time.Time) error
	DeleteSessionsExpiredBefore(context.Context, time.Time) error
}
