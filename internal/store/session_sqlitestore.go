package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type SessionSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewSessionSQLiteStore(rdb, rwdb *sql.DB) *SessionSQLiteStore {
	return &SessionSQLiteStore{rdb, rwdb}
}

func (store *SessionSQLiteStore) CreateSession(
	ctx context.Context,
	session *UserSession,
) (*UserSession, error) {
	err := sqlscan.Get(
		ctx, store.rwdb, session,
		`
		insert into user_sessions (
			token,
			user_id,
			login_at,
			expires_at
		)
		values ($1, $2, $3, $4)
		returning session_id
		`,
		session.Token,
		session.UserID,
		session.LoginAt,
		session.ExpiresAt,
	)
	if err != nil {
		return nil, err
	}
	return session, nil
}

type sessionUserRow struct {
	SessionID int64
	Token     string
	UserID    int64
	LoginAt   time.Time
	ExpiresAt time.Time
	LogoutAt  *time.Time

	UserUUID          string
	Username          string
	Email             string
	FirstName         string
	LastName          string
	AboutMe           string
	Dob               string
	UserContactNumber string
	Country           string
	Role              Role
	PasswordHash      string
	Salt              string
	UserCreatedOn     time.Time
}

func (store *SessionSQLiteStore) ReadSessionByToken(
	ctx context.Context,
	token string,
) (*SessionWithUser, error) {
	row := new(sessionUserRow)
	err := sqlscan.Get(
		ctx, store.rdb, row,
		`select
			s.session_id,
			s.token,
			s.user_id,
			s.login_at,
			s.expires_at,
			s.logout_at,
			u.uuid as user_uuid,
			u.username,
			u.email,
			u.first_name,
			u.last_name,
			u.about_me,
			u.dob,
			u.contact_number as user_contact_number,
			u.country,
			u.role,
			u.password_hash,
			u.salt,
			u.created_on as user_created_on
		from user_sessions s
		join users u on u.user_id = s.user_id
		where s.token = $1
		`,
		token,
	)
	if err != nil {
		return nil, err
	}
	return &SessionWithUser{
		Session: UserSession{
			SessionID: row.SessionID,
			Token:     row.Token,
			UserID:    row.UserID,
			LoginAt:   row.LoginAt,
			ExpiresAt: row.ExpiresAt,
			LogoutAt:  row.LogoutAt,
		},
		User: User{
			UserID:        row.UserID,
			UUID:          row.UserUUID,
			Username:      row.Username,
			Email:         row.Email,
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			AboutMe:       row.AboutMe,
			Dob:           row.Dob,
			ContactNumber: row.UserContactNumber,
			Country:       row.Country,
			Role:          row.Role,
			PasswordHash:  row.PasswordHash,
			Salt:          row.Salt,
			CreatedOn:     row.UserCreatedOn,
		},
	}, nil
}

func (store *SessionSQLiteStore) UpdateSessionLogout(
	ctx context.Context,
	sessionID int64,
	logoutAt time.Time,
) error {
	query := `update user_sessions
	set logout_at = $1
	where session_id = $2 and logout_at is null`
	_, err := store.rwdb.ExecContext(ctx, query, logoutAt, sessionID)
	return err
}

func (store *SessionSQLiteStore) DeleteSessionsExpiredBefore(
	ctx context.Context,
	cutoff time.Time,
) error {
	query := "delete from user_sessions where expires_at < $1"
	_, err := store.rwdb.ExecContext(ctx, query, cutoff)
	return err
}
