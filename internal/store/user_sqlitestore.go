package store

import (
	"context"
	"database/sql"

	"github.com/georgysavva/scany/v2/sqlscan"
)

type UserSQLiteStore struct {
	rdb  *sql.DB
	rwdb *sql.DB
}

func NewUserSQLiteStore(rdb, rwdb *sql.DB) *UserSQLiteStore {
	return &UserSQLiteStore{rdb, rwdb}
}

func (store *UserSQLiteStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	user.Role = ParseRole(string(user.Role))
	err := sqlscan.Get(
		ctx, store.rwdb, user,
		`
		insert into users (
			uuid,
			username,
			email,
			first_name,
			last_name,
			about_me,
			dob,
			contact_number,
			country,
			role,
			password_hash,
			salt
		)
		values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		returning user_id, created_on
		`,
		user.UUID,
		user.Username,
		user.Email,
		user.FirstName,
		user.LastName,
		user.AboutMe,
		user.Dob,
		user.ContactNumber,
		user.Country,
		user.Role,
		user.PasswordHash,
		user.Salt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (store *UserSQLiteStore) ReadUserByID(ctx context.Context, userID int64) (*User, error) {
	user := new(User)
	err := sqlscan.Get(
		ctx, store.rdb, user,
		`select * from users where user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (store *UserSQLiteStore) ReadUserByUUID(ctx context.Context, uuid string) (*User, error) {
	user := new(User)
	err := sqlscan.Get(
		ctx, store.rdb, user,
		`select * from users where uuid = $1`,
		uuid,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (store *UserSQLiteStore) ReadUserByUsername(
	ctx context.Context,
	username string,
) (*User, error) {
	user := new(User)
	err := sqlscan.Get(
		ctx, store.rdb, user,
		`select * from users where username = $1`,
		username,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (store *UserSQLiteStore) ReadUserByEmail(ctx context.Context, email string) (*User, error) {
	user := new(User)
	err := sqlscan.Get(
		ctx, store.rdb, user,
		`select * from users where email = $1`,
		email,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (store *UserSQLiteStore) ListAdmins(ctx context.Context) ([]User, error) {
	users := make([]User, 0)
	err := sqlscan.Select(
		ctx, store.rdb, &users,
		`select * from users where role = $1`,
		RoleAdmin,
	)
	return users, err
}

func (store *UserSQLiteStore) DeleteUser(ctx context.Context, userID int64) error {
	_, err := store.rwdb.ExecContext(ctx, "delete from users where user_id = $1", userID)
	return err
}
