package store

import (
	"context"
	"time"
)

type User struct {
	UserID        int64     `json:"-"`
	UUID          string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	AboutMe       string    `json:"about_me"`
	Dob           string    `json:"dob"`
	ContactNumber string    `json:"contact_number"`
	Country       string    `json:"country"`
	Role          Role      `json:"-"`
	PasswordHash  string    `json:"-"`
	Salt          string    `json:"-"`
	CreatedOn     time.Time `json:"created_on"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type UserStore interface {
	CreateUser(context.Context, *User) (*User, error)
	ReadUserByID(context.Context, int64) (*User, error)
	ReadUserByUUID(context.Context, string) (*User, error)
	ReadUserByUsername(context.Context, string) (*User, error)
	ReadUserByEmail(context.Context, string) (*User, error)
	ListAdmins(context.Context) ([]User, error)
	DeleteUser(context.Context, int64) error
}
