package store

import "strings"

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Role string

// ParseRole folds an incoming role value into the closed role set. CreateUser
// runs every row through it, so stored roles compare with plain equality.
// Unknown values fall back to the regular user role.
func ParseRole(s string) Role {
	if strings.EqualFold(s, string(RoleAdmin)) {
		return RoleAdmin
	}
	return RoleUser
}
