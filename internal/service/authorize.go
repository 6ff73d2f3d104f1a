package service

import "github.com/haarala/answerhub/internal/store"

type Operation int

const (
	OpEdit Operation = iota
	OpDelete
)

type Resource int

const (
	ResourceQuestion Resource = iota
	ResourceAnswer
)

var forbiddenErrors = map[Resource]map[Operation]*Error{
	ResourceQuestion: {
		OpEdit:   ErrQuestionEditForbidden,
		OpDelete: ErrQuestionDeleteForbidden,
	},
	ResourceAnswer: {
		OpEdit:   ErrAnswerEditForbidden,
		OpDelete: ErrAnswerDeleteForbidden,
	},
}

// Authorize applies the ownership rules shared by every mutating operation on
// a question or answer: edits are owner-only, deletes are owner-or-admin. The
// admin override deliberately does not extend to edits. Reads carry no
// ownership check and never pass through here.
func Authorize(actingUser *store.User, ownerID int64, res Resource, op Operation) error {
	switch op {
	case OpEdit:
		if actingUser.UserID == ownerID {
			return nil
		}
	case OpDelete:
		if actingUser.UserID == ownerID || actingUser.IsAdmin() {
			return nil
		}
	}
	return forbiddenErrors[res][op]
}

// AuthorizeUserDelete gates user deletion, which is admin-only regardless of
// identity.
func AuthorizeUserDelete(actingUser *store.User) error {
	if actingUser.IsAdmin() {
		return nil
	}
	return ErrNotAdmin
}
