package service

// Error is a service failure with a stable machine-readable code. Codes are
// part of the API contract and never change; messages are the human-readable
// half.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

var (
	// signup
	ErrUsernameTaken = &Error{
		Code:    "SGR-001",
		Message: "Try any other Username, this Username has already been taken",
	}
	ErrEmailRegistered = &Error{
		Code:    "SGR-002",
		Message: "This user has already been registered, try with any other emailId",
	}

	// signin
	ErrUnknownUser = &Error{
		Code:    "ATH-001",
		Message: "This username does not exist",
	}
	ErrInvalidCredential = &Error{
		Code:    "ATH-002",
		Message: "Password failed",
	}

	// signout: unknown token and already-signed-out are indistinguishable
	ErrSignOutNotSignedIn = &Error{
		Code:    "SGO-001",
		Message: "User is not Signed in",
	}

	// session validation
	ErrNotSignedIn = &Error{
		Code:    "ATHR-001",
		Message: "User has not signed in",
	}
	ErrSignedOut = &Error{
		Code:    "ATHR-002",
		Message: "User is signed out",
	}
	ErrSessionExpired = &Error{
		Code:    "ATHR-004",
		Message: "Session has expired, sign in again",
	}

	// authorization
	ErrNotAdmin = &Error{
		Code:    "ATHR-003",
		Message: "Unauthorized Access, Entered user is not an admin",
	}
	ErrQuestionEditForbidden = &Error{
		Code:    "ATHR-003",
		Message: "Only the question owner can edit the question",
	}
	ErrQuestionDeleteForbidden = &Error{
		Code:    "ATHR-003",
		Message: "Only the question owner or admin can delete the question",
	}
	ErrAnswerEditForbidden = &Error{
		Code:    "ATHR-003",
		Message: "Only the answer owner can edit the answer",
	}
	ErrAnswerDeleteForbidden = &Error{
		Code:    "ATHR-003",
		Message: "Only the answer owner or admin can delete the answer",
	}

	// not found
	ErrUserNotFound = &Error{
		Code:    "USR-001",
		Message: "User with entered uuid does not exist",
	}
	ErrQuestionNotFound = &Error{
		Code:    "QUES-001",
		Message: "Entered question uuid does not exist",
	}
	ErrAnswerNotFound = &Error{
		Code:    "ANS-001",
		Message: "Entered answer uuid does not exist",
	}
	ErrNoAnswers = &Error{
		Code:    "ANS-002",
		Message: "No Answer exists for this question",
	}
)
