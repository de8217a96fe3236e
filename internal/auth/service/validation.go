package service

import (
	"strings"

	"github.com/AlibekovAA/todo-board/backend/internal/common/constants"
)

// validateCredentials runs after the username has been trimmed; a
// whitespace-only username therefore fails the length check here. The
// password is never trimmed before hashing, so whitespace-only passwords
// need an explicit rejection on top of the length bounds.
func validateCredentials(username, password string) error {
	if len(username) < constants.UsernameMinLength || len(username) > constants.UsernameMaxLength {
		return ErrInvalidUsername
	}

	if strings.TrimSpace(password) == "" {
		return ErrInvalidPassword
	}

	if len(password) < constants.PasswordMinLength || len(password) > constants.PasswordMaxLength {
		return ErrInvalidPassword
	}

	return nil
}
