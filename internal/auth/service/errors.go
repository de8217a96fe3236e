package service

import (
	"net/http"

	commonerrors "github.com/AlibekovAA/todo-board/backend/internal/common/errors"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so the response carries no enumeration signal.
	ErrInvalidCredentials = commonerrors.NewDomainError(
		"INVALID_CREDENTIALS",
		commonerrors.CategoryUnauthorized,
		http.StatusUnauthorized,
		"invalid username or password",
	)

	ErrUsernameTaken = commonerrors.NewDomainError(
		"USERNAME_TAKEN",
		commonerrors.CategoryConflict,
		http.StatusConflict,
		"username already exists",
	)

	ErrInvalidUsername = commonerrors.NewDomainError(
		"INVALID_USERNAME",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"username must be between 3 and 50 characters",
	)

	ErrInvalidPassword = commonerrors.NewDomainError(
		"INVALID_PASSWORD",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"password must be between 4 and 128 characters",
	)
)
