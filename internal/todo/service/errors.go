package service

import (
	"net/http"

	commonerrors "github.com/AlibekovAA/todo-board/backend/internal/common/errors"
)

var (
	ErrEmptyTodoText = commonerrors.NewDomainError(
		"EMPTY_TODO_TEXT",
		commonerrors.CategoryValidation,
		http.StatusBadRequest,
		"todo text cannot be empty",
	)

	ErrTodoNotFound = commonerrors.NewDomainError(
		"TODO_NOT_FOUND",
		commonerrors.CategoryNotFound,
		http.StatusNotFound,
		"todo not found",
	)
)
