package http

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs go-playground validation tags on a request DTO.
func ValidateStruct(v any) error {
	return validate.Struct(v)
}
