package services

import (
	"errors"
	"fmt"
	"strings"

	"connectly/app/repositories"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrUnauthenticated means no principal could be resolved for the request.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden means the principal lacks the role for the action.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound covers both missing resources and resources hidden from
	// non-owners; the two are deliberately indistinguishable.
	ErrNotFound = repositories.ErrNotFound
)

// ValidationError carries field-level messages for rejected input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// newValidationError builds a single-field validation error.
func newValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msg}}
}

// asValidationError converts validator.ValidationErrors into the structured
// form; any other error is passed through unchanged.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[strings.ToLower(fe.Field())] = validationMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "alphanum":
		return "may only contain letters and digits"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}
