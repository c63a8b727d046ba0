package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidCredentials is returned for both unknown usernames and wrong
	// passwords so a caller cannot tell which check failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned for missing, malformed, unverifiable, or
	// expired tokens.
	ErrInvalidToken = errors.New("invalid token")
)

// FieldError describes a single failed validation constraint.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries per-field messages for a 400 response.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Message
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

var validate = validator.New()

var fieldMessages = map[string]string{
	"Username": "Username is required",
	"Password": "Password is required",
	"Title":    "Title is required",
	"Content":  "Content is required",
	"Body":     "Comment body is required",
}

// asValidationError converts validator errors into a ValidationError with
// the API's per-field messages.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		ve.Fields = append(ve.Fields, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: msg,
		})
	}
	return ve
}
