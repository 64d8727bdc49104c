package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is matched by every *ValidationError.
// Handlers should map this to HTTP 400 with the field issues in the body.
var ErrValidation = errors.New("validation error")

// ErrInvalidID is returned when an identifier is not a well-formed UUID.
// It is detected before the store is called. Handlers map it to HTTP 400.
var ErrInvalidID = errors.New("invalid identifier")

// ErrUnavailable is returned when the store did not answer before the
// request deadline. Handlers map it to HTTP 503.
var ErrUnavailable = errors.New("store unavailable")

// Issue codes carried by FieldIssue.
const (
	CodeRequired    = "required"
	CodeTooSmall    = "too_small"
	CodeTooBig      = "too_big"
	CodeInvalidType = "invalid_type"
)

// FieldIssue describes one failing field.
type FieldIssue struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError is the structured result of a failed validation.
// The zero value holds no issues; use Err to turn it into an error.
type ValidationError struct {
	Issues []FieldIssue
}

// Add records an issue for field.
func (v *ValidationError) Add(field, code, message string) {
	v.Issues = append(v.Issues, FieldIssue{Field: field, Code: code, Message: message})
}

// Err returns v as an error, or nil when no issue was recorded.
func (v *ValidationError) Err() error {
	if len(v.Issues) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	msgs := make([]string, len(v.Issues))
	for i, is := range v.Issues {
		msgs[i] = is.Field + ": " + is.Message
	}
	return "validation error: " + strings.Join(msgs, "; ")
}

// Is reports ErrValidation as a match so callers can use errors.Is.
func (v *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// InvalidField builds a single-issue validation error, used when a value
// cannot even be decoded into the expected type.
func InvalidField(field, message string) error {
	v := &ValidationError{}
	v.Add(field, CodeInvalidType, message)
	return v
}
