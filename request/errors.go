package request

import (
	"errors"
	"fmt"
)

// Sentinel errors for request assembly.
var (
	// ErrUnknownAction indicates the action is not one the backend accepts.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnsupportedLanguage indicates the answer language is not supported.
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// ErrMissingQuestion indicates a question action was built without a question.
	ErrMissingQuestion = errors.New("question is required")

	// ErrEmptyContent indicates there is no page text to send.
	ErrEmptyContent = errors.New("content is empty")
)

// ValidationError reports which request field failed validation.
type ValidationError struct {
	Field string // Request field ("action", "language", "question", "content")
	Value string // Offending value, if any
	Err   error  // Underlying sentinel
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}
