package facturo

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios.
var (
	// General errors
	ErrNotFound      = errors.New("facturo: not found")
	ErrAlreadyExists = errors.New("facturo: already exists")
	ErrInvalidInput  = errors.New("facturo: invalid input")

	// Entity errors
	ErrInvoiceNotFound     = errors.New("facturo: invoice not found")
	ErrClientNotFound      = errors.New("facturo: client not found")
	ErrUnknownDocumentType = errors.New("facturo: unknown document type")
	ErrUnknownStatus       = errors.New("facturo: unknown status")

	// Store errors. Absent and corrupt values are both treated leniently
	// at load time: the ledger starts from empty defaults instead of
	// failing the application.
	ErrAbsent      = errors.New("facturo: no stored value")
	ErrCorrupt     = errors.New("facturo: stored value unreadable")
	ErrStoreClosed = errors.New("facturo: store is closed")
)

// ValidationError reports a single rejected field. Validation failures block
// the attempted save, leave in-memory state unchanged, and are always
// surfaced to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("facturo: validation failed for %s: %s", e.Field, e.Message)
}

// MultiError aggregates the validation errors of one rejected save.
type MultiError struct {
	Errors []error
}

func (e *MultiError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "facturo: no errors"
	case 1:
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("facturo: %d errors occurred", len(e.Errors))
}

// Unwrap exposes the aggregated errors to errors.Is and errors.As.
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// Add appends a non-nil error.
func (e *MultiError) Add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

// HasErrors reports whether any error was added.
func (e *MultiError) HasErrors() bool {
	return len(e.Errors) > 0
}

// First returns the first error or nil.
func (e *MultiError) First() error {
	if len(e.Errors) > 0 {
		return e.Errors[0]
	}
	return nil
}

// IsNotFound reports whether err is any of the not-found errors.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrInvoiceNotFound) ||
		errors.Is(err, ErrClientNotFound)
}

// IsValidation reports whether err is a validation rejection.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}
