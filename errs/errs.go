package errs

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
)

// ValidationError carries a field -> message map so a form can render every
// problem at once instead of failing on the first one.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records a message for a field. The first message per field wins.
func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// HasErrors reports whether any field failed validation.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

// StorageError wraps a file write failure during create/update. Delete
// failures during cleanup are logged and swallowed, never wrapped in this.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// NewNotFound wraps ErrNotFound with the entity name for logging.
func NewNotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}
