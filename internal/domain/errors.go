package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinels for errors.Is. Boundaries map them to status codes.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnavailable = errors.New("unavailable")
	ErrTimeout     = errors.New("timed out")
)

// Validation messages shared by entity validators.
const (
	MsgRequired  = "is required"
	MsgDuplicate = "must be unique"
)

// ValidationError collects field-level failures. It matches ErrValidation
// under errors.Is; use errors.As to reach Fields.
type ValidationError struct {
	Fields map[string]string
}

// Add records msg for field, replacing any earlier message.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

// Merge adds every field of other, each name prefixed with prefix and a dot.
func (e *ValidationError) Merge(prefix string, other *ValidationError) {
	for field, msg := range other.Fields {
		e.Add(prefix+"."+field, msg)
	}
}

// OrNil returns e if it holds any field and nil otherwise, so validators can
// end with "return verr.OrNil()".
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// Error lists the fields in name order.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
