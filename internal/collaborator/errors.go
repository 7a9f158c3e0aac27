package collaborator

import (
	"errors"
	"fmt"
)

var (
	ErrNotTable       = errors.New("collaborator: root value is not a table")
	ErrMissingField   = errors.New("collaborator: missing required field")
	ErrWrongFieldType = errors.New("collaborator: wrong field type")
	ErrInvalidHex     = errors.New("collaborator: invalid hex integer")
	ErrInvalidAddress = errors.New("collaborator: invalid address")
	ErrIntegerRange   = errors.New("collaborator: integer out of range")
)

// FieldError reports a failure tied to one table key. Kind is one of the
// package sentinel errors, so callers match with errors.Is.
type FieldError struct {
	Key    string
	Kind   error
	Detail string
}

func (e *FieldError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v (key %q)", e.Kind, e.Key)
	}
	return fmt.Sprintf("%v (key %q): %s", e.Kind, e.Key, e.Detail)
}

func (e *FieldError) Unwrap() error { return e.Kind }

func fieldErr(key string, kind error, detail string) *FieldError {
	return &FieldError{Key: key, Kind: kind, Detail: detail}
}
