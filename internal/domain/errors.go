package domain

import (
	"errors"
	"fmt"
)

// Validation errors raised while constructing exercise usages.
var (
	ErrInvalidValue       = errors.New("invalid value")
	ErrInvalidCombination = errors.New("invalid field combination")
	ErrMissingField       = errors.New("missing field")
)

// FieldError names the offending field(s) of a failed validation.
// It unwraps to one of the validation sentinels above.
type FieldError struct {
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
