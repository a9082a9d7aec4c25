package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound is returned when an operation targets an identifier that is
// absent from its collection (edited or deleted from another view).
var ErrNotFound = errors.New("record not found")

// ValidationErrors maps a field name to a human-readable problem. The zero
// value means the input passed validation.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// PersistenceError reports a failed store write. The in-memory mutation that
// preceded it is NOT durable and the caller must not act as if it were.
type PersistenceError struct {
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persisting %q failed: %v", e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
