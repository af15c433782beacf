package multierror

import (
	"fmt"
	"strings"
)

type keyedError[T comparable] struct {
	key T
	err error
}

// Error is a generic error type that allows to combine multiple errors into one.
// Errors are kept in the order they were added, so the message is stable.
type Error[T comparable] struct {
	errors []keyedError[T]
}

// New creates a new Error.
func New[T comparable]() *Error[T] {
	return &Error[T]{}
}

// Error returns a string representation of the error.
func (m *Error[T]) Error() string {
	parts := make([]string, 0, len(m.errors))
	for _, e := range m.errors {
		parts = append(parts, fmt.Sprintf("%v: %s", e.key, e.err))
	}

	return strings.Join(parts, "; ")
}

// Unwrap returns a slice of errors.
func (m *Error[T]) Unwrap() []error {
	errs := make([]error, 0, len(m.errors))
	for _, e := range m.errors {
		errs = append(errs, e.err)
	}

	return errs
}

// Len returns the number of errors.
func (m *Error[T]) Len() int {
	return len(m.errors)
}

// Add adds an error to the Error. Adding a key for the second time replaces
// the previous error, keeping its position.
func (m *Error[T]) Add(key T, err error) {
	for i := range m.errors {
		if m.errors[i].key == key {
			m.errors[i].err = err
			return
		}
	}

	m.errors = append(m.errors, keyedError[T]{key: key, err: err})
}

// Get returns an error by key.
func (m *Error[T]) Get(key T) (error, bool) {
	for _, e := range m.errors {
		if e.key == key {
			return e.err, true
		}
	}

	return nil, false
}

// First returns the first added error.
func (m *Error[T]) First() error {
	if len(m.errors) == 0 {
		return nil
	}

	return m.errors[0].err
}

// Combined returns the Error if it contains any errors, nil otherwise.
func (m *Error[T]) Combined() error {
	if len(m.errors) == 0 {
		return nil
	}

	return m
}
