package model

import (
	"fmt"
)

var (
	ErrNetwork    = fmt.Errorf("network error")
	ErrParse      = fmt.Errorf("parse error")
	ErrValidation = fmt.Errorf("validation error")
	ErrConfig     = fmt.Errorf("config error")
)

// FetchError wraps a failure of a call to an external endpoint.
type FetchError struct {
	Source string // ex: nbu
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// NewFetchError wraps err with the name of the source it came from.
func NewFetchError(source string, err error) error {
	return &FetchError{Source: source, Err: err}
}
