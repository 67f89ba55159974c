package repeater

import (
	"errors"
	"fmt"
)

// ErrNilSource is returned if a Loop is run without a Source
var ErrNilSource = errors.New("the intention source has not been set")

// InvalidInputError records a schedule value which is not a positive
// integer
type InvalidInputError struct {
	Name string
	Val  int64
	Err  error
}

// Error returns the error message
func (e InvalidInputError) Error() string {
	return fmt.Sprintf("bad %s (%d): %v", e.Name, e.Val, e.Err)
}

// Unwrap returns the underlying error
func (e InvalidInputError) Unwrap() error {
	return e.Err
}

// FileUnreadableError records a failure to read the intention file
type FileUnreadableError struct {
	Path string
	Err  error
}

// Error returns the error message
func (e FileUnreadableError) Error() string {
	return fmt.Sprintf("Error reading file '%s': %v", e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e FileUnreadableError) Unwrap() error {
	return e.Err
}
