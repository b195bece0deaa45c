package ir

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrKindMismatch   = errors.New("access kind mismatch")
	ErrImplicitAccess = errors.New("implicit access cannot be looked up")
	ErrEmptyPath      = errors.New("empty path")
)

// PathError reports the first access of a lookup that failed.
type PathError struct {
	Path Path
	At   int
	Err  error
}

func (e *PathError) Unwrap() error {
	return e.Err
}

func (e *PathError) Error() string {
	if e.At < 0 || e.At >= len(e.Path) {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("%s: at %s: %s", e.Path, e.Path[:e.At+1], e.Err)
}
