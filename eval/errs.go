package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/token"
)

var (
	errInternal            = errors.New("internal eval error")
	ErrTypeMismatch        = errors.New("type mismatch")
	ErrDuplicateAssignment = errors.New("duplicate assignment")
)

// TypeMismatchError reports an access, or an assignment when Assignment
// is set, that treats a node as Expected although it was inferred as
// Actual at InferredAt.
type TypeMismatchError struct {
	Path       ir.Path
	Expected   ir.Type
	At         token.Span
	Actual     ir.Type
	InferredAt token.Span
	Assignment bool
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s at %s: %s treats value as %s but it was inferred as %s at %s",
		ErrTypeMismatch, e.At, e.Path, e.Expected, e.Actual, e.InferredAt)
}

// DuplicateAssignmentError reports a second scalar assigned at a path.
type DuplicateAssignmentError struct {
	Path   ir.Path
	First  token.Span
	Second token.Span
}

func (e *DuplicateAssignmentError) Unwrap() error {
	return ErrDuplicateAssignment
}

func (e *DuplicateAssignmentError) Error() string {
	return fmt.Sprintf("%s at %s: %s was already assigned at %s",
		ErrDuplicateAssignment, e.Second, e.Path, e.First)
}
