package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/marc-format/marc/token"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = errors.New("parse error")
)

// Error is a grammar rejection at Span.  Expected lists what would have
// been accepted there.  Err is ErrParse or the underlying tokenizer error.
type Error struct {
	Span     token.Span
	Found    string
	Expected []string
	Err      error
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrParse
}

// Label describes the problem, as shown under the offending source.
func (e *Error) Label() string {
	switch len(e.Expected) {
	case 0:
		return e.Found
	case 1:
		return "expected " + e.Expected[0]
	default:
		return "expected one of " + strings.Join(e.Expected, " ")
	}
}

func (e *Error) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s at %s: %s", ErrParse, e.Span, e.Found)
	}
	return fmt.Sprintf("%s at %s: found %s, %s", ErrParse, e.Span, e.Found, e.Label())
}
