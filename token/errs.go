package token

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrBadUTF8           = errors.New("bad utf8")
	ErrUnterminated      = errors.New("unterminated")
	ErrNumber            = errors.New("number")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrUnexpected        = errors.New("unexpected")
	ErrBadEscape         = errors.New("bad escape")
	ErrMultilineString   = errors.New("multiline string")
	ErrMultilineStart    = fmt.Errorf("%w: does not start with a newline", ErrMultilineString)
	ErrMultilineEnd      = fmt.Errorf("%w: does not end with a newline", ErrMultilineString)
)

// TokenizeErr reports a lexical error at a span of the source.  Expected,
// when non-empty, lists what would have been accepted there.
type TokenizeErr struct {
	Err      error
	Span     Span
	Expected []string
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, s Span) *TokenizeErr {
	return &TokenizeErr{Err: e, Span: s}
}

func (e *TokenizeErr) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s at %s", e.Err.Error(), e.Span)
	}
	return fmt.Sprintf("%s at %s, expected %s", e.Err.Error(), e.Span, strings.Join(e.Expected, " "))
}

func UnexpectedErr(what string, s Span, expected ...string) error {
	return &TokenizeErr{
		Err:      fmt.Errorf("%w %s", ErrUnexpected, what),
		Span:     s,
		Expected: expected,
	}
}

// StringEscapeError reports an invalid escape sequence in an escaped
// string literal.  Span covers the whole literal.
type StringEscapeError struct {
	Span   Span
	Detail string
}

func (e *StringEscapeError) Unwrap() error {
	return ErrBadEscape
}

func (e *StringEscapeError) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrBadEscape, e.Detail, e.Span)
}

// MultilineBoundaryError reports a literal that spans lines but whose raw
// content does not begin (Start) or end (!Start) with a newline.
type MultilineBoundaryError struct {
	Span  Span
	Start bool
}

func (e *MultilineBoundaryError) Unwrap() error {
	if e.Start {
		return ErrMultilineStart
	}
	return ErrMultilineEnd
}

func (e *MultilineBoundaryError) Error() string {
	return fmt.Sprintf("%s at %s", e.Unwrap(), e.Span)
}
