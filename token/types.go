package token

import (
	"fmt"
)

type TokenType int

const (
	TNewline TokenType = iota
	TComment
	TDot
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TPlus
	TEquals
	TWord
	TString
	TInteger
	TNumber
	TTrue
	TFalse
	TNull
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TNewline: "TNewline",
		TComment: "TComment",
		TDot:     "TDot",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TPlus:    "TPlus",
		TEquals:  "TEquals",
		TWord:    "TWord",
		TString:  "TString",
		TInteger: "TInteger",
		TNumber:  "TNumber",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TNull:    "TNull",
	}[t]
}

// Describe returns the user facing name of a token type, as used in
// "expected ..." messages.
func (t TokenType) Describe() string {
	switch t {
	case TNewline:
		return "newline"
	case TComment:
		return "comment"
	case TDot:
		return `"."`
	case TLCurl:
		return `"{"`
	case TRCurl:
		return `"}"`
	case TLSquare:
		return `"["`
	case TRSquare:
		return `"]"`
	case TPlus:
		return `"+"`
	case TEquals:
		return `"="`
	case TWord:
		return "identifier"
	case TString:
		return "string"
	case TInteger:
		return "integer"
	case TNumber:
		return "number"
	case TTrue:
		return "true"
	case TFalse:
		return "false"
	case TNull:
		return "null"
	}
	return "<unknown token>"
}

func (t TokenType) IsValue() bool {
	switch t {
	case TString, TInteger, TNumber, TTrue, TFalse, TNull:
		return true
	}
	return false
}

type Token struct {
	Type  TokenType
	Span  Span
	Bytes []byte

	// StringKind is set for TString tokens.
	StringKind StringKind
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Bytes, t.Span)
}

// Content returns the raw bytes between the quotes of a TString token,
// before any escape or multi-line processing.
func (t *Token) Content() string {
	if t.Type != TString {
		return string(t.Bytes)
	}
	q := t.StringKind.quoteLen()
	if len(t.Bytes) < 2*q {
		return ""
	}
	return string(t.Bytes[q : len(t.Bytes)-q])
}

// ContentSpan is the span of Content within the source.
func (t *Token) ContentSpan() Span {
	if t.Type != TString {
		return t.Span
	}
	q := t.StringKind.quoteLen()
	return Span{Start: t.Span.Start + q, End: t.Span.End - q}
}

func (t *Token) String() string {
	return string(t.Bytes)
}
