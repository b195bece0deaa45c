package parse

import (
	"strings"

	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/token"
)

// Statement is an [*Entry] or a [*Comment].
type Statement interface {
	Span() token.Span
	String() string
	statement()
}

// Comment is a block of comment lines not followed by any entry.
type Comment struct {
	Lines []string
	span  token.Span
}

func (c *Comment) Span() token.Span { return c.span }
func (c *Comment) statement()       {}

func (c *Comment) String() string {
	return commentText(c.Lines)
}

type Entry struct {
	// Comment holds the text of the preceding comment lines, without '#'.
	Comment     []string
	CommentSpan token.Span

	Path  ir.Path
	Value Literal
}

func (e *Entry) Span() token.Span {
	return e.Path.Span().Join(e.Value.Span)
}

func (e *Entry) statement() {}

func (e *Entry) String() string {
	b := &strings.Builder{}
	if len(e.Comment) != 0 {
		b.WriteString(commentText(e.Comment))
	}
	b.WriteString(e.Path.String())
	b.WriteString(" = ")
	b.WriteString(e.Value.Text)
	return b.String()
}

func commentText(lines []string) string {
	b := &strings.Builder{}
	for _, ln := range lines {
		b.WriteByte('#')
		b.WriteString(ln)
		b.WriteByte('\n')
	}
	return b.String()
}

type LiteralKind int

const (
	StringLiteral LiteralKind = iota
	IntegerLiteral
	NumberLiteral
	BoolLiteral
	NullLiteral
)

func (k LiteralKind) String() string {
	switch k {
	case StringLiteral:
		return "string"
	case IntegerLiteral:
		return "integer"
	case NumberLiteral:
		return "number"
	case BoolLiteral:
		return "boolean"
	case NullLiteral:
		return "null"
	}
	return "<unknown literal>"
}

// Literal is an unevaluated scalar.  String escapes and multi-line
// boundaries are checked when the literal is evaluated, not when parsed.
type Literal struct {
	Kind LiteralKind
	Span token.Span
	// Text is the literal as written.
	Text string
	// Raw is the content between the quotes for strings, otherwise Text.
	Raw        string
	StringKind token.StringKind
	Bool       bool
}
