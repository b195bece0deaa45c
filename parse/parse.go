package parse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/marc-format/marc/debug"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/token"
)

var (
	firstAccess = []string{`"."`, `"["`, `"{"`}
	nextAccess  = []string{`"."`, `"="`, `"["`, `"{"`}
	pathAccess  = []string{`"."`, `"["`, `"{"`, "end of input"}
	identifier  = []string{"identifier", "string"}
	slot        = []string{`"+"`, "identifier", "string"}
	values      = []string{"string", "integer", "number", "true", "false", "null"}
)

// Parse parses a marc document.
func Parse(d []byte, opts ...ParseOption) ([]Statement, error) {
	pOpts := &parseOpts{comments: true}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, fromTokenizeErr(err)
	}
	p := &parser{toks: toks, end: len(d), opts: pOpts}
	res, err := p.statements()
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		for _, st := range res {
			debug.Logf("parse %s: %s\n", st.Span(), st)
		}
	}
	return res, nil
}

// ParsePath parses an access path such as .a{b}[c] with nothing after it.
func ParsePath(s string) (ir.Path, error) {
	toks, err := token.Tokenize(nil, []byte(s))
	if err != nil {
		return nil, fromTokenizeErr(err)
	}
	p := &parser{toks: toks, end: len(s), opts: &parseOpts{}}
	return p.path(false)
}

type parser struct {
	toks []token.Token
	i    int
	end  int
	opts *parseOpts
}

func (p *parser) peek() *token.Token {
	if p.i < len(p.toks) {
		return &p.toks[p.i]
	}
	return nil
}

func (p *parser) statements() ([]Statement, error) {
	var (
		res   []Statement
		lines []string
		cSpan token.Span
	)
	for p.i < len(p.toks) {
		t := &p.toks[p.i]
		switch t.Type {
		case token.TNewline:
			p.i++
			continue
		case token.TComment:
			lines = append(lines, string(t.Bytes))
			cSpan = cSpan.Join(t.Span)
			p.i++
			continue
		}
		e, err := p.entry()
		if err != nil {
			return nil, err
		}
		if p.opts.comments && len(lines) != 0 {
			e.Comment = lines
			e.CommentSpan = cSpan
		}
		lines = nil
		cSpan = token.Span{}
		res = append(res, e)
	}
	if p.opts.comments && len(lines) != 0 {
		res = append(res, &Comment{Lines: lines, span: cSpan})
	}
	return res, nil
}

func (p *parser) entry() (*Entry, error) {
	path, err := p.path(true)
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t == nil || t.Type != token.TEquals {
		return nil, fmt.Errorf("%w: path not followed by =", errInternal)
	}
	p.i++
	lit, err := p.literal()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t != nil && t.Type != token.TNewline {
		return nil, p.unexpected(t, "newline")
	}
	return &Entry{Path: path, Value: *lit}, nil
}

// path parses accesses.  In an entry the path ends at '=', otherwise at
// the end of input.
func (p *parser) path(entry bool) (ir.Path, error) {
	var res ir.Path
	for {
		t := p.peek()
		expected := firstAccess
		if len(res) != 0 {
			expected = nextAccess
			if !entry {
				expected = pathAccess
			}
		}
		if t == nil {
			if !entry && len(res) != 0 {
				return res, nil
			}
			return nil, p.atEnd(expected...)
		}
		var (
			a   ir.Access
			err error
		)
		switch t.Type {
		case token.TDot:
			a, err = p.objectAccess()
		case token.TLCurl:
			a, err = p.mapAccess()
		case token.TLSquare:
			a, err = p.arrayAccess()
		case token.TEquals:
			if entry && len(res) != 0 {
				return res, nil
			}
			return nil, p.unexpected(t, expected...)
		default:
			return nil, p.unexpected(t, expected...)
		}
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
}

func (p *parser) objectAccess() (ir.Access, error) {
	start := p.toks[p.i].Span.Start
	p.i++
	id, end, err := p.ident(identifier)
	if err != nil {
		return ir.Access{}, err
	}
	return ir.Access{Kind: ir.ObjectAccess, Key: id, Span: token.NewSpan(start, end)}, nil
}

func (p *parser) mapAccess() (ir.Access, error) {
	start := p.toks[p.i].Span.Start
	p.i++
	id, _, err := p.ident(identifier)
	if err != nil {
		return ir.Access{}, err
	}
	end, err := p.expect(token.TRCurl)
	if err != nil {
		return ir.Access{}, err
	}
	return ir.Access{Kind: ir.MapAccess, Key: id, Span: token.NewSpan(start, end)}, nil
}

func (p *parser) arrayAccess() (ir.Access, error) {
	start := p.toks[p.i].Span.Start
	p.i++
	a := ir.Access{Kind: ir.ArrayAccessImplicit}
	if t := p.peek(); t != nil && t.Type == token.TPlus {
		p.i++
	} else {
		id, _, err := p.ident(slot)
		if err != nil {
			return ir.Access{}, err
		}
		a.Kind = ir.ArrayAccessExplicit
		a.Key = id
	}
	end, err := p.expect(token.TRSquare)
	if err != nil {
		return ir.Access{}, err
	}
	a.Span = token.NewSpan(start, end)
	return a, nil
}

func (p *parser) ident(expected []string) (ir.Identifier, int, error) {
	t := p.peek()
	if t == nil {
		return ir.Identifier{}, 0, p.atEnd(expected...)
	}
	switch t.Type {
	case token.TWord:
		p.i++
		return ir.Unquoted(string(t.Bytes)), t.Span.End, nil
	case token.TString:
		v, err := token.DecodeString(t.StringKind, t.Content(), t.Span)
		if err != nil {
			return ir.Identifier{}, 0, err
		}
		p.i++
		return ir.Quoted(v), t.Span.End, nil
	}
	return ir.Identifier{}, 0, p.unexpected(t, expected...)
}

func (p *parser) expect(tt token.TokenType) (int, error) {
	t := p.peek()
	if t == nil {
		return 0, p.atEnd(tt.Describe())
	}
	if t.Type != tt {
		return 0, p.unexpected(t, tt.Describe())
	}
	p.i++
	return t.Span.End, nil
}

func (p *parser) literal() (*Literal, error) {
	t := p.peek()
	if t == nil {
		return nil, p.atEnd(values...)
	}
	if !t.Type.IsValue() {
		return nil, p.unexpected(t, values...)
	}
	p.i++
	lit := &Literal{Span: t.Span, Text: string(t.Bytes), Raw: string(t.Bytes)}
	switch t.Type {
	case token.TString:
		lit.Kind = StringLiteral
		lit.Raw = t.Content()
		lit.StringKind = t.StringKind
	case token.TInteger:
		lit.Kind = IntegerLiteral
	case token.TNumber:
		lit.Kind = NumberLiteral
	case token.TTrue, token.TFalse:
		lit.Kind = BoolLiteral
		lit.Bool = t.Type == token.TTrue
	case token.TNull:
		lit.Kind = NullLiteral
	}
	return lit, nil
}

func (p *parser) unexpected(t *token.Token, expected ...string) error {
	return &Error{Span: t.Span, Found: describe(t), Expected: expected, Err: ErrParse}
}

func (p *parser) atEnd(expected ...string) error {
	return &Error{Span: token.NewSpan(p.end, p.end), Found: "end of input", Expected: expected, Err: ErrParse}
}

func describe(t *token.Token) string {
	switch t.Type {
	case token.TNewline, token.TComment:
		return t.Type.Describe()
	case token.TWord, token.TString, token.TInteger, token.TNumber:
		return t.Type.Describe() + " " + strconv.Quote(string(t.Bytes))
	}
	return t.Type.Describe()
}

func fromTokenizeErr(err error) error {
	var te *token.TokenizeErr
	if !errors.As(err, &te) {
		return err
	}
	var found string
	switch {
	case errors.Is(te, token.ErrUnterminated):
		found = "unterminated string"
	case errors.Is(te, token.ErrBadUTF8):
		found = "invalid UTF-8"
	case errors.Is(te, token.ErrNumberLeadingZero):
		found = "number with a leading zero"
	case errors.Is(te, token.ErrNumber):
		found = "malformed number"
	case errors.Is(te, token.ErrUnexpected):
		found = strings.TrimPrefix(te.Err.Error(), token.ErrUnexpected.Error()+" ")
	default:
		found = te.Err.Error()
	}
	return &Error{Span: te.Span, Found: found, Expected: te.Expected, Err: te}
}
