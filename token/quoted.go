package token

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// StringKind distinguishes the four string literal forms.
type StringKind int

const (
	// 'raw', one line, no escapes.
	SingleRaw StringKind = iota
	// '''raw''', may span lines.
	TripleRaw
	// "escaped", one line.
	DoubleEscaped
	// """escaped""", may span lines.
	TripleEscaped
)

func (k StringKind) String() string {
	switch k {
	case SingleRaw:
		return "SingleRaw"
	case TripleRaw:
		return "TripleRaw"
	case DoubleEscaped:
		return "DoubleEscaped"
	case TripleEscaped:
		return "TripleEscaped"
	}
	return "<unknown string kind>"
}

func (k StringKind) quoteLen() int {
	switch k {
	case TripleRaw, TripleEscaped:
		return 3
	default:
		return 1
	}
}

func (k StringKind) Escaped() bool {
	return k == DoubleEscaped || k == TripleEscaped
}

func (k StringKind) MultiLine() bool {
	return k == TripleRaw || k == TripleEscaped
}

// quoted scans a string literal at the start of d, returning its kind and
// length including the quotes.
func quoted(d []byte) (StringKind, int, error) {
	if len(d) == 0 {
		return 0, 0, ErrUnterminated
	}
	q := d[0]
	triple := len(d) >= 3 && d[1] == q && d[2] == q
	switch {
	case q == '\'' && triple:
		j := strings.Index(string(d[3:]), "'''")
		if j == -1 {
			return TripleRaw, len(d), ErrUnterminated
		}
		return TripleRaw, j + 6, nil
	case q == '\'':
		for i := 1; i < len(d); i++ {
			switch d[i] {
			case '\'':
				return SingleRaw, i + 1, nil
			case '\n':
				return SingleRaw, i, ErrUnterminated
			}
		}
		return SingleRaw, len(d), ErrUnterminated
	case q == '"' && triple:
		esc := false
		for i := 3; i < len(d); i++ {
			c := d[i]
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"' && i+2 < len(d) && d[i+1] == '"' && d[i+2] == '"':
				return TripleEscaped, i + 3, nil
			}
		}
		return TripleEscaped, len(d), ErrUnterminated
	case q == '"':
		esc := false
		for i := 1; i < len(d); i++ {
			c := d[i]
			switch {
			case c == '\n':
				return DoubleEscaped, i, ErrUnterminated
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				return DoubleEscaped, i + 1, nil
			}
		}
		return DoubleEscaped, len(d), ErrUnterminated
	}
	return 0, 0, fmt.Errorf("%w %q", ErrUnexpected, q)
}

// DecodeString turns the raw content of a literal of the given kind into
// its string value.  span is the span of the whole literal and anchors any
// error.
//
// Escaped kinds are unescaped.  Multi-line kinds whose raw content holds a
// newline must begin and end with one; exactly one newline is stripped
// from each end.
func DecodeString(kind StringKind, raw string, span Span) (string, error) {
	if kind.MultiLine() && strings.Contains(raw, "\n") {
		switch {
		case strings.HasPrefix(raw, "\n"):
			raw = raw[1:]
		case strings.HasPrefix(raw, "\r\n"):
			raw = raw[2:]
		default:
			return "", &MultilineBoundaryError{Span: span, Start: true}
		}
		switch {
		case raw == "":
			// a lone newline both opens and closes
		case strings.HasSuffix(raw, "\r\n"):
			raw = raw[:len(raw)-2]
		case strings.HasSuffix(raw, "\n"):
			raw = raw[:len(raw)-1]
		default:
			return "", &MultilineBoundaryError{Span: span, Start: false}
		}
	}
	if !kind.Escaped() {
		return raw, nil
	}
	s, err := Unescape(raw)
	if err != nil {
		return "", &StringEscapeError{Span: span, Detail: err.Error()}
	}
	return s, nil
}

// Unescape processes backslash escapes in s.
func Unescape(s string) (string, error) {
	if !strings.Contains(s, "\\") {
		return s, nil
	}
	b := &strings.Builder{}
	b.Grow(len(s))
	i := 0
	for i < len(s) {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("trailing backslash")
		}
		e := s[i+1]
		i += 2
		switch e {
		case '\\', '"', '\'', '/':
			b.WriteByte(e)
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '0':
			b.WriteByte(0)
		case 'u':
			r, n, err := unicodeEscape(s[i:])
			if err != nil {
				return "", err
			}
			i += n
			b.WriteRune(r)
		default:
			r, _ := utf8.DecodeRuneInString(s[i-1:])
			return "", fmt.Errorf("unknown escape \\%c", r)
		}
	}
	return b.String(), nil
}

// unicodeEscape decodes what follows `\u`: either {X...} or XXXX, the
// latter possibly followed by a low surrogate `\uXXXX`.
func unicodeEscape(s string) (rune, int, error) {
	if strings.HasPrefix(s, "{") {
		j := strings.IndexByte(s, '}')
		if j < 2 || j > 7 || !allHex([]byte(s[1:j])) {
			return 0, 0, fmt.Errorf("bad unicode escape \\u%s", s[:min(len(s), 8)])
		}
		v, _ := strconv.ParseUint(s[1:j], 16, 32)
		r := rune(v)
		if !utf8.ValidRune(r) {
			return 0, 0, fmt.Errorf("invalid code point U+%X", v)
		}
		return r, j + 1, nil
	}
	r, err := hex4(s)
	if err != nil {
		return 0, 0, err
	}
	if r < 0xD800 || r > 0xDFFF {
		return r, 4, nil
	}
	if r > 0xDBFF || !strings.HasPrefix(s[4:], "\\u") {
		return 0, 0, fmt.Errorf("unpaired surrogate \\u%s", s[:4])
	}
	lo, err := hex4(s[6:])
	if err != nil {
		return 0, 0, err
	}
	if lo < 0xDC00 || lo > 0xDFFF {
		return 0, 0, fmt.Errorf("unpaired surrogate \\u%s", s[:4])
	}
	return (r-0xD800)<<10 + (lo - 0xDC00) + 0x10000, 10, nil
}

func hex4(s string) (rune, error) {
	if len(s) < 4 || !allHex([]byte(s[:4])) {
		return 0, fmt.Errorf("bad unicode escape \\u%s", s[:min(len(s), 4)])
	}
	dst := []byte{0, 0}
	if _, err := hex.Decode(dst, []byte(s[:4])); err != nil {
		return 0, err
	}
	return rune(dst[0])<<8 | rune(dst[1]), nil
}

func allHex(d []byte) bool {
	for _, c := range d {
		if c >= '0' && c <= '9' {
			continue
		}
		if c >= 'a' && c <= 'f' {
			continue
		}
		if c >= 'A' && c <= 'F' {
			continue
		}
		return false
	}
	return true
}

// Quote returns v as a one line double quoted literal.
func Quote(v string) string {
	return `"` + escape(v, false) + `"`
}

// escape backslash-escapes v.  With keepNL, newlines and tabs are written
// as is, for use inside a multi-line literal.
func escape(v string, keepNL bool) string {
	d := make([]byte, 0, len(v)+2)
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			if keepNL {
				d = append(d, '\n')
				continue
			}
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			if keepNL {
				d = append(d, '\t')
				continue
			}
			d = append(d, '\\', 't')
		default:
			if unicode.IsControl(r) {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return string(d)
}
