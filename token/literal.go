package token

import (
	"strings"
	"unicode"
)

// IsBare reports whether v can be written as an unquoted identifier.
func IsBare(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if !isWordByte(v[i]) {
			return false
		}
	}
	return true
}

func isWordByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_' || c == '-':
		return true
	}
	return false
}

// Literal returns the canonical literal for the string v, choosing the
// narrowest escaping form that still reads back as v.
func Literal(v string) string {
	nl := strings.Contains(v, "\n")
	switch {
	case !printable(v, nl):
		return Quote(v)
	case !nl && !strings.Contains(v, "'"):
		return "'" + v + "'"
	case !nl && !strings.Contains(v, "'''") && !strings.HasSuffix(v, "'"):
		return "'''" + v + "'''"
	case nl && !strings.Contains(v, "'''"):
		return "'''\n" + v + "\n'''"
	case nl:
		return "\"\"\"\n" + escape(v, true) + "\n\"\"\""
	default:
		return Quote(v)
	}
}

// IdentLiteral renders an identifier: bare when allowed and not
// requested quoted, otherwise as a string literal.
func IdentLiteral(v string, quoted bool) string {
	if !quoted && IsBare(v) {
		return v
	}
	return Literal(v)
}

// printable reports whether v can appear unescaped.  Tabs are allowed,
// and newlines when multiLine.
func printable(v string, multiLine bool) bool {
	for _, r := range v {
		switch {
		case r == '\t':
		case r == '\n' && multiLine:
		case r == unicode.ReplacementChar:
			return false
		case unicode.IsControl(r):
			return false
		}
	}
	return true
}
