package ir

import (
	"strings"

	"github.com/signadot/marc-format/marc/token"
)

// AccessKind is the bracket form of one path segment.
type AccessKind int

const (
	// ObjectAccess is .name
	ObjectAccess AccessKind = iota
	// MapAccess is {name}
	MapAccess
	// ArrayAccessImplicit is [+]
	ArrayAccessImplicit
	// ArrayAccessExplicit is [name]
	ArrayAccessExplicit
)

// Type is the container type an access of kind k requires of its parent.
func (k AccessKind) Type() Type {
	switch k {
	case ObjectAccess:
		return ObjectType
	case MapAccess:
		return MapType
	default:
		return ArrayType
	}
}

func (k AccessKind) String() string {
	switch k {
	case ObjectAccess:
		return "object access"
	case MapAccess:
		return "map access"
	case ArrayAccessImplicit:
		return "implicit array access"
	case ArrayAccessExplicit:
		return "explicit array access"
	}
	return "<unknown access>"
}

// Access is one path segment.  Key is unset for ArrayAccessImplicit.
type Access struct {
	Kind AccessKind
	Key  Identifier
	Span token.Span
}

func (a Access) String() string {
	switch a.Kind {
	case ObjectAccess:
		return "." + a.Key.String()
	case MapAccess:
		return "{" + a.Key.String() + "}"
	case ArrayAccessImplicit:
		return "[" + ImplicitGlyph + "]"
	default:
		return "[" + a.Key.String() + "]"
	}
}

// Path is a non-empty sequence of accesses from the root.
type Path []Access

func (p Path) String() string {
	b := &strings.Builder{}
	for _, a := range p {
		b.WriteString(a.String())
	}
	return b.String()
}

// Span covers every access of the path.
func (p Path) Span() token.Span {
	s := token.Span{}
	for i := range p {
		s = s.Join(p[i].Span)
	}
	return s
}
