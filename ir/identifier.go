package ir

import (
	"github.com/signadot/marc-format/marc/token"
)

// Identifier keys object and map fields and explicit array slots.
//
// Equality is on Value alone; Quoted only records how the identifier was
// written so it prints the same way.
type Identifier struct {
	Value  string
	Quoted bool
}

func Unquoted(v string) Identifier {
	return Identifier{Value: v}
}

func Quoted(v string) Identifier {
	return Identifier{Value: v, Quoted: true}
}

// NewIdentifier picks the unquoted form when v is a bare word.
func NewIdentifier(v string) Identifier {
	return Identifier{Value: v, Quoted: !token.IsBare(v)}
}

func (id Identifier) Equal(o Identifier) bool {
	return id.Value == o.Value
}

func (id Identifier) String() string {
	return token.IdentLiteral(id.Value, id.Quoted)
}
