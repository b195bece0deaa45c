package ir

import (
	"strconv"
	"sync/atomic"
)

// ImplicitGlyph is how implicit keys are displayed.
const ImplicitGlyph = "+"

// MapKey is an implicit (append) key or an explicit identifier key.
type MapKey struct {
	implicit uint64
	Ident    Identifier
}

// KeyID is the comparable identity of a MapKey.
type KeyID struct {
	implicit uint64
	name     string
}

func Explicit(id Identifier) MapKey {
	return MapKey{Ident: id}
}

func (k MapKey) IsImplicit() bool {
	return k.implicit != 0
}

func (k MapKey) ID() KeyID {
	if k.implicit != 0 {
		return KeyID{implicit: k.implicit}
	}
	return KeyID{name: k.Ident.Value}
}

func (k MapKey) String() string {
	if k.implicit != 0 {
		return ImplicitGlyph
	}
	return k.Ident.String()
}

// GoString exposes the implicit counter for debugging only.
func (k MapKey) GoString() string {
	if k.implicit != 0 {
		return "implicit#" + strconv.FormatUint(k.implicit, 10)
	}
	return "explicit(" + k.Ident.String() + ")"
}

// KeyGen mints implicit keys.  Keys from one generator are never reused.
// A generator is normally scoped to a single evaluation.
type KeyGen struct {
	n atomic.Uint64
}

func NewKeyGen() *KeyGen {
	return &KeyGen{}
}

func (g *KeyGen) Next() MapKey {
	return MapKey{implicit: g.n.Add(1)}
}
