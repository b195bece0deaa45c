package ir

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/signadot/marc-format/marc/token"
)

type Node struct {
	Type Type

	// Span is where the node's type was inferred: the literal of a scalar
	// or the access that first materialized a container.
	Span token.Span

	// Comment holds the comment lines (without '#') attached to the entry
	// that produced this node.
	Comment []string

	String string
	Bool   bool
	Int64  int64
	Number decimal.Decimal

	Keys   []MapKey
	Values []*Node
	index  map[KeyID]int
}

func Uninitialized(span token.Span) *Node {
	return &Node{Type: UninitializedType, Span: span}
}

// NewContainer returns an empty object, map or array.
func NewContainer(t Type, span token.Span) *Node {
	return &Node{Type: t, Span: span}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(b bool) *Node {
	return &Node{Type: BoolType, Bool: b}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

func FromNumber(d decimal.Decimal) *Node {
	return &Node{Type: NumberType, Number: d}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func (y *Node) WithSpan(s token.Span) *Node {
	y.Span = s
	return y
}

func (y *Node) WithComment(lines ...string) *Node {
	y.Comment = lines
	return y
}

func (y *Node) IsLeaf() bool {
	return y.Type.IsLeaf()
}

func (y *Node) IsContainer() bool {
	return y.Type.IsContainer()
}

func (y *Node) Len() int {
	return len(y.Keys)
}

func (y *Node) Lookup(k MapKey) (*Node, bool) {
	if y.index == nil {
		return nil, false
	}
	i, ok := y.index[k.ID()]
	if !ok {
		return nil, false
	}
	return y.Values[i], true
}

// Slot returns the child at k, first inserting an uninitialized child
// spanning span if there is none.
func (y *Node) Slot(k MapKey, span token.Span) *Node {
	if c, ok := y.Lookup(k); ok {
		return c
	}
	c := Uninitialized(span)
	y.insert(k, c)
	return c
}

// Set replaces the child at k, appending k if it is new.
func (y *Node) Set(k MapKey, v *Node) {
	if y.index != nil {
		if i, ok := y.index[k.ID()]; ok {
			y.Values[i] = v
			return
		}
	}
	y.insert(k, v)
}

func (y *Node) insert(k MapKey, v *Node) {
	if y.index == nil {
		y.index = make(map[KeyID]int)
	}
	y.index[k.ID()] = len(y.Keys)
	y.Keys = append(y.Keys, k)
	y.Values = append(y.Values, v)
}

// Field looks up an explicit key by value.
func (y *Node) Field(name string) *Node {
	c, _ := y.Lookup(Explicit(Unquoted(name)))
	return c
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Span = y.Span
	dst.Comment = append([]string(nil), y.Comment...)
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int64 = y.Int64
	dst.Number = y.Number
	dst.Keys = nil
	dst.Values = nil
	dst.index = nil
	for i, k := range y.Keys {
		dst.insert(k, y.Values[i].Clone())
	}
	return dst
}

// Get follows p from y.  Each access must match the container type it
// is applied to.  An explicit array access that names no key but is a
// non-negative integer selects that position instead.
func (y *Node) Get(p Path) (*Node, error) {
	if len(p) == 0 {
		return nil, &PathError{Path: p, At: -1, Err: ErrEmptyPath}
	}
	cur := y
	for i, a := range p {
		if a.Kind == ArrayAccessImplicit {
			return nil, &PathError{Path: p, At: i, Err: ErrImplicitAccess}
		}
		if cur.Type != a.Kind.Type() {
			return nil, &PathError{Path: p, At: i, Err: ErrKindMismatch}
		}
		next, ok := cur.Lookup(Explicit(a.Key))
		if !ok && a.Kind == ArrayAccessExplicit {
			next, ok = cur.position(a.Key.Value)
		}
		if !ok {
			return nil, &PathError{Path: p, At: i, Err: ErrNotFound}
		}
		cur = next
	}
	return cur, nil
}

func (y *Node) position(v string) (*Node, bool) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 || n >= len(y.Values) {
		return nil, false
	}
	return y.Values[n], true
}

// Walk calls f on y and its descendants in document order, stopping at
// the first error.
func (y *Node) Walk(f func(path []MapKey, n *Node) error) error {
	return y.walk(nil, f)
}

func (y *Node) walk(path []MapKey, f func([]MapKey, *Node) error) error {
	if err := f(path, y); err != nil {
		return err
	}
	for i, k := range y.Keys {
		if err := y.Values[i].walk(append(path[:len(path):len(path)], k), f); err != nil {
			return err
		}
	}
	return nil
}
