package ir

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/signadot/marc-format/marc/token"
)

func TestSlotInsertsOnce(t *testing.T) {
	obj := NewContainer(ObjectType, token.Span{})
	k := Explicit(Unquoted("a"))
	first := obj.Slot(k, token.NewSpan(0, 2))
	second := obj.Slot(k, token.NewSpan(5, 7))
	if first != second {
		t.Fatal("slot returned a fresh child for an existing key")
	}
	if first.Type != UninitializedType {
		t.Errorf("got %s want Uninitialized", first.Type)
	}
	if first.Span != token.NewSpan(0, 2) {
		t.Errorf("span %s", first.Span)
	}
	if obj.Len() != 1 {
		t.Errorf("len %d", obj.Len())
	}
}

func TestIdentifierEquality(t *testing.T) {
	obj := NewContainer(MapType, token.Span{})
	obj.Set(Explicit(Unquoted("a")), FromInt(1))
	c, ok := obj.Lookup(Explicit(Quoted("a")))
	if !ok || c.Int64 != 1 {
		t.Fatal("quoted and unquoted identifiers with equal values must match")
	}
	if !obj.Keys[0].Ident.Equal(Quoted("a")) {
		t.Error("Equal")
	}
}

func TestImplicitKeysUnique(t *testing.T) {
	g := NewKeyGen()
	arr := NewContainer(ArrayType, token.Span{})
	for i := 0; i < 3; i++ {
		arr.Set(g.Next(), FromInt(int64(i)))
	}
	if arr.Len() != 3 {
		t.Fatalf("len %d", arr.Len())
	}
	for i, v := range arr.Values {
		if v.Int64 != int64(i) {
			t.Errorf("position %d holds %d", i, v.Int64)
		}
		if !arr.Keys[i].IsImplicit() || arr.Keys[i].String() != "+" {
			t.Errorf("key %d: %#v", i, arr.Keys[i])
		}
	}
}

func TestSetPreservesOrder(t *testing.T) {
	obj := NewContainer(ObjectType, token.Span{})
	obj.Set(Explicit(Unquoted("b")), FromInt(1))
	obj.Set(Explicit(Unquoted("a")), FromInt(2))
	obj.Set(Explicit(Unquoted("b")), FromInt(3))
	if got := []string{obj.Keys[0].String(), obj.Keys[1].String()}; got[0] != "b" || got[1] != "a" {
		t.Errorf("order %v", got)
	}
	if obj.Field("b").Int64 != 3 {
		t.Errorf("replace failed")
	}
}

func TestGet(t *testing.T) {
	g := NewKeyGen()
	root := NewContainer(ObjectType, token.Span{})
	m := NewContainer(MapType, token.Span{})
	arr := NewContainer(ArrayType, token.Span{})
	arr.Set(g.Next(), FromString("x"))
	arr.Set(Explicit(Unquoted("k")), FromString("y"))
	m.Set(Explicit(Quoted("a b")), arr)
	root.Set(Explicit(Unquoted("m")), m)

	p := Path{
		{Kind: ObjectAccess, Key: Unquoted("m")},
		{Kind: MapAccess, Key: Quoted("a b")},
		{Kind: ArrayAccessExplicit, Key: Unquoted("k")},
	}
	n, err := root.Get(p)
	if err != nil {
		t.Fatal(err)
	}
	if n.String != "y" {
		t.Errorf("got %q", n.String)
	}

	p[2].Key = Unquoted("0")
	n, err = root.Get(p)
	if err != nil {
		t.Fatal(err)
	}
	if n.String != "x" {
		t.Errorf("positional: got %q", n.String)
	}

	p[1].Kind = ObjectAccess
	_, err = root.Get(p)
	if !errors.Is(err, ErrKindMismatch) {
		t.Errorf("expected kind mismatch, got %v", err)
	}
	var pe *PathError
	if !errors.As(err, &pe) || pe.At != 1 {
		t.Errorf("path error %#v", pe)
	}

	_, err = root.Get(Path{{Kind: ObjectAccess, Key: Unquoted("nope")}})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	_, err = root.Get(Path{{Kind: ObjectAccess, Key: Unquoted("m")}, {Kind: ArrayAccessImplicit}})
	if !errors.Is(err, ErrImplicitAccess) {
		t.Errorf("expected implicit access error, got %v", err)
	}
}

func TestPathString(t *testing.T) {
	p := Path{
		{Kind: ObjectAccess, Key: Unquoted("a")},
		{Kind: MapAccess, Key: Quoted("b c")},
		{Kind: ArrayAccessImplicit},
		{Kind: ArrayAccessExplicit, Key: Unquoted("0")},
	}
	if got, want := p.String(), `.a{'b c'}[+][0]`; got != want {
		t.Errorf("got %s want %s", got, want)
	}
}

func TestCloneAndEqual(t *testing.T) {
	g1, g2 := NewKeyGen(), NewKeyGen()
	g2.Next()
	a := NewContainer(ArrayType, token.Span{})
	a.Set(g1.Next(), FromNumber(decimal.RequireFromString("1.50")))
	b := NewContainer(ArrayType, token.NewSpan(3, 4))
	b.Set(g2.Next(), FromNumber(decimal.RequireFromString("1.5")).WithComment("c"))
	if !Equal(a, b) {
		t.Error("expected equal")
	}
	c := a.Clone()
	c.Values[0] = FromInt(2)
	if Equal(a, c) {
		t.Error("clone shares values")
	}
	if Equal(FromInt(1), FromNumber(decimal.NewFromInt(1))) {
		t.Error("integer and number must differ")
	}
}

func TestWalk(t *testing.T) {
	root := NewContainer(ObjectType, token.Span{})
	inner := NewContainer(ObjectType, token.Span{})
	inner.Set(Explicit(Unquoted("b")), Null())
	root.Set(Explicit(Unquoted("a")), inner)
	root.Set(Explicit(Unquoted("c")), FromBool(true))
	var got []int
	err := root.Walk(func(path []MapKey, n *Node) error {
		got = append(got, len(path))
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 || got[0] != 0 || got[1] != 1 || got[2] != 2 || got[3] != 1 {
		t.Errorf("depths %v", got)
	}
}
