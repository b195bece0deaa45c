package ir

// Equal reports whether a and b hold the same data.  Spans, comments and
// identifier quoting are ignored.  Implicit keys match any other implicit
// key at the same position, so trees evaluated with different key
// generators compare equal.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType, UninitializedType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case IntegerType:
		return a.Int64 == b.Int64
	case NumberType:
		return a.Number.Equal(b.Number)
	case StringType:
		return a.String == b.String
	}
	if len(a.Keys) != len(b.Keys) {
		return false
	}
	for i, ak := range a.Keys {
		bk := b.Keys[i]
		if ak.IsImplicit() != bk.IsImplicit() {
			return false
		}
		if !ak.IsImplicit() && !ak.Ident.Equal(bk.Ident) {
			return false
		}
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}
