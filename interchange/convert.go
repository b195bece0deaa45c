package interchange

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/signadot/marc-format/marc/encode"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/token"
)

// FromInterchange builds a tree from a generic value.  The root must be
// an object or an array.
func FromInterchange(v any) (*ir.Node, error) {
	v = FromPlain(v)
	switch v.(type) {
	case *Object, []any:
	default:
		return nil, fmt.Errorf("%w: got %T", ErrRootScalar, v)
	}
	return fromValue(v, ir.NewKeyGen())
}

func fromValue(v any, keys *ir.KeyGen) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case Number:
		return fromNumber(x)
	case *Object:
		res := ir.NewContainer(ir.ObjectType, token.Span{})
		for _, k := range x.Keys {
			c, err := fromValue(x.Values[k], keys)
			if err != nil {
				return nil, err
			}
			res.Set(ir.Explicit(ir.NewIdentifier(k)), c)
		}
		return res, nil
	case []any:
		res := ir.NewContainer(ir.ArrayType, token.Span{})
		for i, e := range x {
			c, err := fromValue(e, keys)
			if err != nil {
				return nil, err
			}
			k := keys.Next()
			if lineCount(c) > 1 {
				k = ir.Explicit(ir.Unquoted(strconv.Itoa(i)))
			}
			res.Set(k, c)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func fromNumber(n Number) (*ir.Node, error) {
	if n.IsInteger() {
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return ir.FromInt(i), nil
		}
	}
	d, err := decimal.NewFromString(string(n))
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrBadNumber, n, err)
	}
	return ir.FromNumber(d), nil
}

// lineCount is the number of lines node prints as.
func lineCount(node *ir.Node) int {
	if node.IsLeaf() {
		return 1
	}
	n := 0
	for _, c := range node.Values {
		n += lineCount(c)
	}
	return n
}

// ToInterchange converts a tree to a generic value.  Objects and maps
// become *Object; arrays keep slot order.
func ToInterchange(node *ir.Node) (any, error) {
	switch node.Type {
	case ir.NullType:
		return nil, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.StringType:
		return node.String, nil
	case ir.IntegerType:
		return Number(strconv.FormatInt(node.Int64, 10)), nil
	case ir.NumberType:
		return Number(encode.NumberLiteral(node.Number)), nil
	case ir.ObjectType, ir.MapType:
		o := NewObject()
		for i, k := range node.Keys {
			v, err := ToInterchange(node.Values[i])
			if err != nil {
				return nil, err
			}
			o.Set(k.Ident.Value, v)
		}
		return o, nil
	case ir.ArrayType:
		res := make([]any, 0, len(node.Values))
		for _, c := range node.Values {
			v, err := ToInterchange(c)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	}
	return nil, ErrUninitialized
}
