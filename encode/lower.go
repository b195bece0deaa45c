package encode

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/signadot/marc-format/marc/ir"
)

// Line is one printed entry: the path from the root to a scalar.
type Line struct {
	Path  ir.Path
	Value *ir.Node
}

// Lower lists the entries of node in print order.
func Lower(node *ir.Node) ([]Line, error) {
	if node.IsLeaf() {
		return nil, ErrRootScalar
	}
	var res []Line
	if err := lower(node, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func lower(node *ir.Node, path ir.Path, res *[]Line) error {
	switch {
	case node.Type == ir.UninitializedType:
		return fmt.Errorf("%w at %s", ErrUninitialized, path)
	case node.IsLeaf():
		*res = append(*res, Line{Path: path, Value: node})
		return nil
	}
	for _, i := range Order(node) {
		a := access(node.Type, node.Keys[i])
		if err := lower(node.Values[i], append(path[:len(path):len(path)], a), res); err != nil {
			return err
		}
	}
	return nil
}

// Order gives the print order of a container's slots as indices into
// Keys.  Object and map fields sort by key value; array slots keep their
// order.
func Order(node *ir.Node) []int {
	res := make([]int, len(node.Keys))
	for i := range res {
		res[i] = i
	}
	if node.Type == ir.ArrayType {
		return res
	}
	sort.SliceStable(res, func(i, j int) bool {
		return node.Keys[res[i]].Ident.Value < node.Keys[res[j]].Ident.Value
	})
	return res
}

func access(t ir.Type, k ir.MapKey) ir.Access {
	switch {
	case t == ir.ObjectType:
		return ir.Access{Kind: ir.ObjectAccess, Key: k.Ident}
	case t == ir.MapType:
		return ir.Access{Kind: ir.MapAccess, Key: k.Ident}
	case k.IsImplicit():
		return ir.Access{Kind: ir.ArrayAccessImplicit}
	default:
		return ir.Access{Kind: ir.ArrayAccessExplicit, Key: k.Ident}
	}
}

// Literal renders a scalar in canonical form.
func Literal(node *ir.Node) string {
	switch node.Type {
	case ir.StringType:
		return stringLiteral(node.String)
	case ir.IntegerType:
		return strconv.FormatInt(node.Int64, 10)
	case ir.NumberType:
		return NumberLiteral(node.Number)
	case ir.BoolType:
		return strconv.FormatBool(node.Bool)
	case ir.NullType:
		return "null"
	}
	return ""
}

// NumberLiteral always includes a fraction or exponent, so the literal
// reads back as a number rather than an integer.
func NumberLiteral(d decimal.Decimal) string {
	s := d.String()
	if strings.ContainsAny(s, ".eE") {
		return s
	}
	return s + ".0"
}
