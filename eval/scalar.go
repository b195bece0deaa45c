package eval

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/parse"
	"github.com/signadot/marc-format/marc/token"
)

// Scalar builds the leaf node for a literal.  Strings are decoded here, so
// escape and multi-line boundary errors surface at evaluation.  Integers
// that do not fit an int64 become numbers.
func Scalar(lit *parse.Literal) (*ir.Node, error) {
	var res *ir.Node
	switch lit.Kind {
	case parse.StringLiteral:
		s, err := token.DecodeString(lit.StringKind, lit.Raw, lit.Span)
		if err != nil {
			return nil, err
		}
		res = ir.FromString(s)
	case parse.IntegerLiteral:
		i, err := strconv.ParseInt(lit.Raw, 10, 64)
		if err == nil {
			res = ir.FromInt(i)
			break
		}
		if !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: integer %q: %w", errInternal, lit.Raw, err)
		}
		fallthrough
	case parse.NumberLiteral:
		d, err := decimal.NewFromString(lit.Raw)
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %w", errInternal, lit.Raw, err)
		}
		res = ir.FromNumber(d)
	case parse.BoolLiteral:
		res = ir.FromBool(lit.Bool)
	case parse.NullLiteral:
		res = ir.Null()
	default:
		return nil, fmt.Errorf("%w: literal kind %s", errInternal, lit.Kind)
	}
	return res.WithSpan(lit.Span), nil
}
