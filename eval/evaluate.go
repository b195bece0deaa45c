package eval

import (
	"github.com/signadot/marc-format/marc/debug"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/parse"
	"github.com/signadot/marc-format/marc/token"
)

// Evaluate folds stmts into a tree.  Comment statements are ignored.  An
// empty document evaluates to an empty object.
func Evaluate(stmts []parse.Statement, opts ...EvalOption) (*ir.Node, error) {
	eOpts := &evalOpts{}
	for _, f := range opts {
		f(eOpts)
	}
	if eOpts.keys == nil {
		eOpts.keys = ir.NewKeyGen()
	}
	root := ir.Uninitialized(token.Span{})
	for _, st := range stmts {
		e, ok := st.(*parse.Entry)
		if !ok {
			continue
		}
		if debug.Eval() {
			debug.Logf("eval %s = %s\n", e.Path, e.Value.Text)
		}
		if err := assign(root, e, eOpts.keys); err != nil {
			return nil, err
		}
	}
	if root.Type == ir.UninitializedType {
		root.Type = ir.ObjectType
	}
	return root, nil
}

func assign(root *ir.Node, e *parse.Entry, keys *ir.KeyGen) error {
	cur := root
	for i, a := range e.Path {
		want := a.Kind.Type()
		if cur.Type == ir.UninitializedType {
			cur.Type = want
			cur.Span = a.Span
		}
		if cur.Type != want {
			return &TypeMismatchError{
				Path:       e.Path[:i+1],
				Expected:   want,
				At:         a.Span,
				Actual:     cur.Type,
				InferredAt: cur.Span,
			}
		}
		k := ir.Explicit(a.Key)
		if a.Kind == ir.ArrayAccessImplicit {
			k = keys.Next()
		}
		cur = cur.Slot(k, a.Span)
	}
	v, err := Scalar(&e.Value)
	if err != nil {
		return err
	}
	switch {
	case cur.Type == ir.UninitializedType:
		*cur = *v
		cur.Comment = e.Comment
		return nil
	case cur.IsLeaf():
		return &DuplicateAssignmentError{
			Path:   e.Path,
			First:  cur.Span,
			Second: v.Span,
		}
	default:
		return &TypeMismatchError{
			Path:       e.Path,
			Expected:   v.Type,
			At:         v.Span,
			Actual:     cur.Type,
			InferredAt: cur.Span,
			Assignment: true,
		}
	}
}
