package eval

import "github.com/signadot/marc-format/marc/ir"

type evalOpts struct {
	keys *ir.KeyGen
}

type EvalOption func(*evalOpts)

// WithKeyGen supplies the generator for implicit array keys.  By default
// each evaluation uses a fresh one.
func WithKeyGen(g *ir.KeyGen) EvalOption {
	return func(o *evalOpts) { o.keys = g }
}
