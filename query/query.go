// Package query evaluates expr-lang expressions against marc documents.
//
// An expression sees the document as `doc`, with objects and maps as
// Go maps and numbers as int64 or float64.  The functions
//
//	get(path)   value at a marc path such as ".a{b}[0]"
//	has(path)   whether the path resolves
//	kind(path)  type name at the path ("Object", "Integer", ...)
//
// are also available.
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/marc-format/marc/debug"
	"github.com/signadot/marc-format/marc/interchange"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/parse"
)

var ErrQuery = errors.New("query error")

// Env is the environment an expression runs in.  The vm requires a
// plain map, so Env is an alias.
type Env = map[string]any

// Program is a compiled expression bound to one document.
type Program struct {
	prg *vm.Program
	env Env
}

// Compile compiles input against node.
func Compile(input string, node *ir.Node) (*Program, error) {
	doc, err := interchange.ToInterchange(node)
	if err != nil {
		return nil, err
	}
	env := Env{"doc": interchange.Plain(doc)}
	prg, err := expr.Compile(input, exprOpts(node, env)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Program{prg: prg, env: env}, nil
}

// Run runs the program.
func (p *Program) Run() (any, error) {
	res, err := vm.Run(p.prg, p.env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return res, nil
}

// Eval compiles and runs input against node.
func Eval(input string, node *ir.Node) (any, error) {
	if debug.Eval() {
		debug.Logf("query %q\n", input)
	}
	p, err := Compile(input, node)
	if err != nil {
		return nil, err
	}
	return p.Run()
}

func exprOpts(root *ir.Node, env Env) []expr.Option {
	return []expr.Option{
		expr.Env(env),
		expr.Function("get", func(params ...any) (any, error) {
			node, err := lookup(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			v, err := interchange.ToInterchange(node)
			if err != nil {
				return nil, err
			}
			return interchange.Plain(v), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			_, err := lookup(root, params[0].(string))
			if errors.Is(err, ir.ErrNotFound) || errors.Is(err, ir.ErrKindMismatch) {
				return false, nil
			}
			if err != nil {
				return nil, err
			}
			return true, nil
		},
			new(func(string) bool)),
		expr.Function("kind", func(params ...any) (any, error) {
			node, err := lookup(root, params[0].(string))
			if err != nil {
				return nil, err
			}
			return node.Type.String(), nil
		},
			new(func(string) string)),
	}
}

func lookup(root *ir.Node, p string) (*ir.Node, error) {
	if p == "" {
		return root, nil
	}
	path, err := parse.ParsePath(p)
	if err != nil {
		return nil, err
	}
	return root.Get(path)
}
