// Package marc reads and writes marc documents: line-oriented files in
// which every line assigns a scalar to a path, such as
//
//	.spec.ports[+] = 8080
//	.metadata.labels{app} = 'web'
//
// Load parses and evaluates a document into an *ir.Node tree; Format
// rewrites a document in canonical form.
package marc

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/marc-format/marc/debug"
	"github.com/signadot/marc-format/marc/encode"
	"github.com/signadot/marc-format/marc/eval"
	"github.com/signadot/marc-format/marc/format"
	"github.com/signadot/marc-format/marc/interchange"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/parse"
)

type LoadConfig struct {
	Comments bool
	KeyGen   *ir.KeyGen
}

type LoadOpt func(*LoadConfig)

// LoadComments controls whether comment blocks are attached to the
// values they precede.
func LoadComments(v bool) LoadOpt {
	return func(c *LoadConfig) { c.Comments = v }
}

// LoadKeyGen shares an implicit key generator across loads.
func LoadKeyGen(g *ir.KeyGen) LoadOpt {
	return func(c *LoadConfig) { c.KeyGen = g }
}

// Load parses and evaluates a marc document.
func Load(src []byte, opts ...LoadOpt) (*ir.Node, error) {
	cfg := &LoadConfig{Comments: true}
	for _, opt := range opts {
		opt(cfg)
	}
	stmts, err := parse.Parse(src, parse.ParseComments(cfg.Comments))
	if err != nil {
		return nil, err
	}
	var evalOpts []eval.EvalOption
	if cfg.KeyGen != nil {
		evalOpts = append(evalOpts, eval.WithKeyGen(cfg.KeyGen))
	}
	return eval.Evaluate(stmts, evalOpts...)
}

// Format returns the canonical form of a marc document.
func Format(src []byte, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := Load(src)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Get returns the subtree of node at a marc path such as ".a{b}[0]".
// The empty path denotes node itself.
func Get(node *ir.Node, path string) (*ir.Node, error) {
	if path == "" {
		return node, nil
	}
	p, err := parse.ParsePath(path)
	if err != nil {
		return nil, err
	}
	return node.Get(p)
}

// Decode reads a document in the given format.
func Decode(src []byte, f format.Format) (*ir.Node, error) {
	if debug.Parse() {
		debug.Logf("decode %d bytes as %s\n", len(src), f)
	}
	switch f {
	case format.MarcFormat:
		return Load(src)
	case format.JSONFormat:
		return interchange.NodeFromJSON(src)
	case format.YAMLFormat:
		return interchange.NodeFromYAML(src)
	case format.TOMLFormat:
		return interchange.NodeFromTOML(src)
	}
	return nil, fmt.Errorf("unsupported format %s", f)
}

// Encode writes node in the given format.  Encode options only apply to
// marc output.
func Encode(node *ir.Node, w io.Writer, f format.Format, opts ...encode.EncodeOption) error {
	var (
		d   []byte
		err error
	)
	switch f {
	case format.MarcFormat:
		return encode.Encode(node, w, opts...)
	case format.JSONFormat:
		d, err = interchange.NodeToJSON(node, true)
	case format.YAMLFormat:
		d, err = interchange.NodeToYAML(node)
	case format.TOMLFormat:
		d, err = interchange.NodeToTOML(node)
	default:
		return fmt.Errorf("unsupported format %s", f)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
