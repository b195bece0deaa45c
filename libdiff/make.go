package libdiff

import (
	"bytes"

	"github.com/signadot/marc-format/marc/encode"
	"github.com/signadot/marc-format/marc/ir"
)

// DiffNodes diffs the canonical text of two trees.
func DiffNodes(from, to *ir.Node) ([]Line, error) {
	a, err := canonical(from)
	if err != nil {
		return nil, err
	}
	b, err := canonical(to)
	if err != nil {
		return nil, err
	}
	return DiffText(a, b), nil
}

func canonical(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, encode.EncodeComments(false)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
