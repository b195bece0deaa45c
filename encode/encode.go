package encode

import (
	"io"
	"strings"

	"github.com/signadot/marc-format/marc/debug"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/token"
)

type EncState struct {
	comments bool
	lines    int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the canonical text of node to w.  node must be a
// container and must not hold uninitialized values.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{comments: true}
	for _, opt := range opts {
		opt(es)
	}
	lines, err := Lower(node)
	if err != nil {
		return err
	}
	for i := range lines {
		if err := es.writeLine(w, &lines[i]); err != nil {
			return err
		}
	}
	if debug.Encode() {
		debug.Logf("encode: %d lines\n", es.lines)
	}
	return nil
}

func (es *EncState) writeLine(w io.Writer, ln *Line) error {
	b := &strings.Builder{}
	if es.comments && len(ln.Value.Comment) != 0 {
		if es.lines != 0 {
			b.WriteByte('\n')
		}
		for _, c := range ln.Value.Comment {
			b.WriteString(es.color(ir.StringType, CommentColor, "#"+c))
			b.WriteByte('\n')
		}
	}
	for _, a := range ln.Path {
		es.writeAccess(b, a)
	}
	b.WriteString(es.color(ln.Value.Type, SepColor, " = "))
	b.WriteString(es.literal(ln.Value))
	b.WriteByte('\n')
	es.lines++
	return writeString(w, b.String())
}

func (es *EncState) writeAccess(b *strings.Builder, a ir.Access) {
	t := a.Kind.Type()
	switch a.Kind {
	case ir.ObjectAccess:
		b.WriteString(es.color(t, SepColor, "."))
		b.WriteString(es.color(t, FieldColor, a.Key.String()))
	case ir.MapAccess:
		b.WriteString(es.color(t, SepColor, "{"))
		b.WriteString(es.color(t, FieldColor, a.Key.String()))
		b.WriteString(es.color(t, SepColor, "}"))
	default:
		key := ir.ImplicitGlyph
		if a.Kind == ir.ArrayAccessExplicit {
			key = a.Key.String()
		}
		b.WriteString(es.color(t, SepColor, "["))
		b.WriteString(es.color(t, FieldColor, key))
		b.WriteString(es.color(t, SepColor, "]"))
	}
}

func (es *EncState) literal(n *ir.Node) string {
	lit := Literal(n)
	if n.Type != ir.StringType {
		return es.color(n.Type, ValueColor, lit)
	}
	if strings.Contains(n.String, "\n") {
		return es.color(n.Type, LiteralMultiColor, lit)
	}
	return es.color(n.Type, LiteralSingleColor, lit)
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func stringLiteral(v string) string {
	return token.Literal(v)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
