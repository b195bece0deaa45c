package encode

import (
	"github.com/signadot/marc-format/marc/ir"

	"github.com/fatih/color"
)

// Colorable selects a color by the type a piece of output belongs to
// and the role it plays.
type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	CommentColor ColorAttr = iota
	// FieldColor is for keys; Type is the container they index.
	FieldColor
	ValueColor
	// SepColor is for . {} [] and " = ".
	SepColor
	LiteralSingleColor
	LiteralMultiColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the default palette.  Path segments are colored by
// the type of the container they index, literals by scalar type.
func NewColors() *Colors {
	c := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		c.set(t, CommentColor, color.New(color.FgBlue))
		c.set(t, SepColor, color.RGB(255, 0, 196))
	}
	c.set(ir.ObjectType, FieldColor, color.RGB(128, 168, 196))
	c.set(ir.MapType, FieldColor, color.RGB(196, 168, 128))
	c.set(ir.ArrayType, FieldColor, color.RGB(196, 96, 16))

	c.set(ir.IntegerType, ValueColor, color.RGB(128, 216, 236))
	c.set(ir.NumberType, ValueColor, color.RGB(128, 216, 236))
	c.set(ir.NullType, ValueColor, color.RGB(168, 0, 196))
	c.set(ir.BoolType, ValueColor, color.New(color.FgCyan))

	c.set(ir.StringType, LiteralSingleColor, color.RGB(88, 158, 86))
	c.set(ir.StringType, LiteralMultiColor, color.RGB(198, 198, 46))
	return c
}

// set registers fc for (t, a).  Colors are forced on: callers decide
// whether to color at all.
func (c *Colors) set(t ir.Type, a ColorAttr, fc *color.Color) {
	fc.EnableColor()
	c.Map[Colorable{Type: t, Attr: a}] = func(v string, _ ...any) string {
		return fc.Sprint(v)
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t ir.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
