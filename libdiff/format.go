package libdiff

import (
	"strings"

	"github.com/fatih/color"
)

type formatOpts struct {
	context int
	colors  bool
	from    string
	to      string
}

type FormatOption func(*formatOpts)

// Context limits unchanged lines shown around each change.  A negative
// value, the default, shows all lines.
func Context(n int) FormatOption {
	return func(o *formatOpts) { o.context = n }
}

func Colors(v bool) FormatOption {
	return func(o *formatOpts) { o.colors = v }
}

// Names adds a "--- from" / "+++ to" header.
func Names(from, to string) FormatOption {
	return func(o *formatOpts) { o.from, o.to = from, to }
}

// Format renders lines with -, + and space prefixes.  Skipped runs of
// unchanged lines are shown as "@@ ... @@".
func Format(lines []Line, opts ...FormatOption) string {
	fOpts := &formatOpts{context: -1}
	for _, f := range opts {
		f(fOpts)
	}
	paint := func(op Op, s string) string {
		if !fOpts.colors {
			return s
		}
		var c *color.Color
		switch op {
		case Delete:
			c = color.New(color.FgRed)
		case Insert:
			c = color.New(color.FgGreen)
		default:
			return s
		}
		c.EnableColor()
		return c.Sprint(s)
	}
	keep := visible(lines, fOpts.context)
	b := &strings.Builder{}
	if fOpts.from != "" || fOpts.to != "" {
		b.WriteString(paint(Delete, "--- "+fOpts.from) + "\n")
		b.WriteString(paint(Insert, "+++ "+fOpts.to) + "\n")
	}
	skipped := false
	for i, ln := range lines {
		if !keep[i] {
			skipped = true
			continue
		}
		if skipped {
			b.WriteString("@@ ... @@\n")
			skipped = false
		}
		b.WriteString(paint(ln.Op, ln.Op.Prefix()+ln.Text) + "\n")
	}
	if skipped {
		b.WriteString("@@ ... @@\n")
	}
	return b.String()
}

func visible(lines []Line, context int) []bool {
	keep := make([]bool, len(lines))
	if context < 0 {
		for i := range keep {
			keep[i] = true
		}
		return keep
	}
	for i, ln := range lines {
		if ln.Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			keep[j] = true
		}
	}
	return keep
}
