package diag

import "github.com/fatih/color"

type renderOpts struct {
	colors bool
}

type RenderOption func(*renderOpts)

// Colors forces colored output on or off regardless of the terminal.
func Colors(v bool) RenderOption {
	return func(o *renderOpts) { o.colors = v }
}

func (o *renderOpts) paint(s Severity, text string) string {
	if !o.colors {
		return text
	}
	var c *color.Color
	switch s {
	case Error:
		c = color.New(color.FgRed, color.Bold)
	case Help:
		c = color.New(color.FgGreen)
	default:
		c = color.New(color.FgBlue)
	}
	c.EnableColor()
	return c.Sprint(text)
}

func (o *renderOpts) gutter(text string) string {
	if !o.colors {
		return text
	}
	c := color.New(color.FgBlue, color.Bold)
	c.EnableColor()
	return c.Sprint(text)
}
