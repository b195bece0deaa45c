package diag

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/signadot/marc-format/marc/token"
)

// Render draws the report for err against src.
func Render(err error, src []byte, opts ...RenderOption) string {
	return FromError(err).Render(src, opts...)
}

type mark struct {
	ann   *Annotation
	col   int
	width int
}

func (r *Report) Render(src []byte, opts ...RenderOption) string {
	rOpts := &renderOpts{}
	for _, f := range opts {
		f(rOpts)
	}
	b := &strings.Builder{}
	b.WriteString(rOpts.paint(Error, Error.String()))
	b.WriteString(": " + r.Title + "\n")
	if len(r.Annotations) == 0 {
		return b.String()
	}
	pd := token.NewPosDoc(src)
	shown := map[int]bool{}
	marks := map[int][]mark{}
	for i := range r.Annotations {
		a := &r.Annotations[i]
		start := clampOffset(src, a.Span.Start)
		end := max(clampOffset(src, a.Span.End), start)
		sl, sc := pd.LineCol(start)
		el := sl
		if end > start {
			el, _ = pd.LineCol(end - 1)
		}
		for ln := sl; ln <= el; ln++ {
			shown[ln] = true
		}
		text := pd.Line(sl)
		sc = min(sc, len(text))
		stop := len(text)
		if el == sl {
			stop = min(sc+end-start, len(text))
		}
		marks[sl] = append(marks[sl], mark{
			ann:   a,
			col:   sc,
			width: max(utf8.RuneCountInString(text[sc:stop]), 1),
		})
	}
	lines := make([]int, 0, len(shown))
	for ln := range shown {
		lines = append(lines, ln)
	}
	sort.Ints(lines)
	width := len(strconv.Itoa(lines[len(lines)-1] + 1))
	gutter := rOpts.gutter(strings.Repeat(" ", width) + " |")
	b.WriteString(gutter + "\n")

	writeSrc := func(ln int) {
		num := rOpts.gutter(fmt.Sprintf("%*d |", width, ln+1))
		text := pd.Line(ln)
		if text == "" {
			b.WriteString(num + "\n")
			return
		}
		b.WriteString(num + " " + text + "\n")
	}
	prev := -1
	for _, ln := range lines {
		switch {
		case prev < 0:
		case ln-prev == 2:
			writeSrc(prev + 1)
		case ln-prev > 2:
			b.WriteString("...\n")
		}
		writeSrc(ln)
		text := pd.Line(ln)
		ms := marks[ln]
		sort.SliceStable(ms, func(i, j int) bool { return ms[i].col < ms[j].col })
		for _, m := range ms {
			sym := "-"
			label := m.ann.Severity.String() + ": " + m.ann.Label
			if m.ann.Severity == Error {
				sym = "^"
				label = m.ann.Label
			}
			b.WriteString(gutter + " " + padLike(text[:m.col]))
			b.WriteString(rOpts.paint(m.ann.Severity, strings.Repeat(sym, m.width)+" "+label))
			b.WriteByte('\n')
		}
		prev = ln
	}
	b.WriteString(gutter + "\n")
	return b.String()
}

// clampOffset keeps off inside src.  An offset at the end of input that
// follows a final newline is moved onto that newline, so it is drawn at
// the end of the last line.
func clampOffset(src []byte, off int) int {
	off = min(max(off, 0), len(src))
	if off == len(src) && off > 0 && src[off-1] == '\n' {
		off--
	}
	return off
}

// padLike returns whitespace as wide as prefix, keeping its tabs.
func padLike(prefix string) string {
	b := &strings.Builder{}
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')
			continue
		}
		b.WriteByte(' ')
	}
	return b.String()
}
