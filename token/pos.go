package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc indexes the newlines of a source buffer so byte offsets can be
// mapped to 0-based line and column numbers.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.nl(i)
		}
	}
	return p
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] == i {
		return
	}
	if p.d[i] != '\n' {
		panic("nl: not a newline")
	}
	p.n = append(p.n, i)
}

// LineCol returns the 0-based line and byte column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

// NumLines returns the number of lines, counting a final line without a
// trailing newline.
func (p *PosDoc) NumLines() int {
	if len(p.n) > 0 && p.n[len(p.n)-1] == len(p.d)-1 {
		return len(p.n)
	}
	return len(p.n) + 1
}

// LineStart returns the offset of the first byte of line ln.
func (p *PosDoc) LineStart(ln int) int {
	if ln <= 0 {
		return 0
	}
	if ln > len(p.n) {
		return len(p.d)
	}
	return p.n[ln-1] + 1
}

// LineEnd returns the offset of the newline ending line ln, or the length
// of the document for the last line.
func (p *PosDoc) LineEnd(ln int) int {
	if ln < len(p.n) {
		return p.n[ln]
	}
	return len(p.d)
}

// Line returns the text of line ln without its newline.
func (p *PosDoc) Line(ln int) string {
	s, e := p.LineStart(ln), p.LineEnd(ln)
	if e > s && p.d[e-1] == '\r' {
		e--
	}
	return string(p.d[s:e])
}

// Offset is the inverse of LineCol, clamped to the document.
func (p *PosDoc) Offset(ln, col int) int {
	s, e := p.LineStart(ln), p.LineEnd(ln)
	return min(s+max(col, 0), e)
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line()+1, p.Col()+1)
}
