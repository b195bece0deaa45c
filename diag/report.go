package diag

import (
	"errors"
	"fmt"

	"github.com/signadot/marc-format/marc/eval"
	"github.com/signadot/marc-format/marc/ir"
	"github.com/signadot/marc-format/marc/parse"
	"github.com/signadot/marc-format/marc/token"
)

type Severity int

const (
	Info Severity = iota
	Help
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Help:
		return "help"
	case Error:
		return "error"
	}
	return "unknown"
}

type Annotation struct {
	Severity Severity
	Span     token.Span
	Label    string
}

type Report struct {
	Title       string
	Annotations []Annotation
}

const (
	TitleParse             = "Parse Error"
	TitleTypeMismatch      = "Type Mismatch"
	TitleDuplicate         = "Duplicate Assignment"
	TitleStringEscape      = "String Escape Error"
	TitleMultilineBoundary = "Multiline String Boundary Error"
)

// FromError builds the report for err.  Errors without source locations
// get a report with no annotations, titled by the error text.
func FromError(err error) *Report {
	var (
		escErr  *token.StringEscapeError
		mlErr   *token.MultilineBoundaryError
		parErr  *parse.Error
		tmErr   *eval.TypeMismatchError
		dupErr  *eval.DuplicateAssignmentError
		tokErr  *token.TokenizeErr
		pathErr *ir.PathError
	)
	switch {
	case errors.As(err, &escErr):
		return &Report{
			Title: TitleStringEscape,
			Annotations: []Annotation{
				{Severity: Error, Span: escErr.Span, Label: "Invalid escape sequence: " + escErr.Detail + "."},
			},
		}
	case errors.As(err, &mlErr):
		return multilineReport(mlErr)
	case errors.As(err, &parErr):
		label := parErr.Label()
		if len(parErr.Expected) != 0 {
			label = "found " + parErr.Found + ", " + label
		}
		return &Report{
			Title:       TitleParse,
			Annotations: []Annotation{{Severity: Error, Span: parErr.Span, Label: label}},
		}
	case errors.As(err, &tokErr):
		return &Report{
			Title:       TitleParse,
			Annotations: []Annotation{{Severity: Error, Span: tokErr.Span, Label: tokErr.Err.Error()}},
		}
	case errors.As(err, &tmErr):
		return typeMismatchReport(tmErr)
	case errors.As(err, &dupErr):
		return &Report{
			Title: TitleDuplicate,
			Annotations: []Annotation{
				{Severity: Info, Span: dupErr.First, Label: "A value was previously assigned at this path."},
				{Severity: Error, Span: dupErr.Second, Label: "Attempting to assign a new value at the same path is not allowed."},
			},
		}
	case errors.As(err, &pathErr):
		r := &Report{Title: err.Error()}
		if pathErr.At >= 0 && pathErr.At < len(pathErr.Path) {
			if s := pathErr.Path[pathErr.At].Span; !s.IsZero() {
				r.Annotations = append(r.Annotations, Annotation{Severity: Error, Span: s, Label: pathErr.Err.Error()})
			}
		}
		return r
	}
	return &Report{Title: err.Error()}
}

func typeMismatchReport(e *eval.TypeMismatchError) *Report {
	var info, msg string
	if e.Actual.IsLeaf() {
		info = fmt.Sprintf("A value of type %s was first assigned at this path.", e.Actual)
	} else {
		info = fmt.Sprintf("The type of the parent value was first inferred as %s due to this access.", e.Actual)
	}
	if e.Assignment {
		msg = fmt.Sprintf("This assignment treats the value as %s, but it was inferred as a different type.", e.Expected)
	} else {
		msg = fmt.Sprintf("This access treats the parent value as %s, but it was inferred as a different type.", e.Expected)
	}
	return &Report{
		Title: TitleTypeMismatch,
		Annotations: []Annotation{
			{Severity: Info, Span: e.InferredAt, Label: info},
			{Severity: Error, Span: e.At, Label: msg},
		},
	}
}

func multilineReport(e *token.MultilineBoundaryError) *Report {
	which, help := "end", "Put the closing quotes on a line of their own."
	if e.Start {
		which, help = "start", "Start a new line right after the opening quotes."
	}
	return &Report{
		Title: TitleMultilineBoundary,
		Annotations: []Annotation{
			{Severity: Error, Span: e.Span, Label: "A string literal spanning multiple lines must " + which + " with a newline."},
			{Severity: Help, Span: e.Span, Label: help},
		},
	}
}
