package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/marc-format/marc"
	"github.com/signadot/marc-format/marc/diag"
	"github.com/signadot/marc-format/marc/format"
	"github.com/signadot/marc-format/marc/ir"

	"github.com/scott-cotton/cli"
)

// diagError carries the rendered diagnostic of a marc document.
type diagError struct {
	file     string
	rendered string
	err      error
}

func (e *diagError) Error() string {
	return fmt.Sprintf("%s:\n%s", e.file, e.rendered)
}

func (e *diagError) Unwrap() error {
	return e.err
}

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// getDoc reads and decodes path in its input format.
func getDoc(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, format.Format, error) {
	f := cfg.inFormat(path)
	d, err := readFile(cc, path)
	if err != nil {
		return nil, f, err
	}
	node, err := marc.Decode(d, f)
	if err != nil {
		return nil, f, docErr(cfg, path, d, f, err)
	}
	return node, f, nil
}

func docErr(cfg *MainConfig, path string, src []byte, f format.Format, err error) error {
	if f != format.MarcFormat {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	return &diagError{
		file:     path,
		rendered: diag.Render(err, src, diag.Colors(cfg.colors(os.Stderr))),
		err:      err,
	}
}

func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func docSep(w io.Writer, f format.Format) error {
	sep := "\n"
	if f == format.YAMLFormat {
		sep = "---\n"
	}
	_, err := io.WriteString(w, sep)
	return err
}
