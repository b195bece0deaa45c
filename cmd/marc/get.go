package main

import (
	"fmt"
	"io"

	"github.com/signadot/marc-format/marc"
	"github.com/signadot/marc-format/marc/encode"
	"github.com/signadot/marc-format/marc/format"
	"github.com/signadot/marc-format/marc/interchange"
	"github.com/signadot/marc-format/marc/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a marc path", cli.ErrUsage)
	}
	path := args[0]
	files := inputs(args[1:])
	for i, file := range files {
		node, inFmt, err := getDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := marc.Get(node, path)
		if err != nil {
			return fmt.Errorf("error getting %s from %s: %w", path, file, err)
		}
		of := cfg.outFormat(inFmt)
		if err := writeValue(cfg.MainConfig, cc.Out, res, of); err != nil {
			return err
		}
		if i < len(files)-1 {
			if err := docSep(cc.Out, of); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeValue writes node in format f.  Scalars in marc output are
// written as literals.
func writeValue(cfg *MainConfig, w io.Writer, node *ir.Node, f format.Format) error {
	if node.IsContainer() {
		return marc.Encode(node, w, f, cfg.encOpts(w)...)
	}
	var (
		d   []byte
		err error
	)
	switch f {
	case format.MarcFormat:
		d = []byte(encode.Literal(node) + "\n")
	default:
		v, verr := interchange.ToInterchange(node)
		if verr != nil {
			return verr
		}
		if f == format.YAMLFormat {
			d, err = interchange.EncodeYAML(v)
		} else {
			// toml has no scalar documents
			d, err = interchange.EncodeJSON(v, true)
		}
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}
