package main

import (
	"fmt"

	"github.com/signadot/marc-format/marc"
	"github.com/signadot/marc-format/marc/encode"
	"github.com/signadot/marc-format/marc/format"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	files := inputs(args)
	for i, file := range files {
		node, inFmt, err := getDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		// without -O, marc converts to json and everything else to marc.
		of := format.JSONFormat
		if inFmt != format.MarcFormat {
			of = format.MarcFormat
		}
		if cfg.OutFormat != nil {
			of = *cfg.OutFormat
		}
		opts := append(cfg.encOpts(cc.Out), encode.EncodeComments(cfg.Comments))
		if err := marc.Encode(node, cc.Out, of, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
		if i < len(files)-1 {
			if err := docSep(cc.Out, of); err != nil {
				return err
			}
		}
	}
	return nil
}
