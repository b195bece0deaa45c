package main

import (
	"fmt"

	"github.com/signadot/marc-format/marc/interchange"
	"github.com/signadot/marc-format/marc/ir"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	files := inputs(args[1:])
	for i, file := range files {
		node, inFmt, err := getDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		var res *ir.Node
		if cfg.Merge {
			res, err = interchange.ApplyMergePatch(node, p)
		} else {
			res, err = interchange.ApplyJSONPatch(node, p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
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

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) ([]byte, error) {
	if cfg.String {
		return []byte(arg), nil
	}
	d, err := readFile(cc, arg)
	if err != nil {
		return nil, fmt.Errorf("error reading patch %s: %w", arg, err)
	}
	return d, nil
}
