package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/marc-format/marc"
	"github.com/signadot/marc-format/marc/format"
	"github.com/signadot/marc-format/marc/libdiff"

	"github.com/scott-cotton/cli"
)

func fmtCmd(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: fmt -w requires files", cli.ErrUsage)
	}
	for _, file := range inputs(args) {
		if err := fmtFile(cfg, cc, file); err != nil {
			return err
		}
	}
	return nil
}

func fmtFile(cfg *FmtConfig, cc *cli.Context, file string) error {
	src, err := readFile(cc, file)
	if err != nil {
		return err
	}
	plain := cfg.Write || cfg.Diff || cfg.List
	var res []byte
	if plain {
		res, err = marc.Format(src)
	} else {
		res, err = marc.Format(src, cfg.encOpts(cc.Out)...)
	}
	if err != nil {
		return docErr(cfg.MainConfig, file, src, format.MarcFormat, err)
	}
	if !plain {
		_, err = cc.Out.Write(res)
		return err
	}
	changed := !bytes.Equal(src, res)
	if cfg.List && changed {
		fmt.Fprintln(cc.Out, file)
	}
	if cfg.Diff && changed {
		lines := libdiff.DiffText(string(src), string(res))
		out := libdiff.Format(lines,
			libdiff.Names(file, file+" (formatted)"),
			libdiff.Context(3),
			libdiff.Colors(cfg.colors(cc.Out)))
		if _, err := cc.Out.Write([]byte(out)); err != nil {
			return err
		}
	}
	if cfg.Write && changed {
		info, err := os.Stat(file)
		if err != nil {
			return err
		}
		if err := os.WriteFile(file, res, info.Mode().Perm()); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	return nil
}
