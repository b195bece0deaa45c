package main

import (
	"fmt"

	"github.com/signadot/marc-format/marc/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, _, err := getDoc(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, _, err := getDoc(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	from, to := args[0], args[1]
	lines, err := libdiff.DiffNodes(a, b)
	if err != nil {
		return err
	}
	if cfg.Reverse {
		lines = libdiff.Reverse(lines)
		from, to = to, from
	}
	if !libdiff.Changed(lines) {
		return nil
	}
	out := libdiff.Format(lines,
		libdiff.Names(from, to),
		libdiff.Context(cfg.Context),
		libdiff.Colors(cfg.colors(cc.Out)))
	if _, err := cc.Out.Write([]byte(out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}
