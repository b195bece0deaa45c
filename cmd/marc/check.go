package main

import (
	"fmt"

	"github.com/signadot/marc-format/marc"
	"github.com/signadot/marc-format/marc/diag"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	failed := 0
	for _, file := range inputs(args) {
		src, err := readFile(cc, file)
		if err != nil {
			return err
		}
		if _, err := marc.Load(src); err != nil {
			failed++
			if cfg.Quiet {
				continue
			}
			fmt.Fprintf(cc.Out, "%s:\n%s", file, diag.Render(err, src, diag.Colors(cfg.colors(cc.Out))))
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
