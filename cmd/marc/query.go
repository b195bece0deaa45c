package main

import (
	"fmt"

	"github.com/signadot/marc-format/marc/interchange"
	"github.com/signadot/marc-format/marc/query"

	"github.com/scott-cotton/cli"
)

func queryDoc(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	input := args[0]
	for _, file := range inputs(args[1:]) {
		node, _, err := getDoc(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		res, err := query.Eval(input, node)
		if err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
		if s, ok := res.(string); ok && cfg.Raw {
			fmt.Fprintln(cc.Out, s)
			continue
		}
		d, err := interchange.EncodeJSON(interchange.FromPlain(res), true)
		if err != nil {
			return fmt.Errorf("error encoding result of %s: %w", file, err)
		}
		if _, err := cc.Out.Write(d); err != nil {
			return err
		}
	}
	return nil
}
