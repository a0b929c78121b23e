package main

import (
	"fmt"

	"github.com/sl-format/sl/encode"
	"github.com/sl-format/sl/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two formulas", cli.ErrUsage)
	}
	from, err := parse.ParseString(args[0], cfg.parseOpts(cc)...)
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", args[0], err)
	}
	to, err := parse.ParseString(args[1], cfg.parseOpts(cc)...)
	if err != nil {
		return fmt.Errorf("could not parse %q: %w", args[1], err)
	}
	d := encode.Diff(from, to)
	if d == "" {
		fmt.Fprintln(cc.Out, "no difference")
		return nil
	}
	_, err = fmt.Fprint(cc.Out, d)
	return err
}
