package main

import (
	"errors"
	"os"

	"github.com/scott-cotton/cli"
)

// slcMain runs the named sub-command.  Anything else, including no
// arguments at all, is handed to check as a formula.
func slcMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	var sub *cli.Command
	if len(args) != 0 {
		sub = cfg.Main.FindSub(cc, args[0])
	}
	if sub == nil {
		sub = cfg.Main.FindSub(cc, "check")
	} else {
		args = args[1:]
	}
	err = sub.Run(cc, args)
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}
