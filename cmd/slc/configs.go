package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sl-format/sl/debug"
	"github.com/sl-format/sl/encode"
	"github.com/sl-format/sl/format"
	"github.com/sl-format/sl/parse"

	"github.com/scott-cotton/cli"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='print trees in color'"`
	Verbose  bool `cli:"name=v desc='log each split of the formula'"`
	MaxDepth int  `cli:"name=depth desc='maximum nesting depth, default 64'"`

	OutFormat *format.Format

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) format() format.Format {
	if cfg.OutFormat == nil {
		return format.TextFormat
	}
	return *cfg.OutFormat
}

// parseOpts traces splits on cc.Err when -v is given or SL_DEBUG_PARSE is
// set in the command environment.
func (cfg *MainConfig) parseOpts(cc *cli.Context) []parse.ParseOption {
	verbose := cfg.Verbose || debug.Enabled(cc.Env, debug.ParseVar)
	var w io.Writer = io.Discard
	if cc.Err != nil {
		w = cc.Err
	}
	return []parse.ParseOption{
		parse.WithMaxDepth(cfg.MaxDepth),
		parse.WithLogger(newLog(w, verbose)),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		color.NoColor = false
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	colorsSet := false
	if cfg.Main == nil {
		return nil
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='print only the verdict'"`
	Check *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
