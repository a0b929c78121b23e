package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	sl "github.com/sl-format/sl"
	"github.com/sl-format/sl/encode"

	"github.com/scott-cotton/cli"
)

const prompt = "\nEnter a formula in SL form: "

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	var line string
	if len(args) == 0 {
		if !cfg.format().IsDocument() && !cfg.Quiet {
			fmt.Fprint(cc.Out, prompt)
		}
		line, err = readLine(cc.In)
		if err != nil {
			return err
		}
	} else {
		line = strings.Join(args, " ")
	}
	res, err := sl.Analyze(line, cfg.parseOpts(cc)...)
	if err != nil {
		return fmt.Errorf("could not check %q: %w", line, err)
	}
	if f := cfg.format(); f.IsDocument() {
		return encode.Marshal(res.View(), cc.Out, f)
	}
	return report(cfg, cc.Out, res)
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("error reading: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func report(cfg *CheckConfig, w io.Writer, res *sl.Result) error {
	if !cfg.Quiet {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
		if err := encode.Encode(res.Tree, w, cfg.encOpts(w)...); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, res.Verdict())
	return err
}
