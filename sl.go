// Package sl checks formulas of Sentential Logic for well-formedness.
//
// [Analyze] parses one line of text into a formula tree and decides whether
// it is a well formed formula.  It does no I/O; rendering is left to
// package encode and to the caller.
package sl

import (
	"strings"

	"github.com/sl-format/sl/encode"
	"github.com/sl-format/sl/ir"
	"github.com/sl-format/sl/parse"
	"github.com/sl-format/sl/token"
	"github.com/sl-format/sl/wff"
)

const (
	VerdictWFF    = "This is a well formed formula."
	VerdictNotWFF = "This is not a well formed formula."
)

var (
	ErrMalformedInput     = parse.ErrMalformedInput
	ErrTooDeeplyNested    = parse.ErrTooDeeplyNested
	ErrInvariantViolation = ir.ErrInvariantViolation
)

type Result struct {
	Formula string
	Tree    *ir.Node
	WFF     bool
}

// Analyze parses line and checks the resulting tree.  A trailing line
// ending is ignored.  Errors wrap ErrMalformedInput, ErrTooDeeplyNested or
// ErrInvariantViolation and leave no partial result.
func Analyze(line string, opts ...parse.ParseOption) (*Result, error) {
	line = strings.TrimRight(line, "\r\n")
	tree, err := parse.ParseString(line, opts...)
	if err != nil {
		return nil, err
	}
	ok, err := wff.Check(tree)
	if err != nil {
		return nil, err
	}
	parse.Logger(opts...).Debug("checked", "formula", line, "wff", ok)
	return &Result{Formula: line, Tree: tree, WFF: ok}, nil
}

func (r *Result) Verdict() string {
	if r.WFF {
		return VerdictWFF
	}
	return VerdictNotWFF
}

// ResultView is the structured form of a result for YAML and JSON output.
type ResultView struct {
	Formula    string           `json:"formula" yaml:"formula"`
	WFF        bool             `json:"wff" yaml:"wff"`
	Connective string           `json:"connective,omitempty" yaml:"connective,omitempty"`
	Letters    []string         `json:"letters,omitempty" yaml:"letters,omitempty"`
	Depth      int              `json:"depth" yaml:"depth"`
	Tree       *encode.NodeView `json:"tree" yaml:"tree"`
}

func (r *Result) View() *ResultView {
	v := &ResultView{
		Formula: r.Formula,
		WFF:     r.WFF,
		Depth:   r.Tree.Depth(),
		Tree:    encode.View(r.Tree),
	}
	if r.WFF {
		v.Letters = wff.Letters(r.Tree)
		if c := wff.MainConnective(r.Tree); c != token.NoConn {
			v.Connective = c.String()
		}
	}
	return v
}
