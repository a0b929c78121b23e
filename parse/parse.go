package parse

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sl-format/sl/debug"
	"github.com/sl-format/sl/ir"
	"github.com/sl-format/sl/token"
)

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// Parse tokenizes d and splits it recursively at main connectives into a
// tree.  Leaves are not validated; see package wff for that.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := defaultOpts()
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if debug.Tokens() {
		token.PrintTokens(os.Stderr, toks, "parse")
	}
	match, err := token.Balance(toks)
	if err != nil {
		return nil, err
	}
	if i := token.NestedBeyond(toks, pOpts.maxDepth); i != -1 {
		return nil, token.NewPosErr(fmt.Errorf("%w: grouping nested %d deep, limit %d",
			ErrTooDeeplyNested, token.MaxNesting(toks), pOpts.maxDepth), toks[i].Pos)
	}
	p := &parser{toks: toks, match: match, opts: pOpts}
	return p.build(0, len(toks), 0)
}

type parser struct {
	toks  []token.Token
	match []int
	opts  *parseOpts
}

// build parses toks[lo:hi], which is non-empty.
func (p *parser) build(lo, hi, depth int) (*ir.Node, error) {
	first := &p.toks[lo]
	if depth > p.opts.maxDepth {
		return nil, token.NewPosErr(fmt.Errorf("%w: more than %d levels",
			ErrTooDeeplyNested, p.opts.maxDepth), first.Pos)
	}
	span := p.toks[lo:hi]
	node := &ir.Node{
		Text:    token.Span(span),
		Offset:  first.Pos.I,
		ConnPos: ir.NoConnective,
		Conn:    token.NoConn,
	}
	k := locate(span)
	if k == ir.NoConnective {
		if onlyGrouping(span) {
			return nil, token.NewPosErr(ErrEmptyGrouping, first.Pos)
		}
		p.opts.log.Debug("leaf", "text", node.Text, "depth", depth)
		return node, nil
	}
	ct := &span[k]
	conn, _ := ct.Type.Connective()
	node.Conn = conn
	node.ConnPos = ct.Pos.I - node.Offset
	p.opts.log.Debug("split", "text", node.Text, "conn", conn, "at", node.ConnPos, "depth", depth)

	var err error
	if conn == token.Not {
		node.Right, err = p.child(lo+1, hi, ct, depth)
		if err != nil {
			return nil, err
		}
		return node, nil
	}
	if !first.Type.IsOpen() || p.match[lo] != hi-1 {
		return nil, token.NewPosErr(ErrUngrouped, ct.Pos)
	}
	node.Left, err = p.child(lo+1, lo+k, ct, depth)
	if err != nil {
		return nil, err
	}
	node.Right, err = p.child(lo+k+1, hi-1, ct, depth)
	if err != nil {
		return nil, err
	}
	return node, nil
}

// child parses a sub-formula taken from either side of the connective ct.
func (p *parser) child(lo, hi int, ct *token.Token, depth int) (*ir.Node, error) {
	if lo >= hi {
		return nil, token.NewPosErr(
			fmt.Errorf("%w beside %q", ErrEmptySubformula, ct.String()), ct.Pos)
	}
	return p.build(lo, hi, depth+1)
}

func onlyGrouping(toks []token.Token) bool {
	for i := range toks {
		if !toks[i].Type.IsGrouping() {
			return false
		}
	}
	return true
}

// Logger is the logger parse traces go to under opts.
func Logger(opts ...ParseOption) *slog.Logger {
	pOpts := defaultOpts()
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.log
}
