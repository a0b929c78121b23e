package parse

import (
	"github.com/sl-format/sl/ir"
	"github.com/sl-format/sl/token"
)

// MainConnective returns the byte index in text of its main connective, or
// ir.NoConnective if text is atomic.  Text that is empty or whose grouping
// does not balance is malformed.
func MainConnective(text string) (int, error) {
	toks, err := token.Tokenize(nil, []byte(text))
	if err != nil {
		return ir.NoConnective, err
	}
	if _, err := token.Balance(toks); err != nil {
		return ir.NoConnective, err
	}
	k := locate(toks)
	if k == ir.NoConnective {
		return k, nil
	}
	return toks[k].Pos.I, nil
}

// locate returns the index in toks of the main connective.  A leading
// negation is always the main connective.  Otherwise the first binary
// connective directly inside the outermost grouping wins.
func locate(toks []token.Token) int {
	if len(toks) == 0 {
		return ir.NoConnective
	}
	if toks[0].Type == token.TNot {
		return 0
	}
	level := 0
	for i := range toks {
		tt := toks[i].Type
		switch {
		case tt.IsOpen():
			level++
		case tt.IsClose():
			level--
		}
		if level != 1 {
			continue
		}
		if c, ok := tt.Connective(); ok && c.IsBinary() {
			return i
		}
	}
	return ir.NoConnective
}
