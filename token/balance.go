package token

import "fmt"

// Balance checks that the grouping brackets of toks nest properly and that
// each opener is closed by a bracket of the same kind.  The result maps the
// index of every bracket token to the index of its partner; other tokens map
// to -1.
func Balance(toks []Token) ([]int, error) {
	if len(toks) == 0 {
		return nil, ErrEmpty
	}
	match := make([]int, len(toks))
	stack := make([]int, 0, 8)
	for i := range toks {
		match[i] = -1
		tok := &toks[i]
		switch {
		case tok.Type.IsOpen():
			stack = append(stack, i)
		case tok.Type.IsClose():
			if len(stack) == 0 {
				return nil, &ErrImbalancedStructure{Close: tok}
			}
			j := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			open := &toks[j]
			if open.Type.Closer() != tok.Type {
				return nil, &ErrImbalancedStructure{Open: open, Close: tok}
			}
			match[i], match[j] = j, i
		}
	}
	if len(stack) != 0 {
		return nil, &ErrImbalancedStructure{Open: &toks[stack[len(stack)-1]]}
	}
	return match, nil
}

// MaxNesting is the deepest grouping level reached in toks, which must be
// balanced.
func MaxNesting(toks []Token) int {
	d, m := 0, 0
	for i := range toks {
		switch {
		case toks[i].Type.IsOpen():
			d++
			m = max(m, d)
		case toks[i].Type.IsClose():
			d--
		}
	}
	return m
}

// NestedBeyond is the index of the first opener in toks that reaches
// grouping level n+1, or -1 if toks never nest deeper than n.
func NestedBeyond(toks []Token, n int) int {
	d := 0
	for i := range toks {
		switch {
		case toks[i].Type.IsOpen():
			d++
			if d > n {
				return i
			}
		case toks[i].Type.IsClose():
			d--
		}
	}
	return -1
}

// Span is the source text covered by toks.
func Span(toks []Token) string {
	if len(toks) == 0 {
		return ""
	}
	first, last := &toks[0], &toks[len(toks)-1]
	if first.Pos.D == nil {
		panic(fmt.Sprintf("token %s has no document", first.Type))
	}
	return string(first.Pos.D.d[first.Pos.I:last.End()])
}
