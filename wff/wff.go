// Package wff decides whether a parsed formula tree is a well formed
// formula of Sentential Logic.
//
// The check trusts the parser's choice of connectives.  It looks only at
// the shape of the leaves and at whether each compound is complete.
package wff

import (
	"github.com/sl-format/sl/ir"
	"github.com/sl-format/sl/token"
)

// IsWFF reports whether n is a well formed formula.  A tree that breaks
// the node invariants is not well formed.
func IsWFF(n *ir.Node) bool {
	ok, err := Check(n)
	return err == nil && ok
}

// Check is IsWFF, but reports a tree whose shape contradicts its
// connectives as an error wrapping ir.ErrInvariantViolation.
func Check(n *ir.Node) (bool, error) {
	if n == nil {
		return false, &ir.InvariantErr{Node: &ir.Node{ConnPos: ir.NoConnective}, Reason: "missing node"}
	}
	switch n.Kind() {
	case ir.AtomicKind:
		return IsLetter(n.Text), nil
	case ir.NegationKind:
		return Check(n.Right)
	case ir.BinaryKind:
		l, err := Check(n.Left)
		if err != nil {
			return false, err
		}
		r, err := Check(n.Right)
		if err != nil {
			return false, err
		}
		return l && r, nil
	}
	return false, n.Validate()
}

// IsLetter reports whether s is a statement letter, a single capital A-Z.
func IsLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}

// Letters returns the distinct statement letters of a tree in order of
// first appearance, reading left to right.
func Letters(n *ir.Node) []string {
	var res []string
	seen := map[string]bool{}
	n.Walk(func(x *ir.Node, _ int) bool {
		if x.IsLeaf() && IsLetter(x.Text) && !seen[x.Text] {
			seen[x.Text] = true
			res = append(res, x.Text)
		}
		return true
	})
	return res
}

// MainConnective is the connective of a well formed tree's root, or
// token.NoConn for a statement letter.
func MainConnective(n *ir.Node) token.Connective {
	if n.IsLeaf() {
		return token.NoConn
	}
	return n.Conn
}
