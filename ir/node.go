package ir

import (
	"github.com/sl-format/sl/token"
)

// NoConnective is the connective position of a node without a connective.
const NoConnective = -1

// Node is a formula node: an atomic candidate, a negation or a binary
// compound.  A node exclusively owns its children.
type Node struct {
	// Text is the source text the node was derived from.
	Text string
	// Offset is the byte offset of Text in the whole formula.
	Offset int
	// ConnPos is the byte index into Text of the main connective, or
	// NoConnective.
	ConnPos int
	Conn    token.Connective

	Left  *Node
	Right *Node
}

func Atom(text string) *Node {
	return &Node{Text: text, ConnPos: NoConnective, Conn: token.NoConn}
}

func Negation(text string, right *Node) *Node {
	return &Node{Text: text, ConnPos: 0, Conn: token.Not, Right: right}
}

func Binary(text string, connPos int, conn token.Connective, left, right *Node) *Node {
	return &Node{Text: text, ConnPos: connPos, Conn: conn, Left: left, Right: right}
}

// Kind classifies the node by its children.  Nodes whose children
// contradict the connective are BrokenKind.
func (n *Node) Kind() Kind {
	switch {
	case n.Left == nil && n.Right == nil:
		if n.ConnPos != NoConnective {
			return BrokenKind
		}
		return AtomicKind
	case n.Left == nil:
		if n.Conn != token.Not || n.ConnPos != 0 {
			return BrokenKind
		}
		return NegationKind
	case n.Right == nil:
		return BrokenKind
	default:
		if !n.Conn.IsBinary() || n.ConnPos <= 0 {
			return BrokenKind
		}
		return BinaryKind
	}
}

func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// ConnSurface is the connective as written, or "" for leaves.
func (n *Node) ConnSurface() string {
	if n.ConnPos == NoConnective {
		return ""
	}
	return n.Conn.Surface()
}

// Depth is the number of nodes on the longest root to leaf path.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// Size is the number of nodes in the tree.
func (n *Node) Size() int {
	if n == nil {
		return 0
	}
	return 1 + n.Left.Size() + n.Right.Size()
}

// Walk visits the tree in pre-order, left before right.  Returning false
// from f stops descending below the visited node.
func (n *Node) Walk(f func(*Node, int) bool) {
	n.walk(f, 0)
}

func (n *Node) walk(f func(*Node, int) bool, depth int) {
	if n == nil {
		return
	}
	if !f(n, depth) {
		return
	}
	n.Left.walk(f, depth+1)
	n.Right.walk(f, depth+1)
}

// Validate checks the shape invariants of every node in the tree.
func (n *Node) Validate() error {
	var err error
	n.Walk(func(x *Node, _ int) bool {
		if err != nil {
			return false
		}
		if x.Kind() == BrokenKind {
			err = &InvariantErr{Node: x, Reason: x.brokenReason()}
			return false
		}
		return true
	})
	return err
}

func (n *Node) brokenReason() string {
	switch {
	case n.IsLeaf():
		return "leaf with a connective"
	case n.Left == nil:
		return "single child under " + n.Conn.String()
	case n.Right == nil:
		return "left child without right child"
	default:
		return "two children under " + n.Conn.String()
	}
}

func (n *Node) String() string {
	return n.Text
}
