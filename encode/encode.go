package encode

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/sl-format/sl/ir"
	"github.com/sl-format/sl/wff"
)

type EncState struct {
	indent string
	depth  int

	Color func(ColorAttr, string) string
}

// Lines yields the rendering of n, one line per node, with n itself at
// the given depth.  Each call walks the tree afresh.
func Lines(n *ir.Node, depth int) iter.Seq[string] {
	return newEncState(Depth(depth)).Lines(n)
}

// Lines yields the rendering of n under the state's options.
func (es *EncState) Lines(n *ir.Node) iter.Seq[string] {
	return func(yield func(string) bool) {
		es.walk(n, es.depth, yield)
	}
}

func (es *EncState) walk(n *ir.Node, depth int, yield func(string) bool) bool {
	if n == nil {
		return true
	}
	if !es.walk(n.Right, depth+1, yield) {
		return false
	}
	if !yield(es.line(n, depth)) {
		return false
	}
	return es.walk(n.Left, depth+1, yield)
}

func (es *EncState) line(n *ir.Node, depth int) string {
	buf := &strings.Builder{}
	buf.WriteString(strings.Repeat(es.indent, depth))
	switch {
	case n.ConnPos != ir.NoConnective:
		buf.WriteString(es.Color(TextColor, n.Text))
		buf.WriteByte(' ')
		buf.WriteString(es.Color(ConnColor, n.ConnSurface()))
	case wff.IsLetter(n.Text):
		buf.WriteString(es.Color(LetterColor, n.Text))
	default:
		buf.WriteString(es.Color(BadLeafColor, n.Text))
	}
	return buf.String()
}

// Encode writes the rendering of n to w.
func Encode(n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts...)
	for ln := range es.Lines(n) {
		if _, err := io.WriteString(w, ln+"\n"); err != nil {
			return fmt.Errorf("could not write tree: %w", err)
		}
	}
	return nil
}

// MustString renders n without color.
func MustString(n *ir.Node) string {
	buf := &strings.Builder{}
	if err := Encode(n, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
