package encode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sl-format/sl/ir"
	"github.com/sl-format/sl/parse"
	"github.com/sl-format/sl/token"
)

var ErrDecode = errors.New("decode error")

type decLine struct {
	no    int
	depth int
	body  string
}

// Decode reads an uncolored rendering of a tree, as written by Encode with
// the default indent, and rebuilds the tree.  Offsets of decoded nodes are
// relative to nothing and left zero.  Reading stops at the first empty line.
func Decode(r io.Reader) (*ir.Node, error) {
	var lines []decLine
	sc := bufio.NewScanner(r)
	no := 0
	for sc.Scan() {
		no++
		ln := sc.Text()
		if ln == "" {
			break
		}
		depth := 0
		for strings.HasPrefix(ln, DefaultIndent) {
			ln = ln[len(DefaultIndent):]
			depth++
		}
		if ln == "" {
			return nil, fmt.Errorf("%w: line %d has no text", ErrDecode, no)
		}
		lines = append(lines, decLine{no: no, depth: depth, body: ln})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no tree", ErrDecode)
	}
	// the root is the shallowest line, wherever rendering started
	root := lines[0].depth
	for i := range lines {
		root = min(root, lines[i].depth)
	}
	return decodeRange(lines, root)
}

func decodeRange(lines []decLine, depth int) (*ir.Node, error) {
	k := -1
	for i := range lines {
		ln := &lines[i]
		switch {
		case ln.depth < depth:
			return nil, fmt.Errorf("%w: line %d: unexpected dedent", ErrDecode, ln.no)
		case ln.depth == depth && k != -1:
			return nil, fmt.Errorf("%w: line %d: second node at depth %d", ErrDecode, ln.no, depth)
		case ln.depth == depth:
			k = i
		}
	}
	if k == -1 {
		return nil, fmt.Errorf("%w: line %d: missing node at depth %d", ErrDecode, lines[0].no, depth)
	}
	ln := &lines[k]
	rights, lefts := lines[:k], lines[k+1:]
	if len(rights) == 0 && len(lefts) == 0 {
		return ir.Atom(ln.body), nil
	}
	i := strings.LastIndexByte(ln.body, ' ')
	if i == -1 {
		return nil, fmt.Errorf("%w: line %d: compound without connective", ErrDecode, ln.no)
	}
	text := ln.body[:i]
	conn, ok := token.ParseConnective(ln.body[i+1:])
	if !ok {
		return nil, fmt.Errorf("%w: line %d: unknown connective %q", ErrDecode, ln.no, ln.body[i+1:])
	}
	if len(rights) == 0 {
		return nil, fmt.Errorf("%w: line %d: %s without right operand", ErrDecode, ln.no, conn)
	}
	right, err := decodeRange(rights, depth+1)
	if err != nil {
		return nil, err
	}
	if conn == token.Not {
		if len(lefts) != 0 {
			return nil, fmt.Errorf("%w: line %d: negation with left operand", ErrDecode, ln.no)
		}
		return ir.Negation(text, right), nil
	}
	if len(lefts) == 0 {
		return nil, fmt.Errorf("%w: line %d: %s without left operand", ErrDecode, ln.no, conn)
	}
	left, err := decodeRange(lefts, depth+1)
	if err != nil {
		return nil, err
	}
	connPos, err := parse.MainConnective(text)
	if err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrDecode, ln.no, err)
	}
	return ir.Binary(text, connPos, conn, left, right), nil
}
