// Package encode renders formula trees.
//
// [Lines] and [Encode] lay a tree out sideways: the right subtree first and
// most indented, then the node itself, then the left subtree, so the printed
// tree reads as the parse tree rotated a quarter turn.  Each line holds the
// node's text followed, for compounds, by its connective:
//
//	\t\tC
//	(A<->(B.C)) <->
//	\t\tA
//
// [Decode] reads such output back into a tree.  [Diff] compares the
// renderings of two trees, and [Marshal] writes a tree view as YAML or JSON.
package encode
