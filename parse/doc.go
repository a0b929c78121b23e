// Package parse builds formula trees from Sentential Logic text.
//
// # Usage
//
//	node, err := parse.ParseString("(A<->(B.C))")
//	if err != nil {
//	    return err
//	}
//
// Every binary compound must be enclosed in its own pair of grouping
// brackets, "(" ")" or "[" "]".  Negation applies to everything to its
// right and needs no grouping.
//
// Errors wrap [ErrMalformedInput] or [ErrTooDeeplyNested]; use errors.Is to
// tell them apart.
//
// # Related Packages
//
//   - github.com/sl-format/sl/token - Tokenization and bracket balance
//   - github.com/sl-format/sl/ir - Formula nodes
//   - github.com/sl-format/sl/wff - Well-formedness
package parse
