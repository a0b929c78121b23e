// Package token provides tokenization support for Sentential Logic formulas.
//
// [Tokenize] turns the raw text of a formula into a flat token stream,
// validating the width of the multi-character connectives "->" and "<->".
//
// [Balance] checks that grouping brackets are properly nested and pairs each
// opening bracket with its closing bracket.
//
// The connective table, in scan order, is exposed through [Connectives].
package token
