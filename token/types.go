package token

import "fmt"

type TokenType int

const (
	TAtom TokenType = iota
	TNot
	TAnd
	TOr
	TCond
	TBicond
	TLParen
	TRParen
	TLSquare
	TRSquare
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TAtom:    "TAtom",
		TNot:     "TNot",
		TAnd:     "TAnd",
		TOr:      "TOr",
		TCond:    "TCond",
		TBicond:  "TBicond",
		TLParen:  "TLParen",
		TRParen:  "TRParen",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
	}[t]
}

func (t TokenType) IsOpen() bool {
	return t == TLParen || t == TLSquare
}

func (t TokenType) IsClose() bool {
	return t == TRParen || t == TRSquare
}

func (t TokenType) IsGrouping() bool {
	return t.IsOpen() || t.IsClose()
}

// Closer is the closing token type matching an opening one.
func (t TokenType) Closer() TokenType {
	switch t {
	case TLParen:
		return TRParen
	case TLSquare:
		return TRSquare
	}
	return -1
}

// Connective returns the connective a token stands for, if any.
func (t TokenType) Connective() (Connective, bool) {
	switch t {
	case TNot:
		return Not, true
	case TAnd:
		return And, true
	case TOr:
		return Or, true
	case TCond:
		return Cond, true
	case TBicond:
		return Bicond, true
	}
	return NoConn, false
}

func connTokenType(c Connective) TokenType {
	switch c {
	case Not:
		return TNot
	case And:
		return TAnd
	case Or:
		return TOr
	case Cond:
		return TCond
	}
	return TBicond
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

// End is the offset just past the token.
func (t *Token) End() int {
	return t.Pos.I + len(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}
