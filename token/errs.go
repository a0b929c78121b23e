package token

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput = errors.New("malformed input")
	ErrEmpty          = fmt.Errorf("%w: empty formula", ErrMalformedInput)
	ErrConnWidth      = fmt.Errorf("%w: bad connective", ErrMalformedInput)
)

// PosErr is an error located at a position in a formula.
type PosErr struct {
	Err error
	Pos Pos
}

func (e *PosErr) Unwrap() error {
	return e.Err
}

func NewPosErr(e error, p *Pos) *PosErr {
	return &PosErr{Err: e, Pos: *p}
}

func (e *PosErr) Error() string {
	return fmt.Sprintf("%s %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewPosErr(fmt.Errorf("%w: expected %q", ErrConnWidth, what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewPosErr(fmt.Errorf("%w: unexpected %s", ErrMalformedInput, what), p)
}

// ErrImbalancedStructure reports grouping brackets that do not pair up.
// Open is nil for a closer without an opener, Close is nil for an opener
// that is never closed.
type ErrImbalancedStructure struct {
	Open, Close *Token
}

func (i *ErrImbalancedStructure) Unwrap() error {
	return ErrMalformedInput
}

func (i *ErrImbalancedStructure) Error() string {
	if i.Open == nil {
		return ErrMalformedInput.Error() + ": unbalanced grouping: unopened " +
			string(i.Close.Bytes) + " " + i.Close.Pos.String()
	}
	if i.Close == nil {
		return ErrMalformedInput.Error() + ": unbalanced grouping: unmatched " +
			string(i.Open.Bytes) + " " + i.Open.Pos.String()
	}
	return fmt.Sprintf("%s: mismatched grouping: %s %s closed by %s %s",
		ErrMalformedInput.Error(),
		string(i.Open.Bytes), i.Open.Pos.String(),
		string(i.Close.Bytes), i.Close.Pos.String())
}
