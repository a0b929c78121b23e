package ir

import (
	"errors"
	"fmt"
)

var ErrInvariantViolation = errors.New("invariant violation")

// InvariantErr reports a node whose shape contradicts its connective.
type InvariantErr struct {
	Node   *Node
	Reason string
}

func (e *InvariantErr) Unwrap() error {
	return ErrInvariantViolation
}

func (e *InvariantErr) Error() string {
	return fmt.Sprintf("%s: %s at offset %d (%q)", ErrInvariantViolation, e.Reason, e.Node.Offset, e.Node.Text)
}
