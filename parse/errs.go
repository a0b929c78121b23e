package parse

import (
	"errors"
	"fmt"

	"github.com/sl-format/sl/token"
)

var (
	ErrMalformedInput  = token.ErrMalformedInput
	ErrTooDeeplyNested = errors.New("too deeply nested")

	ErrEmptySubformula = fmt.Errorf("%w: empty sub-formula", ErrMalformedInput)
	ErrEmptyGrouping   = fmt.Errorf("%w: grouping without a formula", ErrMalformedInput)
	ErrUngrouped       = fmt.Errorf("%w: binary connective not enclosed by grouping", ErrMalformedInput)
)
