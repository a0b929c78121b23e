package token

import (
	"fmt"
	"strconv"
)

// PosDoc holds the text positions refer to.
type PosDoc struct {
	d []byte
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: d,
	}
}

// Pos is a byte offset into a formula.
type Pos struct {
	I int
	D *PosDoc
}

// Char is the 1-based character position.
func (p Pos) Char() int {
	return p.I + 1
}

func (p Pos) String() string {
	if p.D == nil {
		return fmt.Sprintf("near character %d", p.Char())
	}
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("near character %d (`...%s...`)", p.Char(), sample)
}
