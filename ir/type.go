package ir

import "fmt"

// Kind is the grammatical category of a node.
type Kind int

const (
	AtomicKind Kind = iota
	NegationKind
	BinaryKind
	BrokenKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		AtomicKind:   "Atomic",
		NegationKind: "Negation",
		BinaryKind:   "Binary",
		BrokenKind:   "Broken",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Atomic":   AtomicKind,
		"Negation": NegationKind,
		"Binary":   BinaryKind,
		"Broken":   BrokenKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}
