// Package format names the ways slc can report a checked formula.
//
// TextFormat is the indented tree followed by the verdict line.  YAMLFormat
// and JSONFormat encode the same result as a document, with the tree as
// nested nodes, for use by other programs.
package format

import (
	"errors"
	"fmt"
	"strings"
)

type Format int

const (
	TextFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

// names holds the long and short name of each Format, indexed by Format.
var names = [...][2]string{
	TextFormat: {"text", "t"},
	YAMLFormat: {"yaml", "y"},
	JSONFormat: {"json", "j"},
}

// Formats lists every Format in declaration order.
func Formats() []Format {
	res := make([]Format, len(names))
	for i := range names {
		res[i] = Format(i)
	}
	return res
}

// Usage describes the accepted names, as "text/t, yaml/y, json/j".
func Usage() string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n[0] + "/" + n[1]
	}
	return strings.Join(parts, ", ")
}

// ParseFormat accepts a long or short name, ignoring case.
func ParseFormat(v string) (Format, error) {
	v = strings.ToLower(v)
	for i, n := range names {
		if v == n[0] || v == n[1] {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// IsDocument is true for formats that encode a result rather than print
// the tree.
func (f Format) IsDocument() bool {
	return f == YAMLFormat || f == JSONFormat
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	if f < 0 || int(f) >= len(names) {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(names[f][0]), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}
