package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sl-format/sl/format"
	"github.com/sl-format/sl/ir"
	"github.com/sl-format/sl/wff"

	"github.com/goccy/go-yaml"
)

// NodeView is the structured form of a node for YAML and JSON output.
type NodeView struct {
	Text       string    `json:"text" yaml:"text"`
	Kind       string    `json:"kind" yaml:"kind"`
	Connective string    `json:"connective,omitempty" yaml:"connective,omitempty"`
	ConnPos    *int      `json:"connPos,omitempty" yaml:"connPos,omitempty"`
	Letter     bool      `json:"letter,omitempty" yaml:"letter,omitempty"`
	Left       *NodeView `json:"left,omitempty" yaml:"left,omitempty"`
	Right      *NodeView `json:"right,omitempty" yaml:"right,omitempty"`
}

func View(n *ir.Node) *NodeView {
	if n == nil {
		return nil
	}
	v := &NodeView{
		Text:  n.Text,
		Kind:  n.Kind().String(),
		Left:  View(n.Left),
		Right: View(n.Right),
	}
	if n.ConnPos != ir.NoConnective {
		pos := n.ConnPos
		v.ConnPos = &pos
		v.Connective = n.Conn.String()
	} else {
		v.Letter = wff.IsLetter(n.Text)
	}
	return v
}

// Marshal writes v to w as YAML or JSON.
func Marshal(v any, w io.Writer, f format.Format) error {
	var (
		d   []byte
		err error
	)
	switch f {
	case format.YAMLFormat:
		d, err = yaml.Marshal(v)
	case format.JSONFormat:
		d, err = json.MarshalIndent(v, "", "  ")
		d = append(d, '\n')
	default:
		return fmt.Errorf("%w: cannot marshal as %s", format.ErrBadFormat, f)
	}
	if err != nil {
		return fmt.Errorf("could not marshal %s: %w", f, err)
	}
	if _, err := w.Write(d); err != nil {
		return fmt.Errorf("could not write %s: %w", f, err)
	}
	return nil
}
