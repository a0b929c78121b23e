package encode

// DefaultIndent is written once per level of depth.
const DefaultIndent = "\t\t"

type EncodeOption func(*EncState)

func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}
func Indent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

func newEncState(opts ...EncodeOption) *EncState {
	es := &EncState{indent: DefaultIndent, Color: colorNone}
	for _, opt := range opts {
		opt(es)
	}
	return es
}
