package encode

import (
	"strings"

	"github.com/sl-format/sl/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff compares the uncolored renderings of two trees line by line.  Lines
// only in from are prefixed "- ", lines only in to "+ ", and shared lines
// "  ".  The result is empty when the renderings are equal.
func Diff(from, to *ir.Node) string {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(MustString(from), MustString(to))
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	changed := false
	buf := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
			changed = true
		case diffpatch.DiffDelete:
			prefix = "- "
			changed = true
		}
		for _, ln := range strings.SplitAfter(diff.Text, "\n") {
			if ln == "" {
				continue
			}
			buf.WriteString(prefix)
			buf.WriteString(ln)
		}
	}
	if !changed {
		return ""
	}
	return buf.String()
}
