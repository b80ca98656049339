package jsontree

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/jeyms233/jsontree/encode"
	"github.com/jeyms233/jsontree/ir"
)

// DiffText renders a unified-style line diff between the indented JSON
// forms of a and b, for operator-facing diagnostics. Identical trees
// yield the empty string.
func DiffText(a, b *ir.Node) string {
	aText := encode.JSON(a, false) + "\n"
	bText := encode.JSON(b, false) + "\n"
	if aText == bText {
		return ""
	}
	dmp := diffpatch.New()
	aRunes, bRunes, lines := dmp.DiffLinesToRunes(aText, bText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(aRunes, bRunes, false), lines)

	var sb strings.Builder
	for _, diff := range diffs {
		prefix := "  "
		switch diff.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		}
		for line := range strings.Lines(diff.Text) {
			sb.WriteString(prefix)
			sb.WriteString(strings.TrimSuffix(line, "\n"))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
