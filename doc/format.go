package doc

import (
	"fmt"
	"strings"

	"github.com/rubiojr/coerce/ops"
)

// FormatOp formats a single operation for terminal display: the
// signature followed by the indented doc text, wrapped to the given
// width. A width of 0 disables wrapping.
func FormatOp(op *ops.Op, width int) string {
	var sb strings.Builder
	sb.WriteString(Signature(op))
	sb.WriteString("\n")
	if op.Doc != "" {
		for _, line := range wrap(op.Doc, width-4) {
			sb.WriteString("    ")
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// FormatAll lists every registered operation with its one-line summary.
func FormatAll() string {
	var sb strings.Builder

	sb.WriteString("Operations:\n")
	for _, name := range ops.Names() {
		op, _ := ops.Get(name)
		sb.WriteString(fmt.Sprintf("  %-28s %s\n", Signature(op), Summary(op)))
	}
	sb.WriteString("\nUse \"coerce doc <operation>\" for details.\n")

	return sb.String()
}

// wrap breaks text into lines of at most width characters, splitting on
// spaces. Words longer than width get a line of their own.
func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}

	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteString(" ")
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
