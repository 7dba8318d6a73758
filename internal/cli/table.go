package cli

import (
	"fmt"
	"strings"
)

// formatRow renders one aligned table row: each cell left-padded to its
// column width, columns separated by pipes. Using the same widths for the
// header and every data row keeps the columns aligned.
func formatRow(widths []int, cells ...string) string {
	var b strings.Builder
	b.WriteString("|")
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		fmt.Fprintf(&b, " %-*s |", w, cell)
	}
	return b.String()
}

// continueRow renders row cells meant to follow a label cell on the same
// line, so it drops the leading pipe the label already printed.
func continueRow(widths []int, cells ...string) string {
	return strings.TrimPrefix(formatRow(widths, cells...), "|")
}

// rule returns a horizontal separator sized to the given row widths: cell
// padding plus the pipe between each column and at both ends.
func rule(widths []int) string {
	total := 1
	for _, w := range widths {
		total += w + 3
	}
	return strings.Repeat("-", total)
}
