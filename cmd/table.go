package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const tableIndent = "   "

// table prints bordered rows with fixed column widths, the way the session
// views lay out sets.
type table struct {
	widths []int
}

func newTable(widths ...int) *table {
	return &table{widths: widths}
}

func (t *table) border(left, mid, right string) string {
	parts := make([]string, len(t.widths))
	for i, w := range t.widths {
		parts[i] = strings.Repeat("─", w)
	}
	return tableIndent + left + strings.Join(parts, mid) + right
}

// row pads each cell to its column width. Cells may carry color escapes, so
// padding is computed from the visible text passed in plain.
func (t *table) row(plain []string, colored []string) string {
	var sb strings.Builder
	sb.WriteString(tableIndent + "│")
	for i, w := range t.widths {
		text := plain[i]
		if colored != nil && colored[i] != "" {
			text = colored[i]
		}
		pad := w - utf8.RuneCountInString(plain[i])
		if pad < 0 {
			pad = 0
		}
		sb.WriteString(text + strings.Repeat(" ", pad) + "│")
	}
	return sb.String()
}

func (t *table) printHeader(headers ...string) {
	fmt.Println(t.border("┌", "┬", "┐"))
	fmt.Println(t.row(headers, nil))
	fmt.Println(t.border("├", "┼", "┤"))
}

func (t *table) printRow(plain []string, colored []string) {
	fmt.Println(t.row(plain, colored))
}

func (t *table) printFooter() {
	fmt.Println(t.border("└", "┴", "┘"))
}
