// Package formatter renders record listings as aligned markdown tables.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// minColWidth keeps the separator at least "---".
const minColWidth = 3

// Table renders headers and rows as a markdown table padded by display
// width, so titles in wide scripts still line up in a terminal. Cells are
// trimmed and pipes inside cells are escaped.
func Table(headers []string, rows [][]string) string {
	table := make([][]string, 0, len(rows)+1)
	table = append(table, cleanCells(headers))

	for _, row := range rows {
		table = append(table, cleanCells(row))
	}

	colCount := 0
	for _, row := range table {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	if colCount == 0 {
		return ""
	}

	colWidths := make([]int, colCount)

	for _, row := range table {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > colWidths[i] {
				colWidths[i] = w
			}
		}
	}

	for i := range colWidths {
		if colWidths[i] < minColWidth {
			colWidths[i] = minColWidth
		}
	}

	lines := make([]string, 0, len(table)+1)
	lines = append(lines, renderRow(table[0], colWidths))
	lines = append(lines, renderSeparator(colWidths))

	for _, row := range table[1:] {
		lines = append(lines, renderRow(row, colWidths))
	}

	return strings.Join(lines, "\n") + "\n"
}

// Truncate shortens s to at most width display columns, marking the cut
// with "...".
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}

	return runewidth.Truncate(s, width, "...")
}

func cleanCells(row []string) []string {
	cells := make([]string, len(row))
	for i, c := range row {
		c = strings.Join(strings.Fields(c), " ")
		cells[i] = strings.ReplaceAll(c, "|", `\|`)
	}

	return cells
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(row) {
			content = row[j]
		}

		sb.WriteString(" ")
		sb.WriteString(content)

		// Pad with spaces based on display width
		if padding := width - runewidth.StringWidth(content); padding > 0 {
			sb.WriteString(strings.Repeat(" ", padding))
		}

		sb.WriteString(" |")
	}

	return sb.String()
}

func renderSeparator(colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for _, width := range colWidths {
		sb.WriteString(" ")
		sb.WriteString(strings.Repeat("-", width))
		sb.WriteString(" |")
	}

	return sb.String()
}
