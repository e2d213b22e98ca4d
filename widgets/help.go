package widgets

import (
	"fmt"
	"strings"
)

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}

// RenderKeyHelp lays sections out side by side, one binding per row
func RenderKeyHelp(sections []KeySection) string {
	var cols [][]string
	rows := 0
	for _, sec := range sections {
		col := []string{sec.Title}
		for _, k := range sec.Keys {
			col = append(col, fmt.Sprintf("%-5s %s", k.Key, k.Desc))
		}
		cols = append(cols, col)
		rows = max(rows, len(col))
	}

	lines := make([]string, rows)
	for _, col := range cols {
		width := 0
		for _, cell := range col {
			width = max(width, len(cell))
		}
		for r := range lines {
			cell := ""
			if r < len(col) {
				cell = col[r]
			}
			lines[r] += fmt.Sprintf("%-*s   ", width, cell)
		}
	}
	for r := range lines {
		lines[r] = strings.TrimRight(lines[r], " ")
	}
	return strings.Join(lines, "\n")
}

// RenderKeyLine squeezes bindings onto one line: "tab:layer u:undo"
func RenderKeyLine(sections []KeySection) string {
	var parts []string
	for _, sec := range sections {
		for _, k := range sec.Keys {
			parts = append(parts, k.Key+":"+k.Desc)
		}
	}
	return strings.Join(parts, "  ")
}
