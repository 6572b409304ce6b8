package sheet

import "strings"

// cellAt returns the trimmed cell at idx, or "" when the column was not
// resolved or the row is short. Export rows are frequently ragged. Values are
// only trimmed, never collapsed: a quoted multi-line comment or DM body keeps
// its inner newlines. Header cells go through Clean instead (columns.go).
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// rowEmpty reports whether every cell is empty or whitespace.
func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
