package sheetcsv

import "strings"

// Encode renders a grid back to CSV text with standard quoting: any cell
// containing a comma, quote, or line break is wrapped in quotes with inner
// quotes doubled. Every row ends with \n, so Decode(Encode(g)) == g for any
// grid of non-empty rows.
func Encode(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escape(cell))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func escape(cell string) string {
	if !strings.ContainsAny(cell, ",\"\n\r") {
		return cell
	}
	return `"` + strings.ReplaceAll(cell, `"`, `""`) + `"`
}
