// Package sheetcsv decodes and encodes the CSV dialect served by spreadsheet
// export endpoints. encoding/csv is too strict for this feed: the exports
// occasionally contain bare quotes and ragged rows, and a single bad cell must
// never sink a whole tab. The scanner here consumes rather than fails.
package sheetcsv

import "strings"

// Decode turns raw CSV text into a grid of string cells. Cells are never nil;
// an empty cell is "". Quoted cells may contain commas, newlines, and doubled
// quotes. Rows end on \n or \r\n; a trailing row without a final newline is
// still emitted. Empty input yields zero rows.
//
// An unbalanced quote does not error: the scanner stays in-quote, treating
// commas and newlines as literals, until a closing quote or end of input.
func Decode(text string) [][]string {
	var rows [][]string
	var row []string
	var cell strings.Builder
	inQuotes := false

	endCell := func() {
		row = append(row, cell.String())
		cell.Reset()
	}
	endRow := func() {
		endCell()
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inQuotes {
			if c == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					cell.WriteByte('"') // escaped quote
					i++
				} else {
					inQuotes = false
				}
				continue
			}
			cell.WriteByte(c)
			continue
		}

		switch c {
		case '"':
			inQuotes = true
		case ',':
			endCell()
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				endRow()
				i++
			} else {
				cell.WriteByte(c)
			}
		case '\n':
			endRow()
		default:
			cell.WriteByte(c)
		}
	}

	// Trailing unterminated row.
	if cell.Len() > 0 || len(row) > 0 {
		endRow()
	}
	return rows
}
