package sheet

import (
	"strconv"
	"strings"

	"leadboard-engine/internal/domain"
)

// BuildDirectoryEntries walks the directory tab into tracked-post entries.
// Rows missing either the post URL or the sheet reference are skipped.
func BuildDirectoryEntries(rows [][]string) []domain.DirectoryEntry {
	if len(rows) < 2 {
		return nil
	}
	header := rows[0]
	postCol := ResolveColumn(header, ColPostURL)
	refCol := ResolveColumn(header, ColSheetLink)
	topicCol := ResolveColumn(header, ColTopic)

	var out []domain.DirectoryEntry
	for _, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		post := cellAt(row, postCol)
		ref := cellAt(row, refCol)
		if post == "" || ref == "" {
			continue
		}
		out = append(out, domain.DirectoryEntry{
			SourceURL: post,
			SheetRef:  ref,
			Topic:     cellAt(row, topicCol),
			TabID:     ExtractGID(ref),
		})
	}
	return out
}

// ExtractGID pulls the gid fragment/query parameter out of a sheet reference
// URL ("...#gid=42" or "...?gid=42"). Returns nil when there is none.
func ExtractGID(ref string) *int64 {
	i := strings.Index(ref, "gid=")
	if i < 0 {
		return nil
	}
	rest := ref[i+len("gid="):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}
	gid, err := strconv.ParseInt(rest[:end], 10, 64)
	if err != nil {
		return nil
	}
	return &gid
}
