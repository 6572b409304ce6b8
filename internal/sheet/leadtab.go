package sheet

import "leadboard-engine/internal/domain"

// BuildLeadEntries walks the hand-curated leads tab. Same admission rule as
// profile rows (a name plus something to reach the person by), same dense
// ordinal, but none of the scraped extras.
func BuildLeadEntries(rows [][]string, topic string) []domain.LeadEntry {
	if len(rows) < 2 {
		return nil
	}
	header := rows[0]
	firstCol := ResolveColumn(header, ColFirstName)
	lastCol := ResolveColumn(header, ColLastName)
	profileCol := ResolveColumn(header, ColProfileURL)
	postCol := ResolveColumn(header, ColPostURL)

	var out []domain.LeadEntry
	ordinal := 0
	for _, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		first := cellAt(row, firstCol)
		last := cellAt(row, lastCol)
		profile := cellAt(row, profileCol)
		post := cellAt(row, postCol)

		if first == "" && last == "" {
			continue
		}
		if profile == "" && post == "" {
			continue
		}

		ordinal++
		out = append(out, domain.LeadEntry{
			Ordinal:     ordinal,
			PostURL:     post,
			FirstName:   first,
			LastName:    last,
			ProfileURL:  profile,
			SourceTopic: topic,
		})
	}
	return out
}
