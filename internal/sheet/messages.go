package sheet

import "leadboard-engine/internal/domain"

// MessageColumns are the resolved column indexes of a message-queue tab.
// Approval is exported because the write path needs the physical column
// number to address its mutation.
type MessageColumns struct {
	FirstName  int
	LastName   int
	ProfileURL int
	PostURL    int
	Headline   int
	Company    int
	DM         int
	Approval   int
}

// ResolveMessageColumns resolves the message-queue schema against a header.
func ResolveMessageColumns(header []string) MessageColumns {
	return MessageColumns{
		FirstName:  ResolveColumn(header, ColFirstName),
		LastName:   ResolveColumn(header, ColLastName),
		ProfileURL: ResolveColumn(header, ColProfileURL),
		PostURL:    ResolveColumn(header, ColPostURL),
		Headline:   ResolveColumn(header, ColHeadline),
		Company:    ResolveColumn(header, ColCompany),
		DM:         ResolveColumn(header, ColDM),
		Approval:   ResolveColumn(header, ColApproval),
	}
}

// BuildMessageEntries walks the message-queue tab. This is the ONLY routine
// that assigns message ordinals: the approval updater re-runs this exact walk
// against a fresh fetch to re-derive which physical row an ordinal means, so
// the two computations cannot drift apart. Each entry records the 1-based
// sheet row it came from (header is row 1).
func BuildMessageEntries(rows [][]string) []domain.MessageEntry {
	if len(rows) < 2 {
		return nil
	}
	cols := ResolveMessageColumns(rows[0])

	var out []domain.MessageEntry
	ordinal := 0
	for i, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		first := cellAt(row, cols.FirstName)
		last := cellAt(row, cols.LastName)
		profile := cellAt(row, cols.ProfileURL)
		post := cellAt(row, cols.PostURL)

		if first == "" && last == "" {
			continue
		}
		if profile == "" && post == "" {
			continue
		}

		ordinal++
		out = append(out, domain.MessageEntry{
			Ordinal:    ordinal,
			Row:        i + 2, // data starts on sheet row 2
			PostURL:    post,
			FirstName:  first,
			LastName:   last,
			ProfileURL: profile,
			Headline:   cellAt(row, cols.Headline),
			Company:    cellAt(row, cols.Company),
			Message:    cellAt(row, cols.DM),
			State:      domain.ParseApprovalState(cellAt(row, cols.Approval)),
		})
	}
	return out
}
