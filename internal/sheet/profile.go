package sheet

import (
	"strings"

	"leadboard-engine/internal/domain"
)

type profileColumns struct {
	firstName, lastName, profileURL int
	postURL, postAuthor             int
	company, role, headline, about  int
	engagement, comment             int
}

func resolveProfileColumns(header []string) profileColumns {
	return profileColumns{
		firstName:  ResolveColumn(header, ColFirstName),
		lastName:   ResolveColumn(header, ColLastName),
		profileURL: ResolveColumn(header, ColProfileURL),
		postURL:    ResolveColumn(header, ColPostURL),
		postAuthor: ResolveColumn(header, ColPostAuthor),
		company:    ResolveColumn(header, ColCompany),
		role:       ResolveColumn(header, ColRole),
		headline:   ResolveColumn(header, ColHeadline),
		about:      ResolveColumn(header, ColAbout),
		engagement: ResolveColumn(header, ColEngagement),
		comment:    ResolveColumn(header, ColComment),
	}
}

// BuildProfileEntries walks a profile-data tab into entries. A row is admitted
// only when it has a first or last name AND at least one of profile URL, post
// URL, or post author; everything else is silently skipped. Ordinals are
// 1-based and dense over admitted rows, not raw sheet rows.
func BuildProfileEntries(rows [][]string, topic string, tabID *int64) []domain.ProfileEntry {
	if len(rows) < 2 {
		return nil
	}
	cols := resolveProfileColumns(rows[0])

	var out []domain.ProfileEntry
	ordinal := 0
	for _, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		first := cellAt(row, cols.firstName)
		last := cellAt(row, cols.lastName)
		profile := cellAt(row, cols.profileURL)
		post := cellAt(row, cols.postURL)
		author := cellAt(row, cols.postAuthor)

		if first == "" && last == "" {
			continue
		}
		if profile == "" && post == "" && author == "" {
			continue
		}

		ordinal++
		out = append(out, domain.ProfileEntry{
			Ordinal:     ordinal,
			PostAuthor:  author,
			PostURL:     post,
			FirstName:   first,
			LastName:    last,
			ProfileURL:  profile,
			Company:     cellAt(row, cols.company),
			Role:        cellAt(row, cols.role),
			Headline:    cellAt(row, cols.headline),
			About:       cellAt(row, cols.about),
			Engagement:  classifyEngagement(cellAt(row, cols.engagement)),
			Comment:     cellAt(row, cols.comment),
			SourceTabID: tabID,
			SourceTopic: topic,
		})
	}
	return out
}

// classifyEngagement folds free-text engagement values into the closed enum:
// anything mentioning a comment is Commented, any other non-empty value is
// Liked, empty stays empty.
func classifyEngagement(v string) domain.Engagement {
	if v == "" {
		return ""
	}
	if strings.Contains(strings.ToLower(v), "comment") {
		return domain.EngagementCommented
	}
	return domain.EngagementLiked
}
