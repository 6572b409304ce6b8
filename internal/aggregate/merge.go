// Package aggregate merges the per-tab record sets into the unified view the
// dashboard renders: dedup across scraped and curated sources, filtering, and
// summary stats.
package aggregate

import (
	"strings"

	"leadboard-engine/internal/domain"
)

// NormalizeURL canonicalizes a URL for identity comparison: lowercase, trim,
// drop the scheme and a leading www., drop one trailing slash.
func NormalizeURL(u string) string {
	s := strings.ToLower(strings.TrimSpace(u))
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	s = strings.TrimSuffix(s, "/")
	return s
}

func dedupKey(postURL, first, last string) string {
	return NormalizeURL(postURL) + "|" +
		strings.ToLower(strings.TrimSpace(first)) + "|" +
		strings.ToLower(strings.TrimSpace(last))
}

// MergeLeads folds profile entries and lead entries into unified leads,
// deduplicated on the normalized (post, first, last) triple. Profile entries
// go first and first-seen wins, so scraped data beats the curated tab on
// conflict. Output order is input order of the first occurrence.
func MergeLeads(profiles []domain.ProfileEntry, leads []domain.LeadEntry) []domain.UnifiedLead {
	seen := make(map[string]bool, len(profiles)+len(leads))
	out := make([]domain.UnifiedLead, 0, len(profiles)+len(leads))

	for _, p := range profiles {
		k := dedupKey(p.PostURL, p.FirstName, p.LastName)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, domain.UnifiedLead{
			Ordinal:     len(out) + 1,
			PostURL:     p.PostURL,
			FirstName:   p.FirstName,
			LastName:    p.LastName,
			ProfileURL:  p.ProfileURL,
			Company:     p.Company,
			Role:        p.Role,
			Headline:    p.Headline,
			About:       p.About,
			Engagement:  p.Engagement,
			Comment:     p.Comment,
			SourceTopic: p.SourceTopic,
			Source:      "scraped",
		})
	}
	for _, l := range leads {
		k := dedupKey(l.PostURL, l.FirstName, l.LastName)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, domain.UnifiedLead{
			Ordinal:     len(out) + 1,
			PostURL:     l.PostURL,
			FirstName:   l.FirstName,
			LastName:    l.LastName,
			ProfileURL:  l.ProfileURL,
			SourceTopic: l.SourceTopic,
			Source:      "leads",
		})
	}
	return out
}

// Filter narrows a unified lead set. SelectedPost keeps only exact normalized
// post matches; Search is an OR'd case-insensitive substring across name,
// post, and profile fields. Zero values mean "don't filter".
type Filter struct {
	SelectedPost string
	Search       string
}

func FilterLeads(leads []domain.UnifiedLead, f Filter) []domain.UnifiedLead {
	post := NormalizeURL(f.SelectedPost)
	q := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]domain.UnifiedLead, 0, len(leads))
	for _, l := range leads {
		if post != "" && NormalizeURL(l.PostURL) != post {
			continue
		}
		if q != "" && !matchesSearch(l, q) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesSearch(l domain.UnifiedLead, q string) bool {
	for _, field := range []string{l.FirstName, l.LastName, l.PostURL, l.ProfileURL} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
