// Package sheet turns fetched spreadsheet tabs into domain records: it
// resolves loosely-named columns, classifies tabs by header signature, and
// walks data rows into typed entries.
package sheet

import "strings"

// Canonical field names. All resolution goes through these; builders never
// match header text directly.
const (
	ColFirstName  = "first name"
	ColLastName   = "last name"
	ColProfileURL = "profile url"
	ColPostURL    = "post url"
	ColPostAuthor = "post author"
	ColCompany    = "company"
	ColRole       = "role"
	ColHeadline   = "headline"
	ColAbout      = "about"
	ColEngagement = "engagement"
	ColComment    = "comment"
	ColDM         = "dm"
	ColApproval   = "approval"
	ColSheetLink  = "sheet link"
	ColTopic      = "topic"
)

// The sheet's authors rename columns per campaign; new spellings land here,
// not in the builders. Each synonym is checked with the same
// substring-either-direction rule as the canonical name.
var synonyms = map[string][]string{
	ColFirstName:  {"firstname", "first_name", "fname", "given name"},
	ColLastName:   {"lastname", "last_name", "lname", "surname", "family name"},
	ColProfileURL: {"profile_url", "profile link", "linkedin url", "linkedin profile", "profile"},
	ColPostURL:    {"post_url", "post link", "linkedin post", "source url", "post"},
	ColPostAuthor: {"post_author", "author", "posted by", "post owner"},
	ColCompany:    {"company name", "organization", "organisation", "employer"},
	ColRole:       {"job title", "title", "position", "designation"},
	ColHeadline:   {"head line", "tagline"},
	ColAbout:      {"summary", "bio", "description"},
	ColEngagement: {"engagement type", "engagement_type", "reaction", "action"},
	ColComment:    {"comment text", "comment_text", "comments"},
	ColDM:         {"dm text", "dm_text", "message text", "outreach message", "message", "draft"},
	ColApproval:   {"approval status", "approval_status", "approved", "review", "status"},
	ColSheetLink:  {"sheet url", "sheet_url", "sheet ref", "tab link", "data link", "scraped sheet", "spreadsheet"},
	ColTopic:      {"campaign", "theme", "subject"},
}

// Clean collapses whitespace (including nbsp) and trims.
func Clean(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// ResolveColumn maps a canonical field name to a column index in header, or
// -1. Three tiers, first match wins, headers scanned left to right:
//
//  1. exact match, trimmed and case-insensitive
//  2. substring in either direction (header contains name or name contains
//     header)
//  3. each synonym in table order, substring-either-direction again
func ResolveColumn(header []string, canonical string) int {
	want := strings.ToLower(Clean(canonical))
	if want == "" {
		return -1
	}

	norm := make([]string, len(header))
	for i, h := range header {
		norm[i] = strings.ToLower(Clean(h))
	}

	for i, h := range norm {
		if h == want {
			return i
		}
	}
	for i, h := range norm {
		if h != "" && (strings.Contains(h, want) || strings.Contains(want, h)) {
			return i
		}
	}
	for _, syn := range synonyms[want] {
		for i, h := range norm {
			if h != "" && (strings.Contains(h, syn) || strings.Contains(syn, h)) {
				return i
			}
		}
	}
	return -1
}

// hasColumn reports whether a canonical field resolves at all.
func hasColumn(header []string, canonical string) bool {
	return ResolveColumn(header, canonical) >= 0
}
