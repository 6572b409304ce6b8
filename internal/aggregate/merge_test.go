package aggregate

import (
	"strings"
	"testing"

	"leadboard-engine/internal/domain"
)

func TestMergeLeads_NormalizedDuplicate_KeepsProfileData(t *testing.T) {
	// Arrange: same person, post URL differing only in scheme/www/slash.
	profiles := []domain.ProfileEntry{{
		PostURL:   "https://www.x.com/p/1/",
		FirstName: "Jo",
		LastName:  "Doe",
		Company:   "Acme",
		Role:      "CTO",
	}}
	leads := []domain.LeadEntry{{
		PostURL:   "x.com/p/1",
		FirstName: "Jo",
		LastName:  "Doe",
	}}

	// Act
	unified := MergeLeads(profiles, leads)

	// Assert
	if len(unified) != 1 {
		t.Fatalf("unified: got %d, want 1", len(unified))
	}
	if unified[0].Company != "Acme" || unified[0].Role != "CTO" {
		t.Errorf("optional fields should come from the profile entry, got %+v", unified[0])
	}
	if unified[0].Source != "scraped" {
		t.Errorf("source: got %q, want scraped", unified[0].Source)
	}
}

func TestMergeLeads_DistinctPeople_AllKept(t *testing.T) {
	profiles := []domain.ProfileEntry{
		{PostURL: "x.com/p/1", FirstName: "A", LastName: "One"},
		{PostURL: "x.com/p/1", FirstName: "B", LastName: "Two"},
	}
	leads := []domain.LeadEntry{
		{PostURL: "x.com/p/2", FirstName: "A", LastName: "One"},
	}

	unified := MergeLeads(profiles, leads)

	if len(unified) != 3 {
		t.Errorf("unified: got %d, want 3", len(unified))
	}
	for i, u := range unified {
		if u.Ordinal != i+1 {
			t.Errorf("ordinal %d: got %d", i, u.Ordinal)
		}
	}
}

func TestFilterLeads_SelectedPost_ExactNormalizedMatchOnly(t *testing.T) {
	// Arrange: /p/12 must not match a /p/1 filter just because of the prefix.
	leads := []domain.UnifiedLead{
		{PostURL: "https://x.com/p/1", FirstName: "A"},
		{PostURL: "https://x.com/p/12", FirstName: "B"},
	}

	// Act
	got := FilterLeads(leads, Filter{SelectedPost: "x.com/p/1/"})

	// Assert
	if len(got) != 1 || got[0].FirstName != "A" {
		t.Errorf("got %+v, want only A", got)
	}
}

func TestFilterLeads_Search_MatchesAnyFieldCaseInsensitive(t *testing.T) {
	leads := []domain.UnifiedLead{
		{FirstName: "Jane", LastName: "Doe", ProfileURL: "li.com/in/jd"},
		{FirstName: "Bob", LastName: "Ray", PostURL: "li.com/posts/widget-launch"},
	}

	if got := FilterLeads(leads, Filter{Search: "WIDGET"}); len(got) != 1 || got[0].FirstName != "Bob" {
		t.Errorf("search widget: got %+v", got)
	}
	if got := FilterLeads(leads, Filter{Search: "doe"}); len(got) != 1 || got[0].FirstName != "Jane" {
		t.Errorf("search doe: got %+v", got)
	}
	if got := FilterLeads(leads, Filter{}); len(got) != 2 {
		t.Errorf("no filter: got %d, want 2", len(got))
	}
}

func TestReportCSV_QuotesAwkwardCells(t *testing.T) {
	// Arrange
	leads := []domain.UnifiedLead{
		{FirstName: `Jo "JJ"`, LastName: "Doe, Jr", PostURL: "x.com/p/1", ProfileURL: "li.com/in/jj", Source: "scraped"},
	}

	// Act
	csv := ReportCSV(leads)

	// Assert
	lines := strings.Split(strings.TrimRight(csv, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines: got %d, want 2", len(lines))
	}
	if lines[0] != "First Name,Last Name,LinkedIn Post,Profile URL,Source" {
		t.Errorf("header: got %q", lines[0])
	}
	if !strings.Contains(lines[1], `"Jo ""JJ"""`) || !strings.Contains(lines[1], `"Doe, Jr"`) {
		t.Errorf("row: got %q", lines[1])
	}
}
