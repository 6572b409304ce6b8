package aggregate

import (
	"testing"

	"leadboard-engine/internal/domain"
)

func profilesWithCompanies(counts map[string]int, order []string) []domain.ProfileEntry {
	var out []domain.ProfileEntry
	for _, name := range order {
		for i := 0; i < counts[name]; i++ {
			out = append(out, domain.ProfileEntry{FirstName: "x", ProfileURL: "u", Company: name})
		}
	}
	return out
}

func TestComputeStats_TopCompanies_TiesBreakByFirstEncounter(t *testing.T) {
	// Arrange: A and B tie at 5; A appears first in the input.
	profiles := profilesWithCompanies(map[string]int{"A": 5, "B": 5, "C": 3}, []string{"A", "B", "C"})

	// Act
	st := ComputeStats(nil, profiles, nil)

	// Assert
	want := []string{"A", "B", "C"}
	if len(st.TopCompanies) != 3 {
		t.Fatalf("top companies: got %d, want 3", len(st.TopCompanies))
	}
	for i, w := range want {
		if st.TopCompanies[i].Value != w {
			t.Errorf("rank %d: got %q, want %q", i, st.TopCompanies[i].Value, w)
		}
	}
	if st.TopCompanies[2].Count != 3 {
		t.Errorf("C count: got %d, want 3", st.TopCompanies[2].Count)
	}
}

func TestComputeStats_TopCompanies_TruncatesToTen(t *testing.T) {
	order := []string{"c0", "c1", "c2", "c3", "c4", "c5", "c6", "c7", "c8", "c9", "c10", "c11"}
	counts := map[string]int{}
	for _, c := range order {
		counts[c] = 1
	}
	profiles := profilesWithCompanies(counts, order)

	st := ComputeStats(nil, profiles, nil)

	if len(st.TopCompanies) != 10 {
		t.Errorf("top companies: got %d, want 10", len(st.TopCompanies))
	}
}

func TestComputeStats_AbsentFields_DoNotEnableFilters(t *testing.T) {
	// Arrange: nobody has a role or headline anywhere.
	profiles := []domain.ProfileEntry{
		{FirstName: "A", ProfileURL: "u1", Company: "Acme"},
		{FirstName: "B", ProfileURL: "u2", Engagement: domain.EngagementLiked},
	}

	// Act
	st := ComputeStats(nil, profiles, nil)

	// Assert
	if !st.HasCompany || !st.HasEngagement {
		t.Errorf("expected company and engagement flags set: %+v", st)
	}
	if st.HasRole || st.HasHeadline {
		t.Errorf("expected role and headline flags unset: %+v", st)
	}
	if len(st.TopRoles) != 0 {
		t.Errorf("top roles: got %d, want 0", len(st.TopRoles))
	}
}

func TestComputeStats_Totals(t *testing.T) {
	dir := []domain.DirectoryEntry{{SourceURL: "p", SheetRef: "s"}}
	profiles := []domain.ProfileEntry{{FirstName: "A", ProfileURL: "u"}}
	leads := []domain.LeadEntry{{FirstName: "B", ProfileURL: "v"}, {FirstName: "C", ProfileURL: "w"}}

	st := ComputeStats(dir, profiles, leads)

	if st.TotalPosts != 1 || st.TotalScraped != 1 || st.TotalLeads != 2 {
		t.Errorf("totals: %+v", st)
	}
}
