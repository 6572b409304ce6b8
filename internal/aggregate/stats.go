package aggregate

import (
	"sort"

	"leadboard-engine/internal/domain"
)

const topN = 10

// ComputeStats summarizes a load: totals, which optional fields carry data at
// all (the UI only offers filters for those), and top-10 frequency tables for
// company and role, descending by count with ties in first-encountered order.
func ComputeStats(directory []domain.DirectoryEntry, profiles []domain.ProfileEntry, leads []domain.LeadEntry) domain.Stats {
	st := domain.Stats{
		TotalPosts:   len(directory),
		TotalScraped: len(profiles),
		TotalLeads:   len(leads),
	}

	companies := newFreqTable()
	roles := newFreqTable()

	for _, p := range profiles {
		if p.Company != "" {
			st.HasCompany = true
			companies.add(p.Company)
		}
		if p.Role != "" {
			st.HasRole = true
			roles.add(p.Role)
		}
		if p.Headline != "" {
			st.HasHeadline = true
		}
		if p.Engagement != "" {
			st.HasEngagement = true
		}
	}

	st.TopCompanies = companies.top(topN)
	st.TopRoles = roles.top(topN)
	return st
}

// freqTable counts values and remembers first-encounter order for tie-breaks.
type freqTable struct {
	counts map[string]int
	order  map[string]int
	next   int
}

func newFreqTable() *freqTable {
	return &freqTable{counts: make(map[string]int), order: make(map[string]int)}
}

func (f *freqTable) add(v string) {
	if _, ok := f.counts[v]; !ok {
		f.order[v] = f.next
		f.next++
	}
	f.counts[v]++
}

func (f *freqTable) top(n int) []domain.FieldCount {
	out := make([]domain.FieldCount, 0, len(f.counts))
	for v, c := range f.counts {
		out = append(out, domain.FieldCount{Value: v, Count: c})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return f.order[out[i].Value] < f.order[out[j].Value]
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
