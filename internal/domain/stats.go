package domain

// FieldCount is one bucket of a frequency table.
type FieldCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Stats is the aggregate summary the dashboard renders. The Has* flags tell
// the UI which filters to offer at all: a field with no data anywhere must not
// grow a filter dropdown.
type Stats struct {
	TotalPosts   int `json:"totalPosts"`
	TotalScraped int `json:"totalScraped"`
	TotalLeads   int `json:"totalLeads"`
	TotalUnified int `json:"totalUnified"`

	HasCompany    bool `json:"hasCompany"`
	HasRole       bool `json:"hasRole"`
	HasHeadline   bool `json:"hasHeadline"`
	HasEngagement bool `json:"hasEngagement"`

	TopCompanies []FieldCount `json:"topCompanies"`
	TopRoles     []FieldCount `json:"topRoles"`
}
