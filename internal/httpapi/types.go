package httpapi

// LoadStatus is the last-load summary surfaced on /status. Stored in an
// atomic.Value; always replaced whole, never mutated in place.
type LoadStatus struct {
	LastLoadAt  string `json:"last_load_at"`
	LastOkAt    string `json:"last_ok_at"`
	LastError   string `json:"last_error"`
	Posts       int    `json:"posts"`
	Scraped     int    `json:"scraped"`
	Leads       int    `json:"leads"`
	Unified     int    `json:"unified"`
	TabErrors   int    `json:"tab_errors"`
	Subscribers int    `json:"subscribers"`
}
