package domain

// DirectoryEntry is one row of the directory tab: a tracked LinkedIn post and
// the tab holding its scraped data. Rebuilt from scratch on every load.
type DirectoryEntry struct {
	SourceURL string `json:"sourceUrl"`
	SheetRef  string `json:"sheetRef"`
	Topic     string `json:"topic"`
	TabID     *int64 `json:"tabId,omitempty"` // nil when no gid could be pulled out of SheetRef
}

type Engagement string

const (
	EngagementLiked     Engagement = "liked"
	EngagementCommented Engagement = "commented"
)

// ProfileEntry is one scraped engagement/profile row.
type ProfileEntry struct {
	Ordinal     int        `json:"ordinal"`
	PostAuthor  string     `json:"postAuthor,omitempty"`
	PostURL     string     `json:"postUrl"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	ProfileURL  string     `json:"profileUrl"`
	Company     string     `json:"company,omitempty"`
	Role        string     `json:"role,omitempty"`
	Headline    string     `json:"headline,omitempty"`
	About       string     `json:"about,omitempty"`
	Engagement  Engagement `json:"engagement,omitempty"`
	Comment     string     `json:"comment,omitempty"`
	SourceTabID *int64     `json:"sourceTabId,omitempty"`
	SourceTopic string     `json:"sourceTopic,omitempty"`
}

// LeadEntry is one row of the hand-curated leads tab.
type LeadEntry struct {
	Ordinal     int    `json:"ordinal"`
	PostURL     string `json:"postUrl"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	ProfileURL  string `json:"profileUrl"`
	SourceTopic string `json:"sourceTopic,omitempty"`
}

// UnifiedLead is the deduplicated merge of profile- and lead-sourced rows for
// one outreach target. Source records which side it came from.
type UnifiedLead struct {
	Ordinal     int        `json:"ordinal"`
	PostURL     string     `json:"postUrl"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	ProfileURL  string     `json:"profileUrl"`
	Company     string     `json:"company,omitempty"`
	Role        string     `json:"role,omitempty"`
	Headline    string     `json:"headline,omitempty"`
	About       string     `json:"about,omitempty"`
	Engagement  Engagement `json:"engagement,omitempty"`
	Comment     string     `json:"comment,omitempty"`
	SourceTopic string     `json:"sourceTopic,omitempty"`
	Source      string     `json:"source"` // scraped/leads
}
