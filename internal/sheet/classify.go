package sheet

// Tab is the classification of a fetched tab's header row.
type Tab string

const (
	TabDirectory Tab = "directory"
	TabProfiles  Tab = "profiles"
	TabLeads     Tab = "leads"
	TabMessages  Tab = "messages"
	TabUnknown   Tab = "unknown"
)

// Classify decides which schema a header row follows. The checks are ordered
// because the schemas overlap: a message-queue tab also carries name and
// profile columns, so the more specific DM+approval signature wins. Anything
// that matches nothing is TabUnknown and the caller skips it.
//
// A leads tab's header is a strict subset of a profile tab's, so leads tabs
// are never recognized from the header alone; the loader addresses the leads
// tab by its configured name and tags it TabLeads itself.
func Classify(header []string) Tab {
	if hasColumn(header, ColSheetLink) && hasColumn(header, ColPostURL) {
		return TabDirectory
	}

	hasName := hasColumn(header, ColFirstName) || hasColumn(header, ColLastName)
	hasRef := hasColumn(header, ColProfileURL) || hasColumn(header, ColPostURL) ||
		hasColumn(header, ColPostAuthor)

	if hasColumn(header, ColDM) && hasColumn(header, ColApproval) {
		return TabMessages
	}
	if hasName && hasRef {
		return TabProfiles
	}
	return TabUnknown
}
