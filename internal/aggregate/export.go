package aggregate

import (
	"leadboard-engine/internal/domain"
	"leadboard-engine/internal/sheetcsv"
)

// ReportCSV renders a unified lead set as the downloadable report. The column
// set is fixed; the UI labels its download button after this header.
func ReportCSV(leads []domain.UnifiedLead) string {
	rows := make([][]string, 0, len(leads)+1)
	rows = append(rows, []string{"First Name", "Last Name", "LinkedIn Post", "Profile URL", "Source"})
	for _, l := range leads {
		rows = append(rows, []string{l.FirstName, l.LastName, l.PostURL, l.ProfileURL, l.Source})
	}
	return sheetcsv.Encode(rows)
}
