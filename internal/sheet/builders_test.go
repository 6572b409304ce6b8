package sheet

import (
	"testing"

	"leadboard-engine/internal/domain"
)

func profileRows(data ...[]string) [][]string {
	rows := [][]string{{"First Name", "Last Name", "Profile URL", "Linkedin Post", "Engagement", "Comment"}}
	return append(rows, data...)
}

func TestBuildProfileEntries_LastNameAndProfileURL_IsAdmitted(t *testing.T) {
	// Arrange
	rows := profileRows([]string{"", "Doe", "https://li.com/in/jd", "", "", ""})

	// Act
	entries := BuildProfileEntries(rows, "Launch", nil)

	// Assert
	if len(entries) != 1 {
		t.Fatalf("entries: got %d, want 1", len(entries))
	}
	if entries[0].LastName != "Doe" {
		t.Errorf("last name: got %q, want Doe", entries[0].LastName)
	}
}

func TestBuildProfileEntries_NameWithoutAnyReference_IsRejected(t *testing.T) {
	// Arrange: first name present, but no profile URL, post URL, or author.
	rows := profileRows([]string{"Jane", "", "", "", "", ""})

	// Act
	entries := BuildProfileEntries(rows, "", nil)

	// Assert
	if len(entries) != 0 {
		t.Errorf("entries: got %d, want 0", len(entries))
	}
}

func TestBuildProfileEntries_Ordinal_DenseOverAdmittedRowsOnly(t *testing.T) {
	// Arrange: rows 2 and 4 are discarded (blank / no reference).
	rows := profileRows(
		[]string{"Jane", "Doe", "https://li.com/in/jd", "", "", ""},
		[]string{"", "", "", "", "", ""},
		[]string{"Bob", "Ray", "", "https://li.com/posts/1", "", ""},
		[]string{"NoRef", "", "", "", "", ""},
		[]string{"Ann", "Lee", "https://li.com/in/al", "", "", ""},
	)

	// Act
	entries := BuildProfileEntries(rows, "", nil)

	// Assert
	if len(entries) != 3 {
		t.Fatalf("entries: got %d, want 3", len(entries))
	}
	for i, e := range entries {
		if e.Ordinal != i+1 {
			t.Errorf("entry %d ordinal: got %d, want %d", i, e.Ordinal, i+1)
		}
	}
}

func TestBuildProfileEntries_EngagementText_FoldsIntoEnum(t *testing.T) {
	// Arrange
	rows := profileRows(
		[]string{"A", "B", "u1", "", "Commented on post", ""},
		[]string{"C", "D", "u2", "", "Like", ""},
		[]string{"E", "F", "u3", "", "", ""},
	)

	// Act
	entries := BuildProfileEntries(rows, "", nil)

	// Assert
	if entries[0].Engagement != domain.EngagementCommented {
		t.Errorf("entry 0: got %q, want commented", entries[0].Engagement)
	}
	if entries[1].Engagement != domain.EngagementLiked {
		t.Errorf("entry 1: got %q, want liked", entries[1].Engagement)
	}
	if entries[2].Engagement != "" {
		t.Errorf("entry 2: got %q, want empty", entries[2].Engagement)
	}
}

func TestBuildProfileEntries_MultiLineCells_KeepInnerNewlines(t *testing.T) {
	// Arrange: the decoder hands quoted cells through with their embedded
	// newlines; the builder must only trim the edges.
	rows := profileRows([]string{"Jane", "Doe", "https://li.com/in/jd", "", "Commented", "line1\nline2"})

	// Act
	entries := BuildProfileEntries(rows, "", nil)

	// Assert
	if len(entries) != 1 {
		t.Fatalf("entries: got %d, want 1", len(entries))
	}
	if entries[0].Comment != "line1\nline2" {
		t.Errorf("comment: got %q, want the newline preserved", entries[0].Comment)
	}
}

func TestBuildMessageEntries_MultiLineDM_KeepsInnerNewlines(t *testing.T) {
	rows := [][]string{
		{"First Name", "Last Name", "Profile URL", "Post URL", "DM", "Approval"},
		{"Jane", "Doe", "u1", "p1", "Hi Jane,\n\nsaw your post.", ""},
	}

	entries := BuildMessageEntries(rows)

	if len(entries) != 1 {
		t.Fatalf("entries: got %d, want 1", len(entries))
	}
	if entries[0].Message != "Hi Jane,\n\nsaw your post." {
		t.Errorf("dm: got %q, want the newlines preserved", entries[0].Message)
	}
}

func TestBuildDirectoryEntries_GIDFragment_IsExtracted(t *testing.T) {
	// Arrange
	rows := [][]string{
		{"Post URL", "Sheet Link", "Topic"},
		{"https://linkedin.com/posts/abc", "https://docs.google.com/spreadsheets/d/x/edit#gid=42", "Launch"},
		{"https://linkedin.com/posts/def", "https://docs.google.com/spreadsheets/d/x/edit", "NoGid"},
	}

	// Act
	entries := BuildDirectoryEntries(rows)

	// Assert
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}
	if entries[0].TabID == nil || *entries[0].TabID != 42 {
		t.Errorf("entry 0 tabId: got %v, want 42", entries[0].TabID)
	}
	if entries[1].TabID != nil {
		t.Errorf("entry 1 tabId: got %v, want nil", *entries[1].TabID)
	}
}

func TestBuildMessageEntries_RowTracksPhysicalSheetRow(t *testing.T) {
	// Arrange: a blank row sits between two admitted rows; the second admitted
	// row is ordinal 2 but physical sheet row 4.
	rows := [][]string{
		{"First Name", "Last Name", "Profile URL", "Post URL", "DM", "Approval"},
		{"Jane", "Doe", "u1", "p1", "hi", "Approved"},
		{"", "", "", "", "", ""},
		{"Bob", "Ray", "u2", "p2", "yo", "Rejected"},
	}

	// Act
	entries := BuildMessageEntries(rows)

	// Assert
	if len(entries) != 2 {
		t.Fatalf("entries: got %d, want 2", len(entries))
	}
	if entries[0].Row != 2 || entries[1].Row != 4 {
		t.Errorf("rows: got %d,%d, want 2,4", entries[0].Row, entries[1].Row)
	}
	if entries[1].Ordinal != 2 {
		t.Errorf("ordinal: got %d, want 2", entries[1].Ordinal)
	}
	if entries[0].State != domain.StatePending {
		t.Errorf("entry 0 state: got %q, want pending", entries[0].State)
	}
	if entries[1].State != domain.StateRejected {
		t.Errorf("entry 1 state: got %q, want rejected", entries[1].State)
	}
}

func TestParseApprovalState_UnrecognizedOrEmpty_DefaultsToPending(t *testing.T) {
	cases := []string{"", "whatever", "APPROVED", "ok to send"}
	for _, c := range cases {
		if st := domain.ParseApprovalState(c); st != domain.StatePending {
			t.Errorf("%q: got %q, want pending", c, st)
		}
	}
	if st := domain.ParseApprovalState("Sent 2024-01-01"); st != domain.StateSent {
		t.Errorf("sent: got %q", st)
	}
}
