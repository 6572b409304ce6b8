package sheet

import "testing"

func TestClassify_DirectoryHeader_IsDirectory(t *testing.T) {
	header := []string{"Post URL", "Sheet Link", "Topic"}

	if tab := Classify(header); tab != TabDirectory {
		t.Errorf("tab: got %v, want directory", tab)
	}
}

func TestClassify_MessageHeaderAlsoMatchingProfiles_IsMessages(t *testing.T) {
	// Arrange: name + profile columns satisfy the profile signature too, but
	// the DM+approval combination is more specific and must win.
	header := []string{"First Name", "Last Name", "Profile URL", "DM", "Approval"}

	// Act
	tab := Classify(header)

	// Assert
	if tab != TabMessages {
		t.Errorf("tab: got %v, want messages", tab)
	}
}

func TestClassify_NameAndProfileURL_IsProfiles(t *testing.T) {
	header := []string{"First Name", "Last Name", "Profile URL", "Company"}

	if tab := Classify(header); tab != TabProfiles {
		t.Errorf("tab: got %v, want profiles", tab)
	}
}

func TestClassify_NameWithoutAnyReference_IsUnknown(t *testing.T) {
	header := []string{"First Name", "Notes"}

	if tab := Classify(header); tab != TabUnknown {
		t.Errorf("tab: got %v, want unknown", tab)
	}
}

func TestClassify_UnrelatedHeader_IsUnknown(t *testing.T) {
	header := []string{"Invoice", "Amount", "Due Date"}

	if tab := Classify(header); tab != TabUnknown {
		t.Errorf("tab: got %v, want unknown", tab)
	}
}
