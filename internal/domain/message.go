package domain

import "strings"

// ApprovalState is the internal tag for a queued message's review state. The
// sheet itself speaks a display vocabulary (see approval.DisplayValue); these
// tags are what the engine and the UI trade in.
type ApprovalState string

const (
	StatePending  ApprovalState = "pending"
	StateRejected ApprovalState = "rejected"
	StateSent     ApprovalState = "sent"
)

// ParseApprovalState maps a free-text approval cell to a state tag. Absent or
// unrecognized values default to pending. Note the quirk carried over from the
// sheet's authors: the pending tag displays as "Approved" at the sink, i.e.
// pending here means send-worthy, not un-reviewed.
func ParseApprovalState(s string) ApprovalState {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(v, "reject"):
		return StateRejected
	case strings.Contains(v, "sent"):
		return StateSent
	default:
		return StatePending
	}
}

// MessageEntry is one row of the message-queue tab. Row is the physical
// 1-based sheet row the entry was built from (header is row 1); it is only
// meaningful within the fetch that produced it, since the sheet can reorder
// underneath us. Ordinal is the stable-enough identifier the UI holds.
type MessageEntry struct {
	Ordinal    int           `json:"ordinal"`
	Row        int           `json:"-"`
	PostURL    string        `json:"postUrl"`
	FirstName  string        `json:"firstName"`
	LastName   string        `json:"lastName"`
	ProfileURL string        `json:"profileUrl"`
	Headline   string        `json:"headline,omitempty"`
	Company    string        `json:"company,omitempty"`
	Message    string        `json:"message,omitempty"`
	State      ApprovalState `json:"approvalState"`
}
