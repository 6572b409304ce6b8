// Package approval owns the single write path: validating an approval-state
// transition, re-deriving which physical sheet row an ordinal means on a
// fresh fetch, and relaying the mutation to the external script sink.
package approval

import (
	"errors"
	"fmt"

	"leadboard-engine/internal/domain"
)

var (
	// ErrNotConfigured: no sink URL anywhere (keyring, env, config). Hard,
	// user-visible; nothing is attempted.
	ErrNotConfigured = errors.New("mutation sink is not configured")
	// ErrTerminalState: the entry is Sent, which only the external system may
	// have produced; nothing moves it from here through this path.
	ErrTerminalState = errors.New("message already sent; no further changes allowed")
	// ErrRowNotFound: the fresh fetch had fewer admitted rows than the
	// ordinal. Never guessed around or clamped.
	ErrRowNotFound = errors.New("row not found on re-fetch")
	// ErrInFlight: an update for this ordinal is already running; the second
	// one is refused rather than raced.
	ErrInFlight = errors.New("update already in flight for this message")
)

// ValidTarget reports whether a user-submitted target state is acceptable.
// Sent is never acceptable from this path: the sheet's own automation sets it
// after the message actually goes out.
func ValidTarget(target domain.ApprovalState) error {
	switch target {
	case domain.StatePending, domain.StateRejected:
		return nil
	case domain.StateSent:
		return fmt.Errorf("target state %q is system-managed and cannot be requested", target)
	default:
		return fmt.Errorf("unknown target state %q", target)
	}
}

// DisplayValue translates an internal state tag to the vocabulary the sheet
// displays. Note that pending maps to "Approved": in this sheet's world the
// default state of a queued message is "cleared to send", and Rejected is the
// marked exception. Whether a brand-new row was ever meant to default to
// send-worthy is an open question of the sheet's authors, not ours; we
// preserve their mapping.
func DisplayValue(state domain.ApprovalState) string {
	switch state {
	case domain.StateRejected:
		return "Rejected"
	case domain.StateSent:
		return "Sent"
	default:
		return "Approved"
	}
}
