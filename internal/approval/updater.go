package approval

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"leadboard-engine/internal/domain"
	"leadboard-engine/internal/sheet"
)

// Request is one user-triggered transition.
type Request struct {
	Ordinal   int                  `json:"ordinal"`
	Target    domain.ApprovalState `json:"targetState"`
	PostURL   string               `json:"postUrl"`
	FirstName string               `json:"firstName"`
	LastName  string               `json:"lastName"`
}

// Updater applies approval transitions. It never trusts the ordinal-to-row
// mapping from a previous load: the sheet may have gained or lost rows since,
// so every update re-fetches the message tab and re-runs the exact builder
// walk to find the ordinal's current physical row.
type Updater struct {
	// LoadMessages is the shared fresh-fetch + builder walk (injected from
	// the loader so this package needs no sheet client of its own).
	LoadMessages func(ctx context.Context) ([]domain.MessageEntry, sheet.MessageColumns, error)
	// SinkURL resolves the configured sink endpoint; empty means not
	// configured.
	SinkURL func() string
	// NewSink exists for tests; nil means NewSinkClient.
	NewSink func(url string) *SinkClient

	DocumentID string
	TabName    string

	// OnApplied, if set, is called after a successful write (audit log, SSE).
	OnApplied func(req Request, value string, row int)

	mu       sync.Mutex
	inFlight map[int]bool
}

// Apply runs one transition end to end. On any error the sheet was either
// untouched or the write provably failed, so the caller can revert its
// optimistic UI state; a nil return means the sink accepted the mutation.
func (u *Updater) Apply(ctx context.Context, req Request) error {
	if err := ValidTarget(req.Target); err != nil {
		return err
	}

	sinkURL := u.SinkURL()
	if strings.TrimSpace(sinkURL) == "" {
		return ErrNotConfigured
	}

	if !u.acquire(req.Ordinal) {
		return ErrInFlight
	}
	defer u.release(req.Ordinal)

	entries, cols, err := u.LoadMessages(ctx)
	if err != nil {
		return fmt.Errorf("re-fetch message tab: %w", err)
	}
	if cols.Approval < 0 {
		return fmt.Errorf("message tab has no approval column")
	}

	entry, ok := findOrdinal(entries, req.Ordinal)
	if !ok {
		return fmt.Errorf("%w: ordinal %d, tab now has %d rows", ErrRowNotFound, req.Ordinal, len(entries))
	}

	if entry.State == domain.StateSent {
		return ErrTerminalState
	}

	// Cross-check is advisory: the ordinal is authoritative, a mismatch just
	// means the sheet shifted under the UI since its last load.
	if mismatch(entry, req) {
		log.Printf("[approval] identity mismatch at ordinal=%d row=%d: sheet has %q %q %q, caller sent %q %q %q; proceeding",
			req.Ordinal, entry.Row,
			entry.FirstName, entry.LastName, entry.PostURL,
			req.FirstName, req.LastName, req.PostURL)
	}

	newSink := u.NewSink
	if newSink == nil {
		newSink = NewSinkClient
	}
	value := DisplayValue(req.Target)
	wr := WriteRequest{
		Action:     "updateCell",
		DocumentID: u.DocumentID,
		TabName:    u.TabName,
		Row:        entry.Row,
		Column:     cols.Approval + 1, // sheet columns are 1-based
		Value:      value,
		FirstName:  entry.FirstName,
		LastName:   entry.LastName,
		PostURL:    entry.PostURL,
	}
	if err := newSink(sinkURL).Write(ctx, wr); err != nil {
		return err
	}

	log.Printf("[approval] ordinal=%d row=%d col=%d -> %q", req.Ordinal, wr.Row, wr.Column, value)
	if u.OnApplied != nil {
		u.OnApplied(req, value, entry.Row)
	}
	return nil
}

func (u *Updater) acquire(ordinal int) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.inFlight == nil {
		u.inFlight = make(map[int]bool)
	}
	if u.inFlight[ordinal] {
		return false
	}
	u.inFlight[ordinal] = true
	return true
}

func (u *Updater) release(ordinal int) {
	u.mu.Lock()
	delete(u.inFlight, ordinal)
	u.mu.Unlock()
}

func findOrdinal(entries []domain.MessageEntry, ordinal int) (domain.MessageEntry, bool) {
	for _, e := range entries {
		if e.Ordinal == ordinal {
			return e, true
		}
	}
	return domain.MessageEntry{}, false
}

func mismatch(entry domain.MessageEntry, req Request) bool {
	same := func(a, b string) bool {
		return b == "" || strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	return !same(entry.FirstName, req.FirstName) ||
		!same(entry.LastName, req.LastName) ||
		!same(entry.PostURL, req.PostURL)
}
