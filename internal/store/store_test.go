package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(db.Pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestLastLoad_EmptyHistory_ReportsNoRecord(t *testing.T) {
	db := testDB(t)

	_, ok, err := LastLoad(context.Background(), db.Pool)

	if err != nil {
		t.Fatalf("last load: %v", err)
	}
	if ok {
		t.Error("expected ok=false on empty history")
	}
}

func TestLastLoad_ReturnsMostRecentRecord(t *testing.T) {
	// Arrange
	db := testDB(t)
	ctx := context.Background()
	older := LoadRecord{At: time.Now().UTC().Add(-time.Hour), Posts: 1, Unified: 3}
	newer := LoadRecord{At: time.Now().UTC(), Posts: 2, Scraped: 5, Unified: 7, DurationMS: 120}
	if err := RecordLoad(ctx, db.Pool, older); err != nil {
		t.Fatalf("record older: %v", err)
	}
	if err := RecordLoad(ctx, db.Pool, newer); err != nil {
		t.Fatalf("record newer: %v", err)
	}

	// Act
	rec, ok, err := LastLoad(ctx, db.Pool)

	// Assert
	if err != nil || !ok {
		t.Fatalf("last load: ok=%v err=%v", ok, err)
	}
	if rec.Posts != 2 || rec.Scraped != 5 || rec.Unified != 7 {
		t.Errorf("record: got %+v, want the newer one", rec)
	}
}

func TestRecordApproval_RoundTripsSheetRow(t *testing.T) {
	// Arrange
	db := testDB(t)
	ctx := context.Background()
	rec := ApprovalRecord{
		At:           time.Now().UTC(),
		Ordinal:      3,
		Target:       "rejected",
		DisplayValue: "Rejected",
		SheetRow:     9,
		OK:           true,
	}
	if err := RecordApproval(ctx, db.Pool, rec); err != nil {
		t.Fatalf("record: %v", err)
	}

	// Act
	got, err := ListApprovals(ctx, db.Pool, 10)

	// Assert
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("records: got %d, want 1", len(got))
	}
	if got[0].SheetRow != 9 {
		t.Errorf("sheet row: got %d, want 9", got[0].SheetRow)
	}
	if !got[0].OK || got[0].Ordinal != 3 || got[0].DisplayValue != "Rejected" {
		t.Errorf("record: got %+v", got[0])
	}
}
