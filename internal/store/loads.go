package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type LoadRecord struct {
	At         time.Time `json:"at"`
	Posts      int       `json:"posts"`
	Scraped    int       `json:"scraped"`
	Leads      int       `json:"leads"`
	Unified    int       `json:"unified"`
	TabErrors  int       `json:"tabErrors"`
	DurationMS int64     `json:"durationMs"`
}

func RecordLoad(ctx context.Context, db *sql.DB, rec LoadRecord) error {
	_, err := db.ExecContext(ctx, `
INSERT INTO loads(at, posts, scraped, leads, unified, tab_errors, duration_ms)
VALUES(?,?,?,?,?,?,?);`,
		rec.At.UTC().Format(time.RFC3339), rec.Posts, rec.Scraped, rec.Leads,
		rec.Unified, rec.TabErrors, rec.DurationMS)
	return err
}

// LastLoad returns the most recent load record, or ok=false when there has
// never been one.
func LastLoad(ctx context.Context, db *sql.DB) (LoadRecord, bool, error) {
	var rec LoadRecord
	var atStr string
	err := db.QueryRowContext(ctx, `
SELECT at, posts, scraped, leads, unified, tab_errors, duration_ms
FROM loads ORDER BY id DESC LIMIT 1;`).
		Scan(&atStr, &rec.Posts, &rec.Scraped, &rec.Leads, &rec.Unified, &rec.TabErrors, &rec.DurationMS)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, false, nil
	}
	if err != nil {
		return rec, false, err
	}
	rec.At, _ = time.Parse(time.RFC3339, atStr)
	return rec, true, nil
}
