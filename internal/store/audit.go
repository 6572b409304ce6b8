package store

import (
	"context"
	"database/sql"
	"time"
)

type ApprovalRecord struct {
	At           time.Time `json:"at"`
	Ordinal      int       `json:"ordinal"`
	Target       string    `json:"target"`
	DisplayValue string    `json:"displayValue"`
	SheetRow     int       `json:"sheetRow"`
	OK           bool      `json:"ok"`
	Message      string    `json:"message,omitempty"`
}

// RecordApproval appends one write-path attempt, successful or not, to the
// audit log.
func RecordApproval(ctx context.Context, db *sql.DB, rec ApprovalRecord) error {
	ok := 0
	if rec.OK {
		ok = 1
	}
	_, err := db.ExecContext(ctx, `
INSERT INTO approval_log(at, ordinal, target, display_value, sheet_row, ok, message)
VALUES(?,?,?,?,?,?,?);`,
		rec.At.UTC().Format(time.RFC3339), rec.Ordinal, rec.Target,
		rec.DisplayValue, rec.SheetRow, ok, rec.Message)
	return err
}

// ListApprovals returns the newest attempts first, capped at limit.
func ListApprovals(ctx context.Context, db *sql.DB, limit int) ([]ApprovalRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.QueryContext(ctx, `
SELECT at, ordinal, target, display_value, sheet_row, ok, message
FROM approval_log ORDER BY id DESC LIMIT ?;`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ApprovalRecord
	for rows.Next() {
		var rec ApprovalRecord
		var atStr string
		var ok int
		if err := rows.Scan(&atStr, &rec.Ordinal, &rec.Target, &rec.DisplayValue, &rec.SheetRow, &ok, &rec.Message); err != nil {
			return nil, err
		}
		rec.At, _ = time.Parse(time.RFC3339, atStr)
		rec.OK = ok == 1
		out = append(out, rec)
	}
	return out, rows.Err()
}
