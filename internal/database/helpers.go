package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

// TimeLayout is the stored timestamp format: UTC ISO-8601 with a fixed
// six-digit fraction. Fixed width keeps lexicographic order equal to
// chronological order, which the ORDER BY and reminder comparisons rely on.
const TimeLayout = "2006-01-02T15:04:05.000000Z07:00"

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// now returns the current instant at stored precision. Truncating to the
// layout's precision keeps created rows byte-identical across a round trip.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// formatTime renders t in the stored layout. The write path only ever
// persists timestamps produced here, so stored values always parse back.
func formatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// parseTime parses a stored timestamp.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed stored timestamp %q: %w", s, err)
	}
	return t, nil
}

// parseNullTime converts a nullable stored timestamp to *time.Time.
func parseNullTime(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := parseTime(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// formatNullTime converts *time.Time to a nullable stored timestamp.
func formatNullTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: formatTime(*t), Valid: true}
}

// nullStringToPtr converts sql.NullString to *string.
func nullStringToPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

// ptrToNullString converts *string to sql.NullString.
func ptrToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
