package postgres

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements create the three tables. All statements use
// IF NOT EXISTS so EnsureSchema is safe to run on every startup.
// Dates are stored as TEXT in YYYY-MM-DD; ids are BIGSERIAL and are
// never reused.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS volunteers (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		role TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS shifts (
		id BIGSERIAL PRIMARY KEY,
		volunteer_id BIGINT NOT NULL REFERENCES volunteers (id),
		shift_date TEXT NOT NULL,
		shift_hours INTEGER NOT NULL,
		task TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS attendance (
		id BIGSERIAL PRIMARY KEY,
		volunteer_id BIGINT NOT NULL REFERENCES volunteers (id),
		date TEXT NOT NULL,
		hours INTEGER NOT NULL
	)`,
}

// EnsureSchema idempotently creates the volunteers, shifts, and
// attendance tables. Existing tables and rows are left untouched.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
