package sqlite

import (
	"context"
	"database/sql"
	"time"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS check_history (
	id                   TEXT PRIMARY KEY,
	input                TEXT NOT NULL,
	normalized           TEXT NOT NULL,
	risk_level           TEXT NOT NULL,
	caller_json          TEXT NOT NULL,
	warnings_json        TEXT NOT NULL,
	details_json         TEXT NOT NULL,
	recommendations_json TEXT NOT NULL,
	insight_json         TEXT,
	checked_at           TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_check_history_checked_at ON check_history (checked_at DESC);

CREATE TABLE IF NOT EXISTS reported_cases (
	id                TEXT PRIMARY KEY,
	number            TEXT NOT NULL UNIQUE,
	description       TEXT NOT NULL,
	category          TEXT NOT NULL DEFAULT '',
	reports           INTEGER NOT NULL DEFAULT 1,
	first_reported_at TIMESTAMP NOT NULL,
	last_reported_at  TIMESTAMP NOT NULL
);
`

// Connect opens an in-memory database and creates the schema. State lives
// for the process lifetime only; a restart starts empty, which is the
// intended behavior. The pool is pinned to one connection so the memory
// database is never dropped between queries.
func Connect(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx2, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx2); err != nil {
		db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx2, schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
