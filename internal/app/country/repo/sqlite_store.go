package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/tkoivu/country-edit-service/internal/app/country/contracts"
	"github.com/tkoivu/country-edit-service/internal/app/country/domain"
	"github.com/tkoivu/country-edit-service/internal/pkg/clock"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS countries (
	uid        TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	code       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS revisions (
	revision_id TEXT PRIMARY KEY,
	uid         TEXT NOT NULL,
	name        TEXT NOT NULL,
	code        TEXT NOT NULL,
	saved_at    TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_revisions_uid ON revisions(uid, saved_at);
`

// sqliteTimeLayout is a fixed-width RFC 3339 layout. Padding the
// fractional seconds keeps lexicographic order equal to chronological
// order, which ORDER BY on the saved_at text column relies on.
const sqliteTimeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteStore implements RecordStore and RevisionLog on an embedded
// SQLite database, for local and single-node deployments. Timestamps
// are stored as fixed-width RFC 3339 text.
type SQLiteStore struct {
	db    *sql.DB
	clock clock.Clock
}

// OpenSQLiteStore opens (or creates) the database at path and applies
// the schema. Use ":memory:" for an ephemeral store.
func OpenSQLiteStore(path string, clk clock.Clock) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, clock: clk}, nil
}

var (
	_ contracts.RecordStore = (*SQLiteStore)(nil)
	_ contracts.RevisionLog = (*SQLiteStore)(nil)
)

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Fetch reads the record row by identifier.
func (s *SQLiteStore) Fetch(ctx context.Context, uid string) (domain.Record, error) {
	const q = `SELECT uid, name, code FROM countries WHERE uid = ?`

	var rec domain.Record
	err := s.db.QueryRowContext(ctx, q, uid).Scan(&rec.UID, &rec.Name, &rec.Code)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, domain.ErrRecordNotFound
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("read record: %w", err)
	}
	return rec, nil
}

// Save upserts the record row and appends a revision in one transaction.
func (s *SQLiteStore) Save(ctx context.Context, rec domain.Record) error {
	now := s.clock.Now().UTC().Format(sqliteTimeLayout)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save transaction: %w", err)
	}
	defer tx.Rollback()

	const upsert = `
INSERT INTO countries (uid, name, code, updated_at) VALUES (?, ?, ?, ?)
ON CONFLICT(uid) DO UPDATE SET name = excluded.name, code = excluded.code, updated_at = excluded.updated_at`
	if _, err := tx.ExecContext(ctx, upsert, rec.UID, rec.Name, rec.Code, now); err != nil {
		return fmt.Errorf("upsert record: %w", err)
	}

	const journal = `INSERT INTO revisions (revision_id, uid, name, code, saved_at) VALUES (?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, journal, uuid.NewString(), rec.UID, rec.Name, rec.Code, now); err != nil {
		return fmt.Errorf("append revision: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

// Revisions lists journal rows for a record, newest first.
func (s *SQLiteStore) Revisions(ctx context.Context, uid string, limit int64) ([]contracts.Revision, error) {
	const q = `
SELECT revision_id, uid, name, code, saved_at
FROM revisions WHERE uid = ?
ORDER BY saved_at DESC LIMIT ?`

	rows, err := s.db.QueryContext(ctx, q, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	defer rows.Close()

	var out []contracts.Revision
	for rows.Next() {
		var rev contracts.Revision
		var savedAt string
		if err := rows.Scan(&rev.RevisionID, &rev.Record.UID, &rev.Record.Name, &rev.Record.Code, &savedAt); err != nil {
			return nil, fmt.Errorf("scan revision: %w", err)
		}
		rev.SavedAt, err = time.Parse(sqliteTimeLayout, savedAt)
		if err != nil {
			return nil, fmt.Errorf("parse revision timestamp: %w", err)
		}
		out = append(out, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}

	return out, nil
}

// Seed inserts the record only when no row with its identifier exists.
// Used at startup so a fresh database has something to edit.
func (s *SQLiteStore) Seed(ctx context.Context, rec domain.Record) error {
	now := s.clock.Now().UTC().Format(sqliteTimeLayout)

	const q = `INSERT OR IGNORE INTO countries (uid, name, code, updated_at) VALUES (?, ?, ?, ?)`
	if _, err := s.db.ExecContext(ctx, q, rec.UID, rec.Name, rec.Code, now); err != nil {
		return fmt.Errorf("seed record: %w", err)
	}
	return nil
}
