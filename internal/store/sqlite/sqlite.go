package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/maloquacious/mhqmigrate/internal/store"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using modernc.org/sqlite.
type SQLiteStore struct {
	dbPath         string
	db             *sql.DB
	expectedSchema string
}

var _ store.Store = (*SQLiteStore)(nil)

// New creates a new SQLiteStore.
func New(dbPath string, expectedSchema string) *SQLiteStore {
	return &SQLiteStore{
		dbPath:         dbPath,
		expectedSchema: expectedSchema,
	}
}

// Open opens the SQLite database with safe defaults.
func (s *SQLiteStore) Open() error {
	db, err := sql.Open("sqlite", s.dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	s.db = db
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InitSchema creates the ledger tables and records version.
// Running it again with the same version is a no-op.
func (s *SQLiteStore) InitSchema(version string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.Exec(initialSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	_, err = tx.Exec(`INSERT OR IGNORE INTO schema_migrations (version, applied_at) VALUES (?, strftime('%s', 'now'))`, version)
	if err != nil {
		return fmt.Errorf("failed to insert schema version: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CheckState returns the current state of the ledger.
func (s *SQLiteStore) CheckState() (store.StoreState, error) {
	if s.db == nil {
		return store.StateMissing, fmt.Errorf("database not opened")
	}

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name IN ('schema_migrations', 'applied_rules')`).Scan(&count)
	if err != nil {
		return store.StateUninitialized, fmt.Errorf("failed to check ledger tables: %w", err)
	}

	if count < 2 {
		return store.StateUninitialized, nil
	}

	version, err := s.GetSchemaVersion()
	if err != nil {
		return store.StateUninitialized, fmt.Errorf("failed to get schema version: %w", err)
	}

	if version != s.expectedSchema {
		return store.StateVersionMismatch, nil
	}

	return store.StateReady, nil
}

// GetSchemaVersion returns the current schema version from the database.
func (s *SQLiteStore) GetSchemaVersion() (string, error) {
	if s.db == nil {
		return "", fmt.Errorf("database not opened")
	}

	var version string
	err := s.db.QueryRow(`SELECT version FROM schema_migrations ORDER BY applied_at DESC, rowid DESC LIMIT 1`).Scan(&version)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query schema version: %w", err)
	}

	return version, nil
}

// IsApplied reports whether rule was already applied to campaign.
func (s *SQLiteStore) IsApplied(campaign, rule string) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("database not opened")
	}

	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM applied_rules WHERE campaign = ? AND rule = ?`, campaign, rule).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query applied rule %q: %w", rule, err)
	}
	return count > 0, nil
}

// MarkApplied records rule as applied to campaign. A rule already recorded
// for the campaign keeps its original entry.
func (s *SQLiteStore) MarkApplied(campaign, rule, fromVersion string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	_, err := s.db.Exec(`INSERT OR IGNORE INTO applied_rules (campaign, rule, from_version, applied_at) VALUES (?, ?, ?, ?)`,
		campaign, rule, fromVersion, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record applied rule %q: %w", rule, err)
	}
	return nil
}

// Applied lists the rules applied to campaign, oldest first.
func (s *SQLiteStore) Applied(campaign string) ([]store.Entry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.Query(`SELECT rule, from_version, applied_at FROM applied_rules WHERE campaign = ? ORDER BY applied_at, rowid`, campaign)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied rules: %w", err)
	}
	defer rows.Close()

	var entries []store.Entry
	for rows.Next() {
		e := store.Entry{Campaign: campaign}
		var appliedAt int64
		if err := rows.Scan(&e.Rule, &e.FromVersion, &appliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan applied rule: %w", err)
		}
		e.AppliedAt = time.Unix(appliedAt, 0).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applied rules: %w", err)
	}
	return entries, nil
}
