package store

import "time"

// StoreState represents the initialization state of the migration ledger.
type StoreState int

const (
	StateMissing         StoreState = iota // File doesn't exist
	StateUninitialized                     // File exists but no schema
	StateVersionMismatch                   // Schema exists but wrong version
	StateReady                             // Initialized and correct version
)

func (s StoreState) String() string {
	switch s {
	case StateMissing:
		return "missing"
	case StateUninitialized:
		return "uninitialized"
	case StateVersionMismatch:
		return "version mismatch"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// Entry records one option migration rule applied to a campaign.
type Entry struct {
	Campaign    string
	Rule        string
	FromVersion string
	AppliedAt   time.Time
}

// Store defines the migration ledger contract.
// Implementations must be safe for concurrent use.
type Store interface {
	// Open opens the ledger connection
	Open() error

	// Close closes the ledger connection
	Close() error

	// InitSchema creates the ledger tables and records the schema version
	InitSchema(version string) error

	// CheckState returns the current state of the ledger
	CheckState() (StoreState, error)

	// GetSchemaVersion returns the current schema version from the database
	GetSchemaVersion() (string, error)

	// IsApplied reports whether rule was already applied to campaign
	IsApplied(campaign, rule string) (bool, error)

	// MarkApplied records that rule was applied to campaign, whose save
	// was written by fromVersion
	MarkApplied(campaign, rule, fromVersion string) error

	// Applied lists the rules applied to campaign, oldest first
	Applied(campaign string) ([]Entry, error)
}
