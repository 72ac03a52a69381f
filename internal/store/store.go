package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultDBFile = "mhqmigrate.db"

	// SchemaVersion is the ledger schema this build reads and writes.
	SchemaVersion = "1"
)

// CheckExists verifies if the ledger exists in the given directory.
// Returns true if the ledger exists, false otherwise.
func CheckExists(storePath string) (bool, error) {
	dbPath := GetDBPath(storePath)
	info, err := os.Stat(dbPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check ledger existence: %w", err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("ledger path is a directory, expected file: %s", dbPath)
	}
	return true, nil
}

// GetDBPath returns the full path to the ledger file.
func GetDBPath(storePath string) string {
	return filepath.Join(storePath, DefaultDBFile)
}
