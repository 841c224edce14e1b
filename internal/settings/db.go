// Package settings is the key-value settings storage: the logged-in flag,
// the registered-users directory, the blocked-username list and the coin
// balance live here, outside the per-concern JSON files.
package settings

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite connection for the app-owned settings.db.
type DB struct {
	*sql.DB
}

// Open creates a new SQLite connection with WAL mode and busy timeout.
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open settings db: %w", err)
	}
	// Verify connection.
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping settings db: %w", err)
	}
	return &DB{db}, nil
}
