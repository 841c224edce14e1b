package settings

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Well-known settings keys.
const (
	KeyLoggedIn        = "logged_in"
	KeyRegisteredUsers = "registered_users"
	KeyBlockedUsers    = "blocked_usernames"
	KeyWalletBalance   = "wallet_balance"
)

// Has reports whether a value exists for key.
func (db *DB) Has(key string) (bool, error) {
	var one int
	err := db.QueryRow(`SELECT 1 FROM settings WHERE key = ?`, key).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes a key. Missing keys are a no-op.
func (db *DB) Delete(key string) error {
	_, err := db.Exec(`DELETE FROM settings WHERE key = ?`, key)
	return err
}

// Bool returns the stored bool for key, or false when absent.
func (db *DB) Bool(key string) (bool, error) {
	var v bool
	_, err := db.get(key, &v)
	return v, err
}

// SetBool stores a bool under key.
func (db *DB) SetBool(key string, v bool) error {
	return db.set(key, v)
}

// Int returns the stored int for key, or zero when absent.
func (db *DB) Int(key string) (int, error) {
	var v int
	_, err := db.get(key, &v)
	return v, err
}

// SetInt stores an int under key.
func (db *DB) SetInt(key string, v int) error {
	return db.set(key, v)
}

// StringMap returns the stored string map for key, or an empty map when absent.
func (db *DB) StringMap(key string) (map[string]string, error) {
	v := make(map[string]string)
	if _, err := db.get(key, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// SetStringMap stores a string map under key.
func (db *DB) SetStringMap(key string, v map[string]string) error {
	return db.set(key, v)
}

// StringSlice returns the stored string slice for key, or nil when absent.
func (db *DB) StringSlice(key string) ([]string, error) {
	var v []string
	if _, err := db.get(key, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// SetStringSlice stores a string slice under key.
func (db *DB) SetStringSlice(key string, v []string) error {
	return db.set(key, v)
}

// get scans the JSON value for key into out. Returns false when absent.
func (db *DB) get(key string, out any) (bool, error) {
	var raw string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("decode setting %s: %w", key, err)
	}
	return true, nil
}

// set upserts the JSON encoding of v under key.
func (db *DB) set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode setting %s: %w", key, err)
	}
	_, err = db.Exec(`
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UnixMilli())
	return err
}
