package home

import (
	"os"
	"path/filepath"
)

// BaseDir returns ~/.basking, or the override if non-empty.
func BaseDir(override string) string {
	if override != "" {
		return override
	}
	dir, _ := os.UserHomeDir()
	return filepath.Join(dir, ".basking")
}

// DataDir returns the directory holding the JSON state files and media blobs.
// The layout is flat: one file per concern plus loose media files, all siblings.
func DataDir(base string) string {
	return filepath.Join(base, "data")
}

// SettingsDBPath returns the key-value settings database path.
func SettingsDBPath(base string) string {
	return filepath.Join(base, "settings.db")
}

// LogDir returns the log directory.
func LogDir(base string) string {
	return filepath.Join(base, "logs")
}

// LogPath returns the CLI log file path.
func LogPath(base string) string {
	return filepath.Join(LogDir(base), "basking.log")
}

// EventsPath returns the event journal file path.
func EventsPath(base string) string {
	return filepath.Join(LogDir(base), "events.jsonl")
}

// ConfigPath returns the config file path.
func ConfigPath(base string) string {
	return filepath.Join(base, "config.toml")
}

// LockDir returns the directory guarded by the single-writer lock.
func LockDir(base string) string {
	return base
}

// EnsureDirs creates the home directory tree with owner-only permissions.
func EnsureDirs(base string) error {
	dirs := []string{
		base,
		DataDir(base),
		LogDir(base),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(d, 0700); err != nil {
			return err
		}
	}
	return nil
}
