package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	cfg := &Config{DataDir: "/srv/basking", SeedDemoData: false, InitialCoins: 250}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DataDir != "/srv/basking" {
		t.Errorf("DataDir = %q, want %q", loaded.DataDir, "/srv/basking")
	}
	if loaded.SeedDemoData {
		t.Error("SeedDemoData = true, want false")
	}
	if loaded.InitialCoins != 250 {
		t.Errorf("InitialCoins = %d, want 250", loaded.InitialCoins)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoadOrDefaultMissing(t *testing.T) {
	cfg := LoadOrDefault("/nonexistent/config.toml")
	if !cfg.SeedDemoData {
		t.Error("default SeedDemoData = false, want true")
	}
	if cfg.InitialCoins != DefaultCoinBonus {
		t.Errorf("default InitialCoins = %d, want %d", cfg.InitialCoins, DefaultCoinBonus)
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("data_dir = \"/x\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DataDir != "/x" {
		t.Errorf("DataDir = %q, want /x", cfg.DataDir)
	}
	if cfg.InitialCoins != DefaultCoinBonus {
		t.Errorf("InitialCoins = %d, want default %d", cfg.InitialCoins, DefaultCoinBonus)
	}
}

func TestSavePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	if err := Save(path, Default()); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}
