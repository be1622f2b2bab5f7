package nodecfg

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadAppliesValuesFromFile(t *testing.T) {
	path := writeConfig(t, `
[general]
block_time_secs = 5
keys_path = "/tmp/keys"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.BlockTimeSecs != 5 {
		t.Errorf("BlockTimeSecs = %d, want 5", cfg.General.BlockTimeSecs)
	}
	if cfg.General.KeysPath != "/tmp/keys" {
		t.Errorf("KeysPath = %q, want /tmp/keys", cfg.General.KeysPath)
	}
}

func TestLoadAppliesDefaultsForMissingFields(t *testing.T) {
	path := writeConfig(t, `
[general]
keys_path = "/tmp/keys"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.BlockTimeSecs != 12 {
		t.Errorf("BlockTimeSecs = %d, want default 12", cfg.General.BlockTimeSecs)
	}
}

func TestLoadRejectsZeroBlockTime(t *testing.T) {
	path := writeConfig(t, `
[general]
block_time_secs = 0
`)

	if _, err := Load(path); err == nil {
		t.Errorf("Load() with block_time_secs = 0 succeeded, want an error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("Load() on a missing file succeeded, want an error")
	}
}
