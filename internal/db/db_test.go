package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hpungsan/toolshed/internal/config"
)

func TestInit(t *testing.T) {
	tmpDir := t.TempDir()

	database, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	if _, err := os.Stat(Path(tmpDir)); err != nil {
		t.Errorf("database file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(tmpDir, "exports")); err != nil {
		t.Errorf("exports directory missing: %v", err)
	}

	version, err := GetUserVersion(database)
	if err != nil {
		t.Fatalf("GetUserVersion failed: %v", err)
	}
	if version != CurrentSchemaVersion {
		t.Errorf("user_version = %d, want %d", version, CurrentSchemaVersion)
	}
}

func TestInitIdempotent(t *testing.T) {
	tmpDir := t.TempDir()

	first, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	first.Close()

	second, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("second Init failed: %v", err)
	}
	defer second.Close()

	var count int
	err = second.QueryRow("SELECT COUNT(*) FROM tools").Scan(&count)
	if err != nil {
		t.Fatalf("tools table missing after re-init: %v", err)
	}
}

func TestConfigurePool(t *testing.T) {
	tmpDir := t.TempDir()

	database, err := Init(tmpDir)
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer database.Close()

	// nil config is a no-op
	ConfigurePool(database, nil)

	ConfigurePool(database, &config.Config{DBMaxOpenConns: 1, DBMaxIdleConns: 1})
	if got := database.Stats().MaxOpenConnections; got != 1 {
		t.Errorf("MaxOpenConnections = %d, want 1", got)
	}
}
