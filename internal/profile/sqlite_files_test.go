package profile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigFromEnvOverridePath(t *testing.T) {
	t.Setenv("ORACLEFED_DB_PATH", "/tmp/oraclefed-custom.db")

	cfg, err := configFromEnv()
	if err != nil {
		t.Fatalf("configFromEnv() unexpected error: %v", err)
	}
	if cfg.Path != "/tmp/oraclefed-custom.db" {
		t.Fatalf("cfg.Path = %q, want %q", cfg.Path, "/tmp/oraclefed-custom.db")
	}
}

func TestHasLocalDBFilesReturnsFalseWhenMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "oraclefed.db")
	exists, err := hasLocalDBFiles(path)
	if err != nil {
		t.Fatalf("hasLocalDBFiles() unexpected error: %v", err)
	}
	if exists {
		t.Fatal("hasLocalDBFiles() = true, want false")
	}
}

func TestHasLocalDBFilesDetectsWalOrShm(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "oraclefed.db")
	if err := os.WriteFile(path+"-wal", []byte("wal"), 0o600); err != nil {
		t.Fatalf("write wal file: %v", err)
	}

	exists, err := hasLocalDBFiles(path)
	if err != nil {
		t.Fatalf("hasLocalDBFiles() unexpected error: %v", err)
	}
	if !exists {
		t.Fatal("hasLocalDBFiles() = false, want true")
	}
}

func TestResetLocalDBFilesRemovesSidecars(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "oraclefed.db")
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.WriteFile(p, []byte("x"), 0o600); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}

	if err := resetLocalDBFiles(path); err != nil {
		t.Fatalf("resetLocalDBFiles() unexpected error: %v", err)
	}
	exists, err := hasLocalDBFiles(path)
	if err != nil {
		t.Fatalf("hasLocalDBFiles() unexpected error: %v", err)
	}
	if exists {
		t.Fatal("db files survived resetLocalDBFiles()")
	}
}

func TestHashPasswordIsSaltSensitive(t *testing.T) {
	t.Parallel()

	if hashPassword("secret", "a") == hashPassword("secret", "b") {
		t.Fatal("same hash for different salts")
	}
	if hashPassword("secret", "a") != hashPassword("secret", "a") {
		t.Fatal("hash is not deterministic")
	}
}
