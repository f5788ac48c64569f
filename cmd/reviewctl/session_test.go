package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateSessionIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "session")

	first, err := loadOrCreateSession(path)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if first == "" {
		t.Fatal("expected a session id")
	}

	second, err := loadOrCreateSession(path)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if second != first {
		t.Fatalf("session id changed between invocations: %q vs %q", first, second)
	}
}

func TestLoadOrCreateSessionRewritesEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session")
	if err := os.WriteFile(path, []byte("  \n"), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	id, err := loadOrCreateSession(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if id == "" {
		t.Fatal("expected a freshly minted session id")
	}
}
