package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"reviewd/internal/dispatch"
	"reviewd/internal/store"
)

func writeSourceFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write source file: %v", err)
	}
	return path
}

func TestReviewCommandSubmitsFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeSourceFile(t, "hello.py", "print(1)\n")

	out, err := runCLI(t, env, "review", path)
	if err != nil {
		t.Fatalf("review: %v\n%s", err, out)
	}
	var resp dispatch.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode response: %v\n%s", err, out)
	}
	if resp.Language != "python" {
		t.Fatalf("expected language inferred as python, got %q", resp.Language)
	}
	if resp.Cached {
		t.Fatal("first submission should not be cached")
	}

	out, err = runCLI(t, env, "review", path)
	if err != nil {
		t.Fatalf("second review: %v\n%s", err, out)
	}
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode second response: %v", err)
	}
	if !resp.Cached {
		t.Fatal("resubmission should be served from cache")
	}
	if env.stub.Calls() != 1 {
		t.Fatalf("expected one model call, got %d", env.stub.Calls())
	}
}

func TestReviewCommandLanguageFlagOverridesExtension(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeSourceFile(t, "script.py", "puts 1\n")

	out, err := runCLI(t, env, "review", path, "--language", "ruby")
	if err != nil {
		t.Fatalf("review: %v\n%s", err, out)
	}
	var resp dispatch.Response
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Language != "ruby" {
		t.Fatalf("expected ruby, got %q", resp.Language)
	}
}

func TestReviewCommandUnknownExtension(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeSourceFile(t, "notes.xyz", "hello\n")

	out, err := runCLI(t, env, "review", path)
	if err == nil {
		t.Fatalf("expected error for unknown extension, got:\n%s", out)
	}
	if env.stub.Calls() != 0 {
		t.Fatal("nothing should reach the daemon without a language")
	}
}

func TestReviewCommandEmptyFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeSourceFile(t, "empty.py", "  \n")

	if _, err := runCLI(t, env, "review", path); err == nil {
		t.Fatal("expected error for empty file")
	}
}

func TestHistoryAndShowCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeSourceFile(t, "hello.go", "package main\n")

	if out, err := runCLI(t, env, "review", path); err != nil {
		t.Fatalf("review: %v\n%s", err, out)
	}

	out, err := runCLI(t, env, "history")
	if err != nil {
		t.Fatalf("history: %v\n%s", err, out)
	}
	var records []store.HistoryRecord
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("decode history: %v\n%s", err, out)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Code != "" {
		t.Fatal("history listing must omit code")
	}

	out, err = runCLI(t, env, "show", records[0].ID)
	if err != nil {
		t.Fatalf("show: %v\n%s", err, out)
	}
	var record store.HistoryRecord
	if err := json.Unmarshal([]byte(out), &record); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	if record.Code != "package main\n" {
		t.Fatalf("full record should include code, got %q", record.Code)
	}
}

func TestStatsAndStatusCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	path := writeSourceFile(t, "hello.py", "print(1)\n")
	if out, err := runCLI(t, env, "review", path); err != nil {
		t.Fatalf("review: %v\n%s", err, out)
	}

	out, err := runCLI(t, env, "stats")
	if err != nil {
		t.Fatalf("stats: %v\n%s", err, out)
	}
	var stats store.Stats
	if err := json.Unmarshal([]byte(out), &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalReviews != 1 {
		t.Fatalf("expected 1 review, got %d", stats.TotalReviews)
	}

	out, err = runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v\n%s", err, out)
	}
	requireContains(t, out, `"running": true`)
}
