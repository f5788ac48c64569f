package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"reviewd/internal/daemon"
	"reviewd/internal/dispatch"
	"reviewd/internal/testsupport"
)

type cliTestEnv struct {
	serverURL string
	stub      *testsupport.StubReviewer
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	stub := &testsupport.StubReviewer{}
	disp := dispatch.New(st, stub, cfg, nil)
	d, err := daemon.New(cfg, st, disp, nil)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	if err := d.Start(ctx); err != nil {
		cancel()
		t.Fatalf("daemon.Start: %v", err)
	}
	t.Cleanup(func() {
		d.Stop()
		cancel()
	})

	return &cliTestEnv{
		serverURL: "http://" + d.Addr(),
		stub:      stub,
	}
}

// runCLI executes reviewctl with the given args against the test daemon,
// forcing JSON output and a fixed session so tests never touch user state.
func runCLI(t *testing.T, env *cliTestEnv, args ...string) (string, error) {
	t.Helper()

	full := append([]string{}, args...)
	full = append(full, "--server", env.serverURL, "--session", "cli-test-session", "--json")

	cmd := newRootCommand()
	cmd.SetArgs(full)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}
