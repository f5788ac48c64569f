package daemon

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"reviewd/internal/dispatch"
	"reviewd/internal/store"
	"reviewd/internal/testsupport"
)

func TestDaemonStartServesAndStops(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	disp := dispatch.New(st, &testsupport.StubReviewer{}, cfg, nil)
	d, err := New(cfg, st, disp, nil)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := d.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer d.Stop()

	addr := d.Addr()
	if addr == "" {
		t.Fatal("expected a bound address after Start")
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + addr + "/api/status")
	if err != nil {
		t.Fatalf("status request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var status Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		t.Fatalf("decode status: %v", err)
	}
	if !status.Running {
		t.Fatal("status should report running")
	}

	d.Stop()
	if _, err := client.Get("http://" + addr + "/api/status"); err == nil {
		t.Fatal("expected request to fail after Stop")
	}
}

func TestDaemonSingleInstance(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	disp := dispatch.New(st, &testsupport.StubReviewer{}, cfg, nil)
	first, err := New(cfg, st, disp, nil)
	if err != nil {
		t.Fatalf("daemon.New: %v", err)
	}

	ctx := context.Background()
	if err := first.Start(ctx); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer first.Stop()

	secondStore, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open second store: %v", err)
	}
	defer secondStore.Close()
	second, err := New(cfg, secondStore, dispatch.New(secondStore, &testsupport.StubReviewer{}, cfg, nil), nil)
	if err != nil {
		t.Fatalf("second daemon.New: %v", err)
	}
	if err := second.Start(ctx); err == nil {
		second.Stop()
		t.Fatal("second instance must not start while the lock is held")
	}

	first.Stop()
	if err := second.Start(ctx); err != nil {
		t.Fatalf("second instance should start after the first stops: %v", err)
	}
	second.Stop()
}
