package services_test

import (
	"context"
	"testing"

	"reviewd/internal/services"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := services.WithRequestID(context.Background(), "req-123")
	id, ok := services.RequestIDFromContext(ctx)
	if !ok || id != "req-123" {
		t.Fatalf("expected req-123, got %q (ok=%v)", id, ok)
	}
}

func TestSessionIDRoundTrip(t *testing.T) {
	ctx := services.WithSessionID(context.Background(), "session-1")
	id, ok := services.SessionIDFromContext(ctx)
	if !ok || id != "session-1" {
		t.Fatalf("expected session-1, got %q (ok=%v)", id, ok)
	}
}

func TestEmptyValuesIgnored(t *testing.T) {
	ctx := services.WithRequestID(context.Background(), "")
	if _, ok := services.RequestIDFromContext(ctx); ok {
		t.Fatal("empty request id should not be stored")
	}
	if _, ok := services.SessionIDFromContext(context.Background()); ok {
		t.Fatal("missing session id should report false")
	}
}
