package services_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"reviewd/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalService, "reviewer", "complete", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalService) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"reviewer", "complete", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "dispatch", "review", "history write broke", nil)
	if !errors.Is(err, services.ErrInternal) {
		t.Fatalf("expected default marker, got %v", err)
	}
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := []struct {
		marker   error
		expected int
	}{
		{services.ErrValidation, http.StatusBadRequest},
		{services.ErrNotFound, http.StatusNotFound},
		{services.ErrExternalService, http.StatusBadGateway},
		{services.ErrConfiguration, http.StatusInternalServerError},
		{services.ErrInternal, http.StatusInternalServerError},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		err := services.Wrap(tc.marker, "dispatch", "review", "", nil)
		if status := services.HTTPStatus(err); status != tc.expected {
			t.Fatalf("marker %v: expected %d, got %d", tc.marker, tc.expected, status)
		}
	}
}
