package review_test

import (
	"testing"

	"reviewd/internal/review"
)

func TestFingerprintDeterministic(t *testing.T) {
	first := review.Fingerprint("print(1)", "python")
	second := review.Fingerprint("print(1)", "python")
	if first != second {
		t.Fatalf("expected identical fingerprints, got %s and %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64 hex chars, got %d", len(first))
	}
}

func TestFingerprintWhitespaceSensitive(t *testing.T) {
	base := review.Fingerprint("print(1)", "python")
	padded := review.Fingerprint("print(1) ", "python")
	if base == padded {
		t.Fatal("trailing whitespace should change the fingerprint")
	}
}

func TestFingerprintLanguageSensitive(t *testing.T) {
	python := review.Fingerprint("x = 1", "python")
	ruby := review.Fingerprint("x = 1", "ruby")
	if python == ruby {
		t.Fatal("language tag should change the fingerprint")
	}
}
