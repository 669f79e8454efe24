package services_test

import (
	"errors"
	"testing"

	"tickermatch/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrEmbedding, "scoring", "embed batch", "provider unavailable", base)
	if !errors.Is(err, services.ErrEmbedding) {
		t.Fatalf("expected ErrEmbedding marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped cause to survive, got %v", err)
	}
	want := "embedding error: scoring: embed batch: provider unavailable: boom"
	if err.Error() != want {
		t.Fatalf("unexpected message: got %q want %q", err.Error(), want)
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrValidation, "input", "check sponsors", "empty name", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected ErrValidation marker, got %v", err)
	}
	want := "validation error: input: check sponsors: empty name"
	if err.Error() != want {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestWrapNilMarkerDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected ErrTransient fallback, got %v", err)
	}
	if err.Error() != "transient failure: service failure" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}
