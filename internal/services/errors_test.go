package services_test

import (
	"errors"
	"strings"
	"testing"

	"mealplan/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	cause := errors.New("connection refused")
	err := services.Wrap(services.ErrTransport, "gather", "fetch recipes", cause)

	if !errors.Is(err, services.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if !strings.Contains(err.Error(), "gather: fetch recipes") {
		t.Fatalf("expected phase detail in message, got %q", err.Error())
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := services.Wrap(services.ErrConfiguration, "gather", "catalog credential", nil)
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", errors.New("boom"))
	if !errors.Is(err, services.ErrPersistence) {
		t.Fatalf("expected default ErrPersistence marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "workflow failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}
