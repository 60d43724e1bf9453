package prompt_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"mealplan/internal/prompt"
)

func TestAskReturnsFirstValidValue(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("4\n"), &out)

	got, err := prompt.Ask(p, "How many recipes do you want? ", prompt.PositiveInt, "")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if got != 4 {
		t.Fatalf("Ask = %d, want 4", got)
	}
	if !strings.Contains(out.String(), "How many recipes do you want? ") {
		t.Fatalf("expected label in output, got %q", out.String())
	}
}

func TestAskRepromptsUntilValid(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("zero\n-2\n3\n"), &out)

	got, err := prompt.Ask(p, "? ", prompt.PositiveInt, "Please enter a positive number.")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if got != 3 {
		t.Fatalf("Ask = %d, want 3", got)
	}
	if n := strings.Count(out.String(), "Please enter a positive number."); n != 2 {
		t.Fatalf("expected two failure messages, got %d (%q)", n, out.String())
	}
	if n := strings.Count(out.String(), "? "); n != 3 {
		t.Fatalf("expected three prompts, got %d", n)
	}
}

func TestAskUsesDefaultFailureMessage(t *testing.T) {
	var out bytes.Buffer
	p := prompt.New(strings.NewReader("nope\n1\n"), &out)

	if _, err := prompt.Ask(p, "", prompt.PositiveInt, ""); err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	if !strings.Contains(out.String(), prompt.DefaultFailureMessage) {
		t.Fatalf("expected default failure message, got %q", out.String())
	}
}

func TestAskSurfacesEOF(t *testing.T) {
	p := prompt.New(strings.NewReader(""), io.Discard)
	_, err := prompt.Ask(p, "? ", prompt.PositiveInt, "")
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestPositiveInt(t *testing.T) {
	if _, err := prompt.PositiveInt("0"); err == nil {
		t.Fatal("expected error for zero")
	}
	if _, err := prompt.PositiveInt("-1"); err == nil {
		t.Fatal("expected error for negative")
	}
	if v, err := prompt.PositiveInt("12"); err != nil || v != 12 {
		t.Fatalf("PositiveInt(12) = %d, %v", v, err)
	}
}
