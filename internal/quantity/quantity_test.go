package quantity_test

import (
	"errors"
	"math"
	"testing"

	"mealplan/internal/quantity"
)

func TestParseFractionGlyphs(t *testing.T) {
	cases := []struct {
		glyph string
		want  float64
	}{
		{"¼", 0.25},
		{"½", 0.5},
		{"¾", 0.75},
		{"⅐", 1.0 / 7.0},
		{"⅑", 1.0 / 9.0},
		{"⅒", 0.1},
		{"⅓", 1.0 / 3.0},
		{"⅔", 2.0 / 3.0},
		{"⅕", 0.2},
		{"⅖", 0.4},
		{"⅗", 0.6},
		{"⅘", 0.8},
		{"⅙", 1.0 / 6.0},
		{"⅚", 5.0 / 6.0},
		{"⅛", 0.125},
		{"⅜", 0.375},
		{"⅝", 0.625},
		{"⅞", 0.875},
		{"⅟", 1.0},
		{"↉", 0.0},
	}
	for _, tc := range cases {
		got, err := quantity.Parse(tc.glyph)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.glyph, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.glyph, got, tc.want)
		}
	}
}

func TestParseDecimals(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"3", 3.0},
		{"0", 0.0},
		{"0.5", 0.5},
		{"12.25", 12.25},
	}
	for _, tc := range cases {
		got, err := quantity.Parse(tc.input)
		if err != nil {
			t.Fatalf("Parse(%q) returned error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseMixedNumbers(t *testing.T) {
	got, err := quantity.Parse("1 ½")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got != 1.5 {
		t.Fatalf("Parse(\"1 ½\") = %v, want 1.5", got)
	}

	got, err = quantity.Parse("2 ⅓")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if math.Abs(got-(2.0+1.0/3.0)) > 1e-12 {
		t.Fatalf("Parse(\"2 ⅓\") = %v, want %v", got, 2.0+1.0/3.0)
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	inputs := []string{
		"1 ½ cup",
		"one",
		"⅟½",
		"½ ½ ½",
		"x ½",
		"1 x",
		"",
	}
	for _, input := range inputs {
		_, err := quantity.Parse(input)
		if err == nil {
			t.Fatalf("Parse(%q) succeeded, want error", input)
		}
		var parseErr *quantity.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("Parse(%q) returned %T, want *ParseError", input, err)
		}
		if parseErr.Token != input {
			t.Fatalf("ParseError token = %q, want %q", parseErr.Token, input)
		}
	}
}
