package shopping_test

import (
	"errors"
	"strings"
	"testing"

	"mealplan/internal/recipe"
	"mealplan/internal/shopping"
)

func component(ingredientID int64, name string, measurements ...recipe.Measurement) recipe.Component {
	return recipe.Component{
		Ingredient:   recipe.Ingredient{ID: ingredientID, DisplayName: name},
		Measurements: measurements,
	}
}

func cup(qty float64) recipe.Measurement {
	return recipe.Measurement{Quantity: qty, Unit: recipe.Unit{Name: "cup", Abbreviation: "cup"}}
}

func TestConsolidateMergesSameIngredient(t *testing.T) {
	combined, err := shopping.Consolidate([]recipe.Component{
		component(42, "flour", cup(1)),
		component(42, "flour", cup(1)),
	})
	if err != nil {
		t.Fatalf("Consolidate returned error: %v", err)
	}
	if len(combined) != 1 {
		t.Fatalf("expected one component, got %d", len(combined))
	}
	if got := combined[0].Measurements[0].Quantity; got != 2.0 {
		t.Fatalf("merged quantity = %v, want 2", got)
	}
}

func TestConsolidatePreservesFirstSeenOrder(t *testing.T) {
	combined, err := shopping.Consolidate([]recipe.Component{
		component(3, "salt"),
		component(1, "flour", cup(1)),
		component(3, "salt"),
		component(2, "butter", cup(0.5)),
		component(1, "flour", cup(2)),
	})
	if err != nil {
		t.Fatalf("Consolidate returned error: %v", err)
	}
	want := []int64{3, 1, 2}
	if len(combined) != len(want) {
		t.Fatalf("expected %d components, got %d", len(want), len(combined))
	}
	for i, id := range want {
		if combined[i].Ingredient.ID != id {
			t.Fatalf("component %d is ingredient %d, want %d", i, combined[i].Ingredient.ID, id)
		}
	}
	if got := combined[1].Measurements[0].Quantity; got != 3.0 {
		t.Fatalf("flour quantity = %v, want 3", got)
	}
}

func TestConsolidateEmpty(t *testing.T) {
	combined, err := shopping.Consolidate(nil)
	if err != nil {
		t.Fatalf("Consolidate returned error: %v", err)
	}
	if len(combined) != 0 {
		t.Fatalf("expected empty result, got %d components", len(combined))
	}
}

func TestFormatList(t *testing.T) {
	cases := []struct {
		name      string
		component recipe.Component
		want      string
	}{
		{"whole quantity", component(1, "flour", cup(2.0)), "flour: 2 cup"},
		{"fractional quantity", component(1, "flour", cup(1.5)), "flour: 1.50 cup"},
		{"no measurements", component(1, "flour"), "flour"},
		{"all zero quantities", component(1, "flour", cup(0), cup(0)), "flour"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := shopping.FormatList([]recipe.Component{tc.component}); got != tc.want {
				t.Fatalf("FormatList = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatListShowsOnlyFirstMeasurement(t *testing.T) {
	c := component(1, "milk",
		recipe.Measurement{Quantity: 2, Unit: recipe.Unit{Name: "cup", Abbreviation: "cup"}},
		recipe.Measurement{Quantity: 480, Unit: recipe.Unit{Name: "milliliter", Abbreviation: "mL"}},
	)
	if got := shopping.FormatList([]recipe.Component{c}); got != "milk: 2 cup" {
		t.Fatalf("FormatList = %q, want %q", got, "milk: 2 cup")
	}
}

func TestFormatListJoinsWithNewlines(t *testing.T) {
	got := shopping.FormatList([]recipe.Component{
		component(1, "flour", cup(2)),
		component(2, "salt"),
	})
	want := "flour: 2 cup\nsalt"
	if got != want {
		t.Fatalf("FormatList = %q, want %q", got, want)
	}
	if strings.HasSuffix(got, "\n") {
		t.Fatal("FormatList must not append a trailing newline")
	}
}

func TestConsolidateAndFormatFractionGlyphQuantity(t *testing.T) {
	// A "½" quantity token decodes to 0.5 and renders with two decimals.
	combined, err := shopping.Consolidate([]recipe.Component{
		component(9, "heavy cream", recipe.Measurement{Quantity: 0.5, Unit: recipe.Unit{Name: "cup", Abbreviation: "cup"}}),
	})
	if err != nil {
		t.Fatalf("Consolidate returned error: %v", err)
	}
	if got := shopping.FormatList(combined); got != "heavy cream: 0.50 cup" {
		t.Fatalf("FormatList = %q, want %q", got, "heavy cream: 0.50 cup")
	}
}

func TestConsolidateSurfacesMergeViolation(t *testing.T) {
	// Two entries under one ingredient ID never disagree on identity in
	// practice; a direct cross-ingredient merge must still fail loudly.
	left := component(1, "flour", cup(1))
	right := component(2, "sugar", cup(1))
	if _, err := left.Merge(right); !errors.Is(err, recipe.ErrIncompatibleComponent) {
		t.Fatalf("expected ErrIncompatibleComponent, got %v", err)
	}
}
