package recipe_test

import (
	"encoding/json"
	"errors"
	"testing"

	"mealplan/internal/recipe"
)

func TestMeasurementUnmarshalQuantityShapes(t *testing.T) {
	cases := []struct {
		name string
		json string
		want float64
	}{
		{"decimal string", `{"id":1,"quantity":"3","unit":{"name":"cup","abbreviation":"cup"}}`, 3.0},
		{"fraction glyph", `{"id":2,"quantity":"½","unit":{"name":"cup","abbreviation":"cup"}}`, 0.5},
		{"mixed number", `{"id":3,"quantity":"1 ½","unit":{"name":"cup","abbreviation":"cup"}}`, 1.5},
		{"zero", `{"id":4,"quantity":"0","unit":{"name":"","abbreviation":""}}`, 0.0},
		{"bare number", `{"id":5,"quantity":2.5,"unit":{"name":"cup","abbreviation":"cup"}}`, 2.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m recipe.Measurement
			if err := json.Unmarshal([]byte(tc.json), &m); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}
			if m.Quantity != tc.want {
				t.Fatalf("quantity = %v, want %v", m.Quantity, tc.want)
			}
		})
	}
}

func TestMeasurementUnmarshalRejectsMalformedQuantity(t *testing.T) {
	var m recipe.Measurement
	err := json.Unmarshal([]byte(`{"id":1,"quantity":"a ½ b","unit":{"name":"cup","abbreviation":"cup"}}`), &m)
	if err == nil {
		t.Fatal("expected error for malformed quantity token")
	}
}

func measurement(id int64, qty float64, unit string) recipe.Measurement {
	return recipe.Measurement{ID: id, Quantity: qty, Unit: recipe.Unit{Name: unit, Abbreviation: unit}}
}

func TestMergeSumsCommonUnits(t *testing.T) {
	left := recipe.Component{
		Ingredient:   recipe.Ingredient{ID: 42, DisplayName: "flour"},
		Measurements: []recipe.Measurement{measurement(1, 1.0, "cup")},
	}
	right := recipe.Component{
		Ingredient:   recipe.Ingredient{ID: 42, DisplayName: "flour"},
		Measurements: []recipe.Measurement{measurement(9, 1.0, "cup")},
	}

	merged, err := left.Merge(right)
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if len(merged.Measurements) != 1 {
		t.Fatalf("expected one merged measurement, got %d", len(merged.Measurements))
	}
	got := merged.Measurements[0]
	if got.Quantity != 2.0 {
		t.Fatalf("merged quantity = %v, want 2", got.Quantity)
	}
	if got.ID != 1 {
		t.Fatalf("merged measurement keeps left-hand ID, got %d", got.ID)
	}
}

func TestMergeDropsDifferingUnits(t *testing.T) {
	left := recipe.Component{
		Ingredient:   recipe.Ingredient{ID: 7},
		Measurements: []recipe.Measurement{measurement(1, 2.0, "cup"), measurement(2, 480, "milliliter")},
	}
	right := recipe.Component{
		Ingredient:   recipe.Ingredient{ID: 7},
		Measurements: []recipe.Measurement{measurement(3, 1.0, "cup")},
	}

	merged, err := left.Merge(right)
	if err != nil {
		t.Fatalf("Merge returned error: %v", err)
	}
	if len(merged.Measurements) != 1 {
		t.Fatalf("expected only the common unit to survive, got %d measurements", len(merged.Measurements))
	}
	if merged.Measurements[0].Unit.Name != "cup" || merged.Measurements[0].Quantity != 3.0 {
		t.Fatalf("unexpected surviving measurement: %+v", merged.Measurements[0])
	}
}

func TestMergeRejectsDifferentIngredients(t *testing.T) {
	left := recipe.Component{Ingredient: recipe.Ingredient{ID: 1}}
	right := recipe.Component{Ingredient: recipe.Ingredient{ID: 2}}
	if _, err := left.Merge(right); !errors.Is(err, recipe.ErrIncompatibleComponent) {
		t.Fatalf("expected ErrIncompatibleComponent, got %v", err)
	}
}

func TestFlattenPreservesOrder(t *testing.T) {
	recipes := []recipe.Recipe{
		{
			ID: 1,
			Sections: []recipe.Section{
				{Components: []recipe.Component{{Ingredient: recipe.Ingredient{ID: 10}}, {Ingredient: recipe.Ingredient{ID: 11}}}},
				{Components: []recipe.Component{{Ingredient: recipe.Ingredient{ID: 12}}}},
			},
		},
		{
			ID: 2,
			Sections: []recipe.Section{
				{Components: []recipe.Component{{Ingredient: recipe.Ingredient{ID: 13}}}},
			},
		},
	}

	flat := recipe.Flatten(recipes)
	want := []int64{10, 11, 12, 13}
	if len(flat) != len(want) {
		t.Fatalf("expected %d components, got %d", len(want), len(flat))
	}
	for i, id := range want {
		if flat[i].Ingredient.ID != id {
			t.Fatalf("component %d has ingredient %d, want %d", i, flat[i].Ingredient.ID, id)
		}
	}
}

func TestPublicURL(t *testing.T) {
	r := recipe.Recipe{Slug: "garlic-butter-shrimp"}
	want := "https://tasty.co/recipe/garlic-butter-shrimp"
	if got := r.PublicURL(); got != want {
		t.Fatalf("PublicURL = %q, want %q", got, want)
	}
}
