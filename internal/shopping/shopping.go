// Package shopping turns the flattened component stream of a recipe batch
// into a consolidated, human-readable shopping list.
package shopping

import (
	"fmt"
	"math"
	"strings"

	"mealplan/internal/recipe"
)

// Consolidate merges components that reference the same ingredient across the
// batch. Components keep the order their ingredient first appeared in the
// input stream; later occurrences merge into the first.
func Consolidate(components []recipe.Component) ([]recipe.Component, error) {
	combined := make([]recipe.Component, 0, len(components))
	position := make(map[int64]int, len(components))

	for _, component := range components {
		i, seen := position[component.Ingredient.ID]
		if !seen {
			position[component.Ingredient.ID] = len(combined)
			combined = append(combined, component)
			continue
		}
		merged, err := combined[i].Merge(component)
		if err != nil {
			return nil, fmt.Errorf("consolidate ingredient %d: %w", component.Ingredient.ID, err)
		}
		combined[i] = merged
	}
	return combined, nil
}

// FormatList renders consolidated components as the final shopping list, one
// line per component in component order, joined by single newlines with no
// trailing newline.
//
// A component without measurements, or with only zero quantities, renders as
// the bare ingredient name ("to taste"). Otherwise only the first measurement
// is shown, even when several units survived consolidation.
func FormatList(components []recipe.Component) string {
	lines := make([]string, 0, len(components))
	for _, component := range components {
		if allZero(component.Measurements) {
			lines = append(lines, component.Ingredient.DisplayName)
			continue
		}
		first := component.Measurements[0]
		lines = append(lines, fmt.Sprintf("%s: %s %s",
			component.Ingredient.DisplayName,
			formatQuantity(first.Quantity),
			first.Unit.Abbreviation,
		))
	}
	return strings.Join(lines, "\n")
}

func allZero(measurements []recipe.Measurement) bool {
	for _, m := range measurements {
		if m.Quantity != 0 {
			return false
		}
	}
	return true
}

func formatQuantity(value float64) string {
	if _, fract := math.Modf(value); fract == 0 {
		return fmt.Sprintf("%d", int64(value))
	}
	return fmt.Sprintf("%.2f", value)
}
