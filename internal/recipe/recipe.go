// Package recipe defines the catalog data model shared by the planning
// pipeline: recipes, their ingredient components, and measurement arithmetic.
package recipe

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"mealplan/internal/quantity"
)

// PublicDomain is the site recipes are served from; slugs resolve beneath it.
const PublicDomain = "https://tasty.co"

// Unit identifies a measurement unit. Name is canonical and drives unit
// compatibility; Abbreviation is display-only.
type Unit struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

// Measurement is a single stated amount of an ingredient. A zero quantity
// means "unspecified / to taste".
type Measurement struct {
	ID       int64
	Quantity float64
	Unit     Unit
}

// UnmarshalJSON decodes a catalog measurement. The feed states quantities as
// strings that may contain vulgar-fraction glyphs or mixed numbers; a bare
// JSON number is accepted as well. An unparseable quantity token is a decode
// failure, not a skipped entry.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       int64           `json:"id"`
		Quantity json.RawMessage `json:"quantity"`
		Unit     Unit            `json:"unit"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var amount float64
	switch {
	case len(raw.Quantity) == 0:
		amount = 0
	case raw.Quantity[0] == '"':
		var text string
		if err := json.Unmarshal(raw.Quantity, &text); err != nil {
			return err
		}
		parsed, err := quantity.Parse(text)
		if err != nil {
			return fmt.Errorf("measurement quantity: %w", err)
		}
		amount = parsed
	default:
		parsed, err := strconv.ParseFloat(string(raw.Quantity), 64)
		if err != nil {
			return fmt.Errorf("measurement quantity: %w", err)
		}
		amount = parsed
	}

	m.ID = raw.ID
	m.Quantity = amount
	m.Unit = raw.Unit
	return nil
}

// Ingredient identifies a physical ingredient. Identity is the catalog ID:
// two components referencing the same ID name the same ingredient regardless
// of which recipes they came from.
type Ingredient struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_singular"`
}

// Component is one ingredient together with its stated measurements inside a
// single recipe. A recipe may state the same ingredient in several units.
type Component struct {
	Ingredient   Ingredient    `json:"ingredient"`
	Measurements []Measurement `json:"measurements"`
}

// ErrIncompatibleComponent is returned when a merge is attempted across two
// different ingredients. Callers are expected to never do that; hitting this
// is a programming error, not a data condition.
var ErrIncompatibleComponent = errors.New("components must reference the same ingredient to merge")

// Merge combines two components of the same ingredient. Measurement pairs
// whose unit names match are summed, keeping the left-hand measurement's ID
// and unit metadata. Pairs with differing units are dropped; combination is
// only defined for common units.
func (c Component) Merge(other Component) (Component, error) {
	if c.Ingredient.ID != other.Ingredient.ID {
		return Component{}, ErrIncompatibleComponent
	}

	merged := Component{Ingredient: c.Ingredient}
	for _, m := range c.Measurements {
		for _, om := range other.Measurements {
			if m.Unit.Name != om.Unit.Name {
				continue
			}
			merged.Measurements = append(merged.Measurements, Measurement{
				ID:       m.ID,
				Quantity: m.Quantity + om.Quantity,
				Unit:     m.Unit,
			})
		}
	}
	return merged, nil
}

// Section groups the components of one part of a recipe.
type Section struct {
	Components []Component `json:"components"`
}

// Tag is a catalog classification attached to recipes. Preference scores are
// accumulated per tag ID in the store.
type Tag struct {
	ID int64 `json:"id"`
}

// Recipe is a single catalog record.
type Recipe struct {
	ID       int64     `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	Sections []Section `json:"sections"`
	Tags     []Tag     `json:"tags"`
}

// PublicURL returns the public page for the recipe.
func (r Recipe) PublicURL() string {
	return PublicDomain + "/recipe/" + r.Slug
}

// List is the catalog's paginated response envelope.
type List struct {
	Count   int64    `json:"count"`
	Results []Recipe `json:"results"`
}

// Flatten walks recipes in order, then sections, then components, producing
// the component stream the consolidation step consumes.
func Flatten(recipes []Recipe) []Component {
	var components []Component
	for _, r := range recipes {
		for _, section := range r.Sections {
			components = append(components, section.Components...)
		}
	}
	return components
}
