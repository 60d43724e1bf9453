// Package config loads, normalizes, and validates mealplan configuration
// from a TOML file, with environment overrides for secrets.
package config
