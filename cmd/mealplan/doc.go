// Command mealplan plans meals from the Tasty recipe catalog. It alternates
// between two durable phases: gather, which scores and selects recipes and
// writes a dated shopping list, and review, which asks for ratings and folds
// them back into per-tag preference scores.
package main
