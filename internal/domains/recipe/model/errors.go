package model

import "errors"

var (
	// ErrRecipeNotFound means no recipe exists with the given ID or slug.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrNoIngredients means the available-ingredients list was empty after
	// discarding whitespace-only entries. Client error, not a server fault.
	ErrNoIngredients = errors.New("available ingredients list must not be empty")

	// ErrInvalidSort means sort_by referenced a column outside the whitelist.
	ErrInvalidSort = errors.New("invalid sort field")
)
