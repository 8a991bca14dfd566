package service

import (
	"sort"
	"strings"

	"tastebite-backend/internal/domains/recipe/model"
)

// Two comparison semantics live in this file and must stay separate:
//
//   - ingredientSatisfied: loose substring containment, used to partition
//     recipes into strict and partial matches ("chicken" satisfies the
//     token "chicken breast").
//   - exactTokenOverlap: strict token equality, used only as a secondary
//     display ordering for the pantry-browsing flow.
//
// Collapsing them into one function changes the rankings silently, so don't.

// NormalizeAvailable lowercases and trims the user-supplied pantry entries,
// discarding whitespace-only items.
func NormalizeAvailable(available []string) []string {
	normalized := make([]string, 0, len(available))
	for _, item := range available {
		item = strings.ToLower(strings.TrimSpace(item))
		if item != "" {
			normalized = append(normalized, item)
		}
	}
	return normalized
}

// TokenizeIngredients splits a recipe's raw comma-separated ingredient field
// into normalized tokens. The field is uncontrolled free text; empty
// segments are dropped, so a malformed field yields no tokens.
func TokenizeIngredients(raw string) []string {
	parts := strings.Split(raw, ",")
	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.ToLower(strings.TrimSpace(part))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// ingredientSatisfied reports whether any available entry appears inside the
// recipe token. The containment is deliberately asymmetric: the token
// contains the pantry text, never the other way round.
func ingredientSatisfied(token string, availNorm []string) bool {
	for _, avail := range availNorm {
		if strings.Contains(token, avail) {
			return true
		}
	}
	return false
}

// partitionByAvailability splits recipes into strict matches (every token
// satisfied) and partial matches (at least one token satisfied, not already
// strict), preserving the original recipe order within each group. A recipe
// whose ingredient field produces no tokens lands in neither group; an
// empty token list does not count as vacuously strict.
func partitionByAvailability(availNorm []string, recipes []model.Recipe) (strict, partial []model.Recipe) {
	for _, recipe := range recipes {
		tokens := TokenizeIngredients(recipe.RecipeIngredients)
		if len(tokens) == 0 {
			continue
		}

		satisfied := 0
		for _, token := range tokens {
			if ingredientSatisfied(token, availNorm) {
				satisfied++
			}
		}

		switch {
		case satisfied == len(tokens):
			strict = append(strict, recipe)
		case satisfied > 0:
			partial = append(partial, recipe)
		}
	}
	return strict, partial
}

// MatchStats summarizes a matching pass for logging.
type MatchStats struct {
	Strict  int
	Partial int
}

// FindMatchingRecipes partitions all recipes against the user's available
// ingredients and returns strict matches followed by partial matches, each
// group in original order and no recipe in both. Returns ErrNoIngredients
// when nothing usable survives normalization.
func FindMatchingRecipes(available []string, recipes []model.Recipe) ([]model.Recipe, MatchStats, error) {
	availNorm := NormalizeAvailable(available)
	if len(availNorm) == 0 {
		return nil, MatchStats{}, model.ErrNoIngredients
	}

	strict, partial := partitionByAvailability(availNorm, recipes)
	stats := MatchStats{Strict: len(strict), Partial: len(partial)}

	combined := make([]model.Recipe, 0, len(strict)+len(partial))
	combined = append(combined, strict...)
	combined = append(combined, partial...)
	return combined, stats, nil
}

// exactTokenOverlap counts recipe tokens exactly equal to an available
// entry. Substring containment plays no part here.
func exactTokenOverlap(raw string, availSet map[string]struct{}) int {
	count := 0
	for _, token := range TokenizeIngredients(raw) {
		if _, ok := availSet[token]; ok {
			count++
		}
	}
	return count
}

// RankByExactOverlap orders recipes by descending count of exactly-equal
// ingredient tokens. The sort is stable so ties keep their incoming order.
// Input is not mutated.
func RankByExactOverlap(recipes []model.Recipe, available []string) []model.Recipe {
	availSet := make(map[string]struct{})
	for _, item := range NormalizeAvailable(available) {
		availSet[item] = struct{}{}
	}

	ranked := make([]model.Recipe, len(recipes))
	copy(ranked, recipes)

	sort.SliceStable(ranked, func(i, j int) bool {
		return exactTokenOverlap(ranked[i].RecipeIngredients, availSet) >
			exactTokenOverlap(ranked[j].RecipeIngredients, availSet)
	})
	return ranked
}
