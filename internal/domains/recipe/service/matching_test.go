package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastebite-backend/internal/domains/recipe/model"
)

func recipeWith(id int64, ingredients string) model.Recipe {
	return model.Recipe{RecipeID: id, RecipeIngredients: ingredients}
}

func ids(recipes []model.Recipe) []int64 {
	out := make([]int64, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, r.RecipeID)
	}
	return out
}

func TestNormalizeAvailable(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{"lowercases and trims", []string{" Chicken ", "RICE"}, []string{"chicken", "rice"}},
		{"drops blank entries", []string{"", "  ", "egg"}, []string{"egg"}},
		{"all blank", []string{"", "   "}, []string{}},
		{"empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeAvailable(tt.input))
		})
	}
}

func TestTokenizeIngredients(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"splits and normalizes", "Chicken Breast, White Rice", []string{"chicken breast", "white rice"}},
		{"drops empty segments", "egg,, , flour", []string{"egg", "flour"}},
		{"only separators", ", ,,", []string{}},
		{"empty field", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TokenizeIngredients(tt.input))
		})
	}
}

func TestFindMatchingRecipes(t *testing.T) {
	recipes := []model.Recipe{
		recipeWith(1, "chicken breast, white rice"),
		recipeWith(2, "chicken breast, broccoli"),
		recipeWith(3, "beef, potato"),
		recipeWith(4, "rice noodles"),
	}

	matches, stats, err := FindMatchingRecipes([]string{"chicken", "rice"}, recipes)
	require.NoError(t, err)

	// Recipe 1 is strict (both tokens contain an available entry), recipes
	// 2 and 4 are partial, recipe 3 matches nothing.
	assert.Equal(t, []int64{1, 2, 4}, ids(matches))
	assert.Equal(t, 1, stats.Strict)
	assert.Equal(t, 2, stats.Partial)
}

func TestFindMatchingRecipesOrderPreserved(t *testing.T) {
	recipes := []model.Recipe{
		recipeWith(10, "egg, milk"),
		recipeWith(20, "egg"),
		recipeWith(30, "egg, flour"),
		recipeWith(40, "milk"),
	}

	matches, _, err := FindMatchingRecipes([]string{"egg"}, recipes)
	require.NoError(t, err)

	// Strict group first (20), then partials in their original order.
	assert.Equal(t, []int64{20, 10, 30}, ids(matches))
}

func TestFindMatchingRecipesEmptyAvailable(t *testing.T) {
	recipes := []model.Recipe{recipeWith(1, "egg")}

	for _, input := range [][]string{nil, {}, {"", "   "}} {
		_, _, err := FindMatchingRecipes(input, recipes)
		assert.ErrorIs(t, err, model.ErrNoIngredients)
	}
}

func TestFindMatchingRecipesEmptyTokenListNeverStrict(t *testing.T) {
	recipes := []model.Recipe{
		recipeWith(1, ", ,"),
		recipeWith(2, ""),
	}

	matches, stats, err := FindMatchingRecipes([]string{"egg"}, recipes)
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Zero(t, stats.Strict)
	assert.Zero(t, stats.Partial)
}

func TestFindMatchingRecipesSubstringContainment(t *testing.T) {
	recipes := []model.Recipe{recipeWith(1, "chicken breast")}

	// The available entry is contained in the token.
	matches, _, err := FindMatchingRecipes([]string{"chicken"}, recipes)
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	// The reverse direction does not match.
	matches, _, err = FindMatchingRecipes([]string{"chicken breast fillet"}, recipes)
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindMatchingRecipesNoDuplicates(t *testing.T) {
	// Every token satisfied by multiple entries still yields one result.
	recipes := []model.Recipe{recipeWith(1, "chicken rice")}

	matches, stats, err := FindMatchingRecipes([]string{"chicken", "rice", "chicken rice"}, recipes)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(matches))
	assert.Equal(t, 1, stats.Strict)
	assert.Zero(t, stats.Partial)
}

func TestRankByExactOverlap(t *testing.T) {
	recipes := []model.Recipe{
		recipeWith(1, "chicken breast, rice"), // one exact token: rice
		recipeWith(2, "chicken, rice"),        // two exact tokens
		recipeWith(3, "beef, potato"),         // zero
	}

	ranked := RankByExactOverlap(recipes, []string{"chicken", "rice"})
	assert.Equal(t, []int64{2, 1, 3}, ids(ranked))

	// Input order is untouched.
	assert.Equal(t, []int64{1, 2, 3}, ids(recipes))
}

func TestRankByExactOverlapStableOnTies(t *testing.T) {
	recipes := []model.Recipe{
		recipeWith(1, "egg, milk"),
		recipeWith(2, "egg, flour"),
		recipeWith(3, "egg"),
	}

	ranked := RankByExactOverlap(recipes, []string{"egg"})
	assert.Equal(t, []int64{1, 2, 3}, ids(ranked))
}

func TestRankByExactOverlapIgnoresSubstrings(t *testing.T) {
	recipes := []model.Recipe{
		recipeWith(1, "chicken breast"), // substring only, no exact token
		recipeWith(2, "chicken"),
	}

	ranked := RankByExactOverlap(recipes, []string{"chicken"})
	assert.Equal(t, []int64{2, 1}, ids(ranked))
}
