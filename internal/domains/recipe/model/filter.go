package model

import "strings"

// FilterKind identifies which predicate a load request activates. Exactly
// one is ever active: the UI never combines search with diet or meal
// filters, and that single-active-filter contract is relied on by callers.
type FilterKind int

const (
	FilterNone FilterKind = iota
	// FilterSearch matches name, description, ingredients or author by
	// case-insensitive substring.
	FilterSearch
	// FilterDiet matches the recipe_type column by substring.
	FilterDiet
	// FilterMeal matches the recipe_category column by substring.
	FilterMeal
)

// RecipeFilter is the resolved predicate for a load request.
type RecipeFilter struct {
	Kind FilterKind
	Term string
}

// ResolveRecipeFilter applies the strict priority order: search wins over
// diet, diet wins over meal_type, later parameters are ignored even when
// present. Empty or whitespace-only parameters count as absent.
func ResolveRecipeFilter(search, diet, mealType string) RecipeFilter {
	if term := strings.TrimSpace(search); term != "" {
		return RecipeFilter{Kind: FilterSearch, Term: term}
	}
	if term := strings.TrimSpace(diet); term != "" {
		return RecipeFilter{Kind: FilterDiet, Term: term}
	}
	if term := strings.TrimSpace(mealType); term != "" {
		return RecipeFilter{Kind: FilterMeal, Term: term}
	}
	return RecipeFilter{Kind: FilterNone}
}

// Applied reports which filter was used, for the filters_applied response
// field.
func (f RecipeFilter) Applied() map[string]string {
	switch f.Kind {
	case FilterSearch:
		return map[string]string{"search": f.Term}
	case FilterDiet:
		return map[string]string{"diet": f.Term}
	case FilterMeal:
		return map[string]string{"meal_type": f.Term}
	default:
		return map[string]string{}
	}
}

// CacheKey gives a stable cache-key fragment for the filter.
func (f RecipeFilter) CacheKey() string {
	switch f.Kind {
	case FilterSearch:
		return "search:" + strings.ToLower(f.Term)
	case FilterDiet:
		return "diet:" + strings.ToLower(f.Term)
	case FilterMeal:
		return "meal:" + strings.ToLower(f.Term)
	default:
		return "all"
	}
}
