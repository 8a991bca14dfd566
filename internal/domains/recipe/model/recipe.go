package model

import (
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Recipe mirrors the recipes table. The ingredient list is deliberately kept
// as the submitted comma-separated free text; tokenization happens
// per-request in the matching service.
type Recipe struct {
	RecipeID          int64             `json:"recipe_id" db:"recipe_id"`
	RecipeName        string            `json:"recipe_name" db:"recipe_name"`
	RecipeDescription string            `json:"recipe_description" db:"recipe_description"`
	RecipeIngredients string            `json:"recipe_ingredients" db:"recipe_ingredients"`
	RecipeCategory    string            `json:"recipe_category" db:"recipe_category"`
	RecipeType        string            `json:"recipe_type" db:"recipe_type"`
	RecipeCooktime    string            `json:"recipe_cooktime" db:"recipe_cooktime"`
	RecipeCalories    *int              `json:"recipe_calories" db:"recipe_calories"`
	RecipeAuthor      string            `json:"recipe_author" db:"recipe_author"`
	RecipeRating      *decimal.Decimal  `json:"recipe_rating" db:"recipe_rating"`
	RecipeReviewCount int               `json:"recipe_review_count" db:"recipe_review_count"`
	Steps             pq.StringArray    `json:"steps" db:"steps"`
	NutritionalValue  map[string]string `json:"nutritional_value" db:"nutritional_value"`
	ImagePath         string            `json:"image_path" db:"image_path"`
	RecipeSlug        string            `json:"recipe_slug" db:"recipe_slug"`
	RecipePublishDate time.Time         `json:"recipe_publish_date" db:"recipe_publish_date"`
}

// GenerateListCacheKey builds the cache key for a filtered load.
func GenerateListCacheKey(filter RecipeFilter) string {
	return fmt.Sprintf("recipes:list:%s", filter.CacheKey())
}

// ProcessImagePayload is the asynq task payload for the image pipeline.
type ProcessImagePayload struct {
	RecipeID  int64  `json:"recipe_id"`
	SourceURL string `json:"source_url"`
}
