package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// CreateRecipeRequest is the payload for POST /api/recipes. Field names
// match the column names the frontend already submits.
type CreateRecipeRequest struct {
	RecipeName        string            `json:"recipe_name"`
	RecipeDescription string            `json:"recipe_description"`
	RecipeIngredients string            `json:"recipe_ingredients"`
	RecipeRating      *float64          `json:"recipe_rating"`
	RecipeCooktime    string            `json:"recipe_cooktime"`
	RecipeCategory    string            `json:"recipe_category"`
	RecipeType        string            `json:"recipe_type"`
	ImagePath         string            `json:"image_path"`
	RecipeCalories    *int              `json:"recipe_calories"`
	RecipeAuthor      string            `json:"recipe_author"`
	Steps             []string          `json:"steps"`
	NutritionalValue  map[string]string `json:"nutritional_value"`
}

func (r CreateRecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RecipeName, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.RecipeDescription, validation.Length(0, 255)),
		validation.Field(&r.RecipeIngredients, validation.Required),
		validation.Field(&r.RecipeRating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&r.RecipeCooktime, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.RecipeCategory, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.RecipeType, validation.Required, validation.Length(1, 50)),
		validation.Field(&r.ImagePath, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.RecipeCalories, validation.Min(0)),
		validation.Field(&r.RecipeAuthor, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Steps, validation.Required),
	)
}

// ToEntity builds a Recipe from a validated create request. Slug is filled
// in by the service after the uniqueness loop.
func (r CreateRecipeRequest) ToEntity(slug string) *Recipe {
	recipe := &Recipe{
		RecipeName:        r.RecipeName,
		RecipeDescription: r.RecipeDescription,
		RecipeIngredients: r.RecipeIngredients,
		RecipeCategory:    r.RecipeCategory,
		RecipeType:        r.RecipeType,
		RecipeCooktime:    r.RecipeCooktime,
		RecipeCalories:    r.RecipeCalories,
		RecipeAuthor:      r.RecipeAuthor,
		Steps:             r.Steps,
		NutritionalValue:  r.NutritionalValue,
		ImagePath:         r.ImagePath,
		RecipeSlug:        slug,
		RecipePublishDate: time.Now(),
	}
	if r.RecipeRating != nil {
		rating := decimal.NewFromFloat(*r.RecipeRating).Round(1)
		recipe.RecipeRating = &rating
	}
	return recipe
}

// UpdateRecipeRequest carries partial updates; nil means "leave unchanged".
type UpdateRecipeRequest struct {
	RecipeName        *string            `json:"recipe_name"`
	RecipeDescription *string            `json:"recipe_description"`
	RecipeIngredients *string            `json:"recipe_ingredients"`
	RecipeRating      *float64           `json:"recipe_rating"`
	RecipeCooktime    *string            `json:"recipe_cooktime"`
	RecipeCategory    *string            `json:"recipe_category"`
	RecipeType        *string            `json:"recipe_type"`
	ImagePath         *string            `json:"image_path"`
	RecipeCalories    *int               `json:"recipe_calories"`
	RecipeAuthor      *string            `json:"recipe_author"`
	Steps             []string           `json:"steps"`
	NutritionalValue  *map[string]string `json:"nutritional_value"`
}

func (r UpdateRecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RecipeName, validation.NilOrNotEmpty, validation.Length(1, 100)),
		validation.Field(&r.RecipeIngredients, validation.NilOrNotEmpty),
		validation.Field(&r.RecipeRating, validation.Min(0.0), validation.Max(5.0)),
		validation.Field(&r.RecipeCooktime, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.RecipeCategory, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.RecipeType, validation.NilOrNotEmpty, validation.Length(1, 50)),
		validation.Field(&r.ImagePath, validation.NilOrNotEmpty, validation.Length(1, 255)),
		validation.Field(&r.RecipeCalories, validation.Min(0)),
		validation.Field(&r.RecipeAuthor, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

// ApplyTo writes the non-nil fields onto an existing recipe. NameChanged
// tells the service whether the slug needs regenerating.
func (r UpdateRecipeRequest) ApplyTo(recipe *Recipe) (nameChanged bool) {
	if r.RecipeName != nil && *r.RecipeName != recipe.RecipeName {
		recipe.RecipeName = *r.RecipeName
		nameChanged = true
	}
	if r.RecipeDescription != nil {
		recipe.RecipeDescription = *r.RecipeDescription
	}
	if r.RecipeIngredients != nil {
		recipe.RecipeIngredients = *r.RecipeIngredients
	}
	if r.RecipeRating != nil {
		rating := decimal.NewFromFloat(*r.RecipeRating).Round(1)
		recipe.RecipeRating = &rating
	}
	if r.RecipeCooktime != nil {
		recipe.RecipeCooktime = *r.RecipeCooktime
	}
	if r.RecipeCategory != nil {
		recipe.RecipeCategory = *r.RecipeCategory
	}
	if r.RecipeType != nil {
		recipe.RecipeType = *r.RecipeType
	}
	if r.ImagePath != nil {
		recipe.ImagePath = *r.ImagePath
	}
	if r.RecipeCalories != nil {
		recipe.RecipeCalories = r.RecipeCalories
	}
	if r.RecipeAuthor != nil {
		recipe.RecipeAuthor = *r.RecipeAuthor
	}
	if r.Steps != nil {
		recipe.Steps = r.Steps
	}
	if r.NutritionalValue != nil {
		recipe.NutritionalValue = *r.NutritionalValue
	}
	return nameChanged
}

// IndexRequest is the paginated catalogue listing (GET /api/recipes).
type IndexRequest struct {
	SortBy    string
	SortOrder string
	Page      int
	PerPage   int
}

// IndexSortColumns whitelists sortable columns; anything else is rejected
// before reaching SQL.
var IndexSortColumns = map[string]bool{
	"recipe_name":         true,
	"recipe_rating":       true,
	"recipe_publish_date": true,
	"recipe_calories":     true,
}

func (r IndexRequest) Validate() error {
	if !IndexSortColumns[r.SortBy] {
		return ErrInvalidSort
	}
	return nil
}

// IndexMeta is the pagination block of the index response.
type IndexMeta struct {
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	PerPage     int `json:"per_page"`
	TotalItems  int `json:"total_items"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// NewIndexMeta computes the pagination block from the row count.
func NewIndexMeta(total, page, perPage int) *IndexMeta {
	meta := &IndexMeta{
		CurrentPage: page,
		PerPage:     perPage,
		TotalItems:  total,
	}
	if total > 0 {
		meta.TotalPages = (total + perPage - 1) / perPage
		meta.From = (page-1)*perPage + 1
		if to := page * perPage; to < total {
			meta.To = to
		} else {
			meta.To = total
		}
	}
	return meta
}
