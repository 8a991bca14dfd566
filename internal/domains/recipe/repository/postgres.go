package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"tastebite-backend/internal/domains/recipe/model"
)

const recipeColumns = `recipe_id, recipe_name, recipe_description, recipe_ingredients,
	recipe_category, recipe_type, recipe_cooktime, recipe_calories, recipe_author,
	recipe_rating, recipe_review_count, steps, nutritional_value, image_path,
	recipe_slug, recipe_publish_date`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanRecipe(row pgx.Row) (*model.Recipe, error) {
	var r model.Recipe
	var rating decimal.NullDecimal

	err := row.Scan(
		&r.RecipeID, &r.RecipeName, &r.RecipeDescription, &r.RecipeIngredients,
		&r.RecipeCategory, &r.RecipeType, &r.RecipeCooktime, &r.RecipeCalories,
		&r.RecipeAuthor, &rating, &r.RecipeReviewCount, pq.Array(&r.Steps),
		&r.NutritionalValue, &r.ImagePath, &r.RecipeSlug, &r.RecipePublishDate,
	)
	if err != nil {
		return nil, err
	}

	if rating.Valid {
		r.RecipeRating = &rating.Decimal
	}
	return &r, nil
}

func (p *postgresRepository) collectRecipes(rows pgx.Rows) ([]model.Recipe, error) {
	defer rows.Close()

	var recipes []model.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return recipes, nil
}

// List applies exactly one predicate; the filter resolver guarantees the
// priority order, so no condition combining happens here.
func (p *postgresRepository) List(ctx context.Context, filter model.RecipeFilter) ([]model.Recipe, error) {
	query := fmt.Sprintf(`SELECT %s FROM recipes`, recipeColumns)
	var args []interface{}

	switch filter.Kind {
	case model.FilterSearch:
		query += ` WHERE recipe_name ILIKE '%' || $1 || '%'
			OR recipe_description ILIKE '%' || $1 || '%'
			OR recipe_ingredients ILIKE '%' || $1 || '%'
			OR recipe_author ILIKE '%' || $1 || '%'`
		args = append(args, filter.Term)
	case model.FilterDiet:
		query += ` WHERE recipe_type ILIKE '%' || $1 || '%'`
		args = append(args, filter.Term)
	case model.FilterMeal:
		query += ` WHERE recipe_category ILIKE '%' || $1 || '%'`
		args = append(args, filter.Term)
	}

	query += ` ORDER BY recipe_id`

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return p.collectRecipes(rows)
}

func (p *postgresRepository) GetAll(ctx context.Context) ([]model.Recipe, error) {
	rows, err := p.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM recipes ORDER BY recipe_id`, recipeColumns))
	if err != nil {
		return nil, fmt.Errorf("get all recipes: %w", err)
	}
	return p.collectRecipes(rows)
}

func (p *postgresRepository) Index(ctx context.Context, req model.IndexRequest) ([]model.Recipe, int, error) {
	var total int
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}

	direction := "ASC"
	if strings.EqualFold(req.SortOrder, "desc") {
		direction = "DESC"
	}

	// req.SortBy is validated against IndexSortColumns before it gets here.
	query := fmt.Sprintf(`SELECT %s FROM recipes ORDER BY %s %s LIMIT $1 OFFSET $2`,
		recipeColumns, req.SortBy, direction)

	rows, err := p.pool.Query(ctx, query, req.PerPage, (req.Page-1)*req.PerPage)
	if err != nil {
		return nil, 0, fmt.Errorf("index recipes: %w", err)
	}

	recipes, err := p.collectRecipes(rows)
	if err != nil {
		return nil, 0, err
	}
	return recipes, total, nil
}

// GetByIdentifier accepts either a numeric ID or a slug, matching the
// catch-all show route.
func (p *postgresRepository) GetByIdentifier(ctx context.Context, identifier string) (*model.Recipe, error) {
	if id, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		recipe, err := p.GetByID(ctx, id)
		if err == nil || !errors.Is(err, model.ErrRecipeNotFound) {
			return recipe, err
		}
		// Fall through: a numeric slug is unusual but possible.
	}

	row := p.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM recipes WHERE recipe_slug = $1`, recipeColumns), identifier)

	recipe, err := scanRecipe(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe by slug: %w", err)
	}
	return recipe, nil
}

func (p *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	row := p.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM recipes WHERE recipe_id = $1`, recipeColumns), id)

	recipe, err := scanRecipe(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe by id: %w", err)
	}
	return recipe, nil
}

func (p *postgresRepository) ListByIDs(ctx context.Context, ids []int64) ([]model.Recipe, error) {
	if len(ids) == 0 {
		return []model.Recipe{}, nil
	}

	rows, err := p.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM recipes WHERE recipe_id = ANY($1)
			ORDER BY recipe_publish_date DESC`, recipeColumns), ids)
	if err != nil {
		return nil, fmt.Errorf("list recipes by ids: %w", err)
	}
	return p.collectRecipes(rows)
}

func (p *postgresRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM recipes WHERE recipe_id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("recipe exists: %w", err)
	}
	return exists, nil
}

func (p *postgresRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM recipes WHERE recipe_slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("slug exists: %w", err)
	}
	return exists, nil
}

func (p *postgresRepository) Create(ctx context.Context, recipe *model.Recipe) (int64, error) {
	var rating decimal.NullDecimal
	if recipe.RecipeRating != nil {
		rating = decimal.NullDecimal{Decimal: *recipe.RecipeRating, Valid: true}
	}

	var id int64
	err := p.pool.QueryRow(ctx, `
		INSERT INTO recipes (recipe_name, recipe_description, recipe_ingredients,
			recipe_category, recipe_type, recipe_cooktime, recipe_calories,
			recipe_author, recipe_rating, recipe_review_count, steps,
			nutritional_value, image_path, recipe_slug, recipe_publish_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING recipe_id`,
		recipe.RecipeName, recipe.RecipeDescription, recipe.RecipeIngredients,
		recipe.RecipeCategory, recipe.RecipeType, recipe.RecipeCooktime,
		recipe.RecipeCalories, recipe.RecipeAuthor, rating,
		recipe.RecipeReviewCount, pq.Array(recipe.Steps), recipe.NutritionalValue,
		recipe.ImagePath, recipe.RecipeSlug, recipe.RecipePublishDate,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create recipe: %w", err)
	}

	recipe.RecipeID = id
	return id, nil
}

func (p *postgresRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	var rating decimal.NullDecimal
	if recipe.RecipeRating != nil {
		rating = decimal.NullDecimal{Decimal: *recipe.RecipeRating, Valid: true}
	}

	tag, err := p.pool.Exec(ctx, `
		UPDATE recipes SET recipe_name = $1, recipe_description = $2,
			recipe_ingredients = $3, recipe_category = $4, recipe_type = $5,
			recipe_cooktime = $6, recipe_calories = $7, recipe_author = $8,
			recipe_rating = $9, steps = $10, nutritional_value = $11,
			image_path = $12, recipe_slug = $13
		WHERE recipe_id = $14`,
		recipe.RecipeName, recipe.RecipeDescription, recipe.RecipeIngredients,
		recipe.RecipeCategory, recipe.RecipeType, recipe.RecipeCooktime,
		recipe.RecipeCalories, recipe.RecipeAuthor, rating,
		pq.Array(recipe.Steps), recipe.NutritionalValue, recipe.ImagePath,
		recipe.RecipeSlug, recipe.RecipeID,
	)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecipeNotFound
	}
	return nil
}

func (p *postgresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM recipes WHERE recipe_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecipeNotFound
	}
	return nil
}

func (p *postgresRepository) UpdateImagePath(ctx context.Context, id int64, imagePath string) error {
	tag, err := p.pool.Exec(ctx,
		`UPDATE recipes SET image_path = $1 WHERE recipe_id = $2`, imagePath, id)
	if err != nil {
		return fmt.Errorf("update recipe image path: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecipeNotFound
	}
	return nil
}
