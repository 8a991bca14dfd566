package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	articlemodel "tastebite-backend/internal/domains/article/model"
	"tastebite-backend/internal/domains/content/model"
	recipemodel "tastebite-backend/internal/domains/recipe/model"
)

type relation struct {
	userID      uuid.UUID
	contentID   int64
	contentType string
	kind        string
}

// fakeRelationRepo keeps relations in a slice so insertion order is
// observable, matching the created_at ordering of the real repository.
type fakeRelationRepo struct {
	relations []relation
}

func (f *fakeRelationRepo) ToggleFavourite(_ context.Context, userID uuid.UUID, contentType string, contentID int64) (bool, error) {
	for i, r := range f.relations {
		if r.userID == userID && r.contentID == contentID && r.contentType == contentType && r.kind == "favourite" {
			f.relations = append(f.relations[:i], f.relations[i+1:]...)
			return false, nil
		}
	}
	f.relations = append(f.relations, relation{userID, contentID, contentType, "favourite"})
	return true, nil
}

func (f *fakeRelationRepo) IsFavourited(_ context.Context, userID uuid.UUID, contentType string, contentID int64) (bool, error) {
	for _, r := range f.relations {
		if r.userID == userID && r.contentID == contentID && r.contentType == contentType && r.kind == "favourite" {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRelationRepo) FavouriteIDs(_ context.Context, userID uuid.UUID, contentType string) ([]int64, error) {
	ids := []int64{}
	for _, r := range f.relations {
		if r.userID == userID && r.contentType == contentType && r.kind == "favourite" {
			ids = append(ids, r.contentID)
		}
	}
	return ids, nil
}

func (f *fakeRelationRepo) RecordAuthored(_ context.Context, userID uuid.UUID, contentType string, contentID int64) error {
	f.relations = append(f.relations, relation{userID, contentID, contentType, "authored"})
	return nil
}

func (f *fakeRelationRepo) Count(_ context.Context, userID uuid.UUID, contentType, kind string) (int, error) {
	count := 0
	for _, r := range f.relations {
		if r.userID == userID && r.contentType == contentType && r.kind == kind {
			count++
		}
	}
	return count, nil
}

func (f *fakeRelationRepo) IDsPage(_ context.Context, userID uuid.UUID, contentType, kind string, limit, offset int) ([]int64, error) {
	all := []int64{}
	for _, r := range f.relations {
		if r.userID == userID && r.contentType == contentType && r.kind == kind {
			all = append(all, r.contentID)
		}
	}
	if offset >= len(all) {
		return []int64{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

type fakeRecipeRepo struct {
	recipes map[int64]recipemodel.Recipe
}

func (f *fakeRecipeRepo) List(context.Context, recipemodel.RecipeFilter) ([]recipemodel.Recipe, error) {
	return nil, nil
}
func (f *fakeRecipeRepo) GetAll(context.Context) ([]recipemodel.Recipe, error) { return nil, nil }
func (f *fakeRecipeRepo) Index(context.Context, recipemodel.IndexRequest) ([]recipemodel.Recipe, int, error) {
	return nil, 0, nil
}
func (f *fakeRecipeRepo) GetByIdentifier(context.Context, string) (*recipemodel.Recipe, error) {
	return nil, recipemodel.ErrRecipeNotFound
}
func (f *fakeRecipeRepo) GetByID(context.Context, int64) (*recipemodel.Recipe, error) {
	return nil, recipemodel.ErrRecipeNotFound
}

func (f *fakeRecipeRepo) ListByIDs(_ context.Context, ids []int64) ([]recipemodel.Recipe, error) {
	out := []recipemodel.Recipe{}
	for _, id := range ids {
		if r, ok := f.recipes[id]; ok {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRecipeRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.recipes[id]
	return ok, nil
}

func (f *fakeRecipeRepo) SlugExists(context.Context, string) (bool, error) { return false, nil }
func (f *fakeRecipeRepo) Create(context.Context, *recipemodel.Recipe) (int64, error) {
	return 0, nil
}
func (f *fakeRecipeRepo) Update(context.Context, *recipemodel.Recipe) error       { return nil }
func (f *fakeRecipeRepo) Delete(context.Context, int64) error                     { return nil }
func (f *fakeRecipeRepo) UpdateImagePath(context.Context, int64, string) error    { return nil }

type fakeArticleRepo struct {
	articles map[int64]articlemodel.Article
}

func (f *fakeArticleRepo) List(context.Context, string, string) ([]articlemodel.Article, error) {
	return nil, nil
}
func (f *fakeArticleRepo) Index(context.Context, int, int) ([]articlemodel.Article, int, error) {
	return nil, 0, nil
}
func (f *fakeArticleRepo) GetByIdentifier(context.Context, string) (*articlemodel.Article, error) {
	return nil, articlemodel.ErrArticleNotFound
}
func (f *fakeArticleRepo) GetByID(context.Context, int64) (*articlemodel.Article, error) {
	return nil, articlemodel.ErrArticleNotFound
}

func (f *fakeArticleRepo) ListByIDs(_ context.Context, ids []int64) ([]articlemodel.Article, error) {
	out := []articlemodel.Article{}
	for _, id := range ids {
		if a, ok := f.articles[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeArticleRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := f.articles[id]
	return ok, nil
}

func (f *fakeArticleRepo) SlugExists(context.Context, string) (bool, error) { return false, nil }
func (f *fakeArticleRepo) Create(context.Context, *articlemodel.Article) (int64, error) {
	return 0, nil
}
func (f *fakeArticleRepo) Update(context.Context, *articlemodel.Article) error { return nil }
func (f *fakeArticleRepo) Delete(context.Context, int64) error                 { return nil }

func newTestService(recipes *fakeRecipeRepo, articles *fakeArticleRepo) (ServiceInterface, *fakeRelationRepo) {
	relations := &fakeRelationRepo{}
	svc := NewContentService(relations, recipes, articles, zerolog.Nop())
	return svc, relations
}

func TestToggleAddsThenRemoves(t *testing.T) {
	recipes := &fakeRecipeRepo{recipes: map[int64]recipemodel.Recipe{7: {RecipeID: 7}}}
	svc, _ := newTestService(recipes, &fakeArticleRepo{})
	userID := uuid.New()

	result, err := svc.Toggle(context.Background(), userID, "recipes", 7)
	require.NoError(t, err)
	assert.True(t, result.IsFavorited)
	assert.Equal(t, []int64{7}, result.Favourites)

	// Toggling again restores the original state.
	result, err = svc.Toggle(context.Background(), userID, "recipes", 7)
	require.NoError(t, err)
	assert.False(t, result.IsFavorited)
	assert.Empty(t, result.Favourites)
}

func TestToggleCoercesUnknownTypeToArticle(t *testing.T) {
	articles := &fakeArticleRepo{articles: map[int64]articlemodel.Article{1: {ArticleID: 1}}}
	svc, relations := newTestService(&fakeRecipeRepo{}, articles)

	result, err := svc.Toggle(context.Background(), uuid.New(), "books", 1)
	require.NoError(t, err)
	assert.True(t, result.IsFavorited)
	require.Len(t, relations.relations, 1)
	assert.Equal(t, "article", relations.relations[0].contentType)
}

func TestToggleRejectsMissingContent(t *testing.T) {
	svc, _ := newTestService(&fakeRecipeRepo{recipes: map[int64]recipemodel.Recipe{}}, &fakeArticleRepo{})

	_, err := svc.Toggle(context.Background(), uuid.New(), "recipe", 99)
	assert.ErrorIs(t, err, model.ErrContentNotFound)
}

func TestTogglePreservesInsertionOrder(t *testing.T) {
	recipes := &fakeRecipeRepo{recipes: map[int64]recipemodel.Recipe{}}
	for i := int64(1); i <= 3; i++ {
		recipes.recipes[i] = recipemodel.Recipe{RecipeID: i}
	}
	svc, _ := newTestService(recipes, &fakeArticleRepo{})
	userID := uuid.New()

	for _, id := range []int64{3, 1, 2} {
		_, err := svc.Toggle(context.Background(), userID, "recipe", id)
		require.NoError(t, err)
	}

	result, err := svc.Toggle(context.Background(), userID, "recipe", 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2}, result.Favourites)
}

func TestStatus(t *testing.T) {
	recipes := &fakeRecipeRepo{recipes: map[int64]recipemodel.Recipe{7: {RecipeID: 7}}}
	svc, _ := newTestService(recipes, &fakeArticleRepo{})
	userID := uuid.New()

	favourited, err := svc.Status(context.Background(), userID, "recipe", 7)
	require.NoError(t, err)
	assert.False(t, favourited)

	_, err = svc.Toggle(context.Background(), userID, "recipe", 7)
	require.NoError(t, err)

	favourited, err = svc.Status(context.Background(), userID, "recipe", 7)
	require.NoError(t, err)
	assert.True(t, favourited)
}

func TestShowAllPaginatesFavourites(t *testing.T) {
	recipes := &fakeRecipeRepo{recipes: map[int64]recipemodel.Recipe{}}
	svc, relations := newTestService(recipes, &fakeArticleRepo{})
	userID := uuid.New()

	for i := int64(1); i <= 25; i++ {
		recipes.recipes[i] = recipemodel.Recipe{RecipeID: i, RecipeName: fmt.Sprintf("Recipe %d", i)}
		_, err := svc.Toggle(context.Background(), userID, "recipe", i)
		require.NoError(t, err)
	}
	require.Len(t, relations.relations, 25)

	result, err := svc.ShowAll(context.Background(), userID, "recipes", "favourites", 2, 10)
	require.NoError(t, err)

	assert.Equal(t, "recipe", result.Type)
	assert.Equal(t, "favourite", result.Category)
	assert.Equal(t, model.PaginationMeta{
		CurrentPage: 2, PerPage: 10, Total: 25, LastPage: 3, From: 11, To: 20,
	}, result.Pagination)

	items, ok := result.Items.([]recipemodel.Recipe)
	require.True(t, ok)
	assert.Len(t, items, 10)
	assert.Equal(t, int64(11), items[0].RecipeID)
}

func TestShowAllEmptyPage(t *testing.T) {
	svc, _ := newTestService(&fakeRecipeRepo{recipes: map[int64]recipemodel.Recipe{}}, &fakeArticleRepo{})

	result, err := svc.ShowAll(context.Background(), uuid.New(), "recipe", "favourite", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, model.PaginationMeta{CurrentPage: 1, PerPage: 10}, result.Pagination)
	items, ok := result.Items.([]recipemodel.Recipe)
	require.True(t, ok)
	assert.Empty(t, items)
}

func TestShowAllArticlesUseCardShape(t *testing.T) {
	articles := &fakeArticleRepo{articles: map[int64]articlemodel.Article{
		4: {ArticleID: 4, ArticleTitle: "Knife Skills", ArticleSummary: "The basics."},
	}}
	svc, _ := newTestService(&fakeRecipeRepo{}, articles)
	userID := uuid.New()

	_, err := svc.Toggle(context.Background(), userID, "articles", 4)
	require.NoError(t, err)

	result, err := svc.ShowAll(context.Background(), userID, "articles", "favourite", 1, 10)
	require.NoError(t, err)

	items, ok := result.Items.([]articlemodel.ListItem)
	require.True(t, ok)
	require.Len(t, items, 1)
	assert.Equal(t, "The basics.", items[0].Excerpt)
	assert.Equal(t, "5 min read", items[0].ReadTime)
}

func TestShowAllCoercesUnknownCategoryToAuthored(t *testing.T) {
	svc, _ := newTestService(&fakeRecipeRepo{recipes: map[int64]recipemodel.Recipe{}}, &fakeArticleRepo{})

	result, err := svc.ShowAll(context.Background(), uuid.New(), "recipe", "liked", 1, 10)
	require.NoError(t, err)
	assert.Equal(t, "authored", result.Category)
}

func TestShowAllAuthored(t *testing.T) {
	recipes := &fakeRecipeRepo{recipes: map[int64]recipemodel.Recipe{5: {RecipeID: 5}}}
	svc, relations := newTestService(recipes, &fakeArticleRepo{})
	userID := uuid.New()

	require.NoError(t, relations.RecordAuthored(context.Background(), userID, "recipe", 5))

	result, err := svc.ShowAll(context.Background(), userID, "recipe", "authored", 1, 10)
	require.NoError(t, err)

	assert.Equal(t, "authored", result.Category)
	assert.Equal(t, 1, result.Pagination.Total)
	items := result.Items.([]recipemodel.Recipe)
	assert.Equal(t, int64(5), items[0].RecipeID)
}
