package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tastebite-backend/internal/domains/recipe/model"
)

type stubService struct {
	loadFilter model.RecipeFilter
	recipes    []model.Recipe
	matchErr   error
}

func (s *stubService) Load(_ context.Context, filter model.RecipeFilter) ([]model.Recipe, error) {
	s.loadFilter = filter
	return s.recipes, nil
}

func (s *stubService) FetchAvailable(context.Context, []string, bool) ([]model.Recipe, error) {
	if s.matchErr != nil {
		return nil, s.matchErr
	}
	return s.recipes, nil
}

func (s *stubService) Index(_ context.Context, req model.IndexRequest) ([]model.Recipe, model.IndexMeta, error) {
	return s.recipes, *model.NewIndexMeta(len(s.recipes), req.Page, req.PerPage), nil
}

func (s *stubService) Show(context.Context, string) (*model.Recipe, error) {
	return nil, model.ErrRecipeNotFound
}

func (s *stubService) Create(context.Context, model.CreateRecipeRequest, uuid.UUID) (*model.Recipe, error) {
	return nil, nil
}

func (s *stubService) Update(context.Context, int64, model.UpdateRecipeRequest) (*model.Recipe, error) {
	return nil, model.ErrRecipeNotFound
}

func (s *stubService) Delete(context.Context, int64) error { return model.ErrRecipeNotFound }

func (s *stubService) ExportToExcel(context.Context) ([]byte, error) { return nil, nil }

func newTestRouter(svc *stubService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRecipeHandler(svc)

	r := gin.New()
	r.GET("/api/recipes/load", h.Load)
	r.POST("/api/recipes/available", h.Available)
	r.GET("/api/recipes/:identifier", h.Show)
	return r
}

func TestLoadResponseShape(t *testing.T) {
	svc := &stubService{recipes: []model.Recipe{{RecipeID: 1}, {RecipeID: 2}}}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recipes/load?search=pho&diet=vegan", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success        bool              `json:"success"`
		Count          int               `json:"count"`
		FiltersApplied map[string]string `json:"filters_applied"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 2, body.Count)

	// Search takes priority; diet is ignored.
	assert.Equal(t, map[string]string{"search": "pho"}, body.FiltersApplied)
	assert.Equal(t, model.FilterSearch, svc.loadFilter.Kind)
}

func TestAvailableRejectsEmptyList(t *testing.T) {
	svc := &stubService{matchErr: model.ErrNoIngredients}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/recipes/available",
		bytes.NewBufferString(`{"available_ingredients": []}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestAvailableRejectsMalformedBody(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/recipes/available",
		bytes.NewBufferString(`{not json`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShowNotFound(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/recipes/no-such-slug", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Recipe not found")
}
