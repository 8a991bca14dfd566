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

	"tastebite-backend/internal/domains/content/model"
	"tastebite-backend/internal/shared/middleware"
)

type stubContentService struct {
	toggleResult *model.ToggleResult
	statusType   string
	favourited   bool

	showAllType     string
	showAllCategory string
	showAllPage     int
	showAllPerPage  int
}

func (s *stubContentService) Toggle(context.Context, uuid.UUID, string, int64) (*model.ToggleResult, error) {
	if s.toggleResult != nil {
		return s.toggleResult, nil
	}
	return &model.ToggleResult{Favourites: []int64{}}, nil
}

func (s *stubContentService) Status(_ context.Context, _ uuid.UUID, rawType string, _ int64) (bool, error) {
	s.statusType = rawType
	return s.favourited, nil
}

func (s *stubContentService) ShowAll(_ context.Context, _ uuid.UUID, rawType, rawCategory string, page, perPage int) (*model.ShowAllResult, error) {
	s.showAllType = rawType
	s.showAllCategory = rawCategory
	s.showAllPage = page
	s.showAllPerPage = perPage
	return &model.ShowAllResult{
		Items:      []int64{},
		Type:       model.NormalizeContentType(rawType),
		Category:   model.NormalizeCategory(rawCategory),
		Pagination: model.NewPaginationMeta(0, page, perPage),
	}, nil
}

// newContentRouter mirrors the real route registration: the favourite
// routes live inside both typed groups.
func newContentRouter(svc *stubContentService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewContentHandler(svc)

	asUser := func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uuid.New())
		c.Next()
	}

	router := gin.New()
	api := router.Group("/api")
	for _, group := range []struct {
		prefix      string
		contentType string
	}{
		{"/recipes", "recipe"},
		{"/articles", "article"},
	} {
		g := api.Group(group.prefix)
		g.POST("/favourite", asUser, h.Favourite(group.contentType))
		g.GET("/favourite/status/:type/:id", asUser, h.FavouriteStatus)
		g.POST("/show-all", asUser, h.ShowAll(group.contentType))
	}
	return router
}

func TestFavouriteStatusRoutePerType(t *testing.T) {
	svc := &stubContentService{favourited: true}
	router := newContentRouter(svc)

	// The frontend prefixes the status URL with the content type twice,
	// once as the group segment and once as the path parameter.
	for _, url := range []string{
		"/api/recipes/favourite/status/recipes/7",
		"/api/articles/favourite/status/articles/7",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, url, nil)
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, url)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, true, body["isFavorited"])
		assert.Equal(t, float64(7), body["id"])
	}
	assert.Equal(t, "articles", svc.statusType)
}

func TestShowAllBindsJSONBody(t *testing.T) {
	svc := &stubContentService{}
	router := newContentRouter(svc)

	payload, err := json.Marshal(gin.H{"category": "authored", "page": 3, "per_page": 5})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/recipes/show-all", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "recipe", svc.showAllType)
	assert.Equal(t, "authored", svc.showAllCategory)
	assert.Equal(t, 3, svc.showAllPage)
	assert.Equal(t, 5, svc.showAllPerPage)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "authored", body["category"])
}

func TestShowAllDefaultsWithoutBody(t *testing.T) {
	svc := &stubContentService{}
	router := newContentRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/articles/show-all", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "article", svc.showAllType)
	assert.Equal(t, "favourite", svc.showAllCategory)
	assert.Equal(t, 1, svc.showAllPage)
	assert.Equal(t, 10, svc.showAllPerPage)
}
