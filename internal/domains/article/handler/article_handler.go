package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tastebite-backend/internal/domains/article/model"
	"tastebite-backend/internal/domains/article/service"
	contentmodel "tastebite-backend/internal/domains/content/model"
	"tastebite-backend/internal/shared/middleware"
	"tastebite-backend/internal/shared/response"
)

type ArticleHandler struct {
	service service.ServiceInterface
}

func NewArticleHandler(service service.ServiceInterface) *ArticleHandler {
	return &ArticleHandler{service: service}
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

// Load handles GET /api/articles/load, returning the card-shaped listing.
// Search takes priority over category when both are supplied.
func (h *ArticleHandler) Load(c *gin.Context) {
	items, err := h.service.Load(c.Request.Context(), c.Query("search"), c.Query("category"))
	if err != nil {
		response.InternalServerError(c, "Failed to load articles")
		return
	}

	response.With(c, http.StatusOK, gin.H{
		"count": len(items),
		"data":  items,
	})
}

// Index handles GET /api/articles, the paginated catalogue newest first.
func (h *ArticleHandler) Index(c *gin.Context) {
	page := queryInt(c, "page", 1)
	perPage := queryInt(c, "per_page", 15)

	articles, total, err := h.service.Index(c.Request.Context(), page, perPage)
	if err != nil {
		response.InternalServerError(c, "Failed to list articles")
		return
	}

	response.With(c, http.StatusOK, gin.H{
		"data":       articles,
		"pagination": contentmodel.NewPaginationMeta(total, page, perPage),
	})
}

// Show handles GET /api/articles/:identifier by numeric ID or slug.
func (h *ArticleHandler) Show(c *gin.Context) {
	article, err := h.service.Show(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			response.NotFound(c, "Article not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch article")
		return
	}

	response.OK(c, http.StatusOK, article, "")
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req model.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	// Anonymous creation is allowed; authorship is only recorded for
	// logged-in users.
	userID, _ := middleware.UserID(c)

	article, err := h.service.Create(c.Request.Context(), req, userID)
	if err != nil {
		response.InternalServerError(c, "Failed to create article")
		return
	}

	response.OK(c, http.StatusCreated, article, "Article created successfully")
}

func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid article ID")
		return
	}

	var req model.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	article, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			response.NotFound(c, "Article not found")
			return
		}
		response.InternalServerError(c, "Failed to update article")
		return
	}

	response.OK(c, http.StatusOK, article, "Article updated successfully")
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid article ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrArticleNotFound) {
			response.NotFound(c, "Article not found")
			return
		}
		response.InternalServerError(c, "Failed to delete article")
		return
	}

	response.OK(c, http.StatusOK, nil, "Article deleted successfully")
}
