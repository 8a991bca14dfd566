package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tastebite-backend/internal/domains/content/model"
	"tastebite-backend/internal/domains/content/service"
	"tastebite-backend/internal/shared/middleware"
	"tastebite-backend/internal/shared/response"
)

type ContentHandler struct {
	service service.ServiceInterface
}

func NewContentHandler(service service.ServiceInterface) *ContentHandler {
	return &ContentHandler{service: service}
}

type favouriteRequest struct {
	ID int64 `json:"id"`
}

// Favourite handles POST /api/{recipes,articles}/favourite, toggling the
// favourite state for the authenticated user. The content type is fixed at
// route registration.
func (h *ContentHandler) Favourite(contentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Unauthorized(c, "Unauthorized")
			return
		}

		var req favouriteRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ID < 1 {
			response.BadRequest(c, "Invalid content ID")
			return
		}

		result, err := h.service.Toggle(c.Request.Context(), userID, contentType, req.ID)
		if err != nil {
			h.renderError(c, err, "Failed to toggle favourite")
			return
		}

		message := "Removed from favourites"
		if result.IsFavorited {
			message = "Added to favourites"
		}

		response.With(c, http.StatusOK, gin.H{
			"type":        contentType,
			"favourites":  result.Favourites,
			"isFavorited": result.IsFavorited,
			"message":     message,
		})
	}
}

// FavouriteStatus handles GET /api/{recipes,articles}/favourite/status/:type/:id.
func (h *ContentHandler) FavouriteStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid content ID")
		return
	}

	favourited, err := h.service.Status(c.Request.Context(), userID, c.Param("type"), id)
	if err != nil {
		h.renderError(c, err, "Failed to check favourite status")
		return
	}

	response.With(c, http.StatusOK, gin.H{
		"type":        c.Param("type"),
		"id":          id,
		"isFavorited": favourited,
	})
}

type showAllRequest struct {
	Category string `json:"category"`
	Page     int    `json:"page"`
	PerPage  int    `json:"per_page"`
}

// ShowAll handles POST /api/{recipes,articles}/show-all, the paginated
// favourites or authored listing. Missing or malformed body fields fall
// back to the defaults.
func (h *ContentHandler) ShowAll(contentType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			response.Unauthorized(c, "Unauthorized")
			return
		}

		req := showAllRequest{Category: "favourite", Page: 1, PerPage: 10}
		_ = c.ShouldBindJSON(&req)

		result, err := h.service.ShowAll(
			c.Request.Context(),
			userID,
			contentType,
			req.Category,
			req.Page,
			req.PerPage,
		)
		if err != nil {
			h.renderError(c, err, "Failed to load content")
			return
		}

		response.With(c, http.StatusOK, gin.H{
			"data":       result.Items,
			"type":       result.Type,
			"category":   result.Category,
			"pagination": result.Pagination,
		})
	}
}

func (h *ContentHandler) renderError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, model.ErrContentNotFound) {
		response.NotFound(c, "Content not found")
		return
	}
	response.InternalServerError(c, fallback)
}
