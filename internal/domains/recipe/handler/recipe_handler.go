package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tastebite-backend/internal/domains/recipe/model"
	"tastebite-backend/internal/domains/recipe/service"
	"tastebite-backend/internal/shared/middleware"
	"tastebite-backend/internal/shared/response"
)

type RecipeHandler struct {
	service service.ServiceInterface
}

func NewRecipeHandler(service service.ServiceInterface) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// Load handles GET /api/recipes/load. Exactly one of search, diet and
// meal_type is honoured, in that priority order.
func (h *RecipeHandler) Load(c *gin.Context) {
	filter := model.ResolveRecipeFilter(
		c.Query("search"),
		c.Query("diet"),
		c.Query("meal_type"),
	)

	recipes, err := h.service.Load(c.Request.Context(), filter)
	if err != nil {
		response.InternalServerError(c, "Failed to load recipes")
		return
	}

	response.With(c, http.StatusOK, gin.H{
		"count":           len(recipes),
		"filters_applied": filter.Applied(),
		"data":            recipes,
	})
}

type availableRequest struct {
	AvailableIngredients []string `json:"available_ingredients"`
	Ranked               bool     `json:"ranked"`
}

// Available handles POST /api/recipes/available, the pantry matching flow.
func (h *RecipeHandler) Available(c *gin.Context) {
	var req availableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	recipes, err := h.service.FetchAvailable(c.Request.Context(), req.AvailableIngredients, req.Ranked)
	if err != nil {
		if errors.Is(err, model.ErrNoIngredients) {
			response.ValidationFailed(c, err)
			return
		}
		response.InternalServerError(c, "Failed to match recipes")
		return
	}

	response.With(c, http.StatusOK, gin.H{
		"count": len(recipes),
		"data":  recipes,
	})
}

// Index handles GET /api/recipes, the sorted paginated catalogue.
func (h *RecipeHandler) Index(c *gin.Context) {
	req := model.IndexRequest{
		SortBy:    c.DefaultQuery("sort_by", "recipe_publish_date"),
		SortOrder: c.DefaultQuery("sort_order", "desc"),
		Page:      queryInt(c, "page", 1),
		PerPage:   queryInt(c, "per_page", 15),
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	recipes, meta, err := h.service.Index(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "Failed to list recipes")
		return
	}

	response.With(c, http.StatusOK, gin.H{
		"data":       recipes,
		"pagination": meta,
	})
}

// Show handles GET /api/recipes/:identifier, accepting a numeric ID or a
// slug. Registered last in the group so named routes win.
func (h *RecipeHandler) Show(c *gin.Context) {
	recipe, err := h.service.Show(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		if errors.Is(err, model.ErrRecipeNotFound) {
			response.NotFound(c, "Recipe not found")
			return
		}
		response.InternalServerError(c, "Failed to fetch recipe")
		return
	}

	response.OK(c, http.StatusOK, recipe, "")
}

func (h *RecipeHandler) Create(c *gin.Context) {
	var req model.CreateRecipeRequest
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

	recipe, err := h.service.Create(c.Request.Context(), req, userID)
	if err != nil {
		response.InternalServerError(c, "Failed to create recipe")
		return
	}

	response.OK(c, http.StatusCreated, recipe, "Recipe created successfully")
}

func (h *RecipeHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid recipe ID")
		return
	}

	var req model.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, err)
		return
	}

	recipe, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, model.ErrRecipeNotFound) {
			response.NotFound(c, "Recipe not found")
			return
		}
		response.InternalServerError(c, "Failed to update recipe")
		return
	}

	response.OK(c, http.StatusOK, recipe, "Recipe updated successfully")
}

func (h *RecipeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "Invalid recipe ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, model.ErrRecipeNotFound) {
			response.NotFound(c, "Recipe not found")
			return
		}
		response.InternalServerError(c, "Failed to delete recipe")
		return
	}

	response.OK(c, http.StatusOK, nil, "Recipe deleted successfully")
}

// Export handles GET /api/admin/recipes/export, streaming the catalogue as
// an Excel workbook.
func (h *RecipeHandler) Export(c *gin.Context) {
	data, err := h.service.ExportToExcel(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to export recipes")
		return
	}

	filename := fmt.Sprintf("recipes_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.Query(key))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
