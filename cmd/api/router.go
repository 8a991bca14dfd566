package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tastebite-backend/internal/shared"
	"tastebite-backend/internal/shared/middleware"
	"tastebite-backend/pkg/container"
)

// NewRouter assembles the HTTP surface. Named routes are registered before
// the identifier catch-alls so slugs cannot shadow them.
func NewRouter(c *container.Container) *gin.Engine {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(),
	)

	jwtSecret := c.Config.JWT.Secret
	auth := middleware.AuthMiddleware(jwtSecret)
	optionalAuth := middleware.OptionalAuthMiddleware(jwtSecret)

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler(c))

		api.POST("/signup", c.UserHandler.Signup)
		api.POST("/login", c.UserHandler.Login)

		recipes := api.Group("/recipes")
		{
			recipes.GET("/load", c.RecipeHandler.Load)
			recipes.POST("/available", c.RecipeHandler.Available)
			recipes.GET("", c.RecipeHandler.Index)
			recipes.POST("", optionalAuth, c.RecipeHandler.Create)
			recipes.PUT("/:id", auth, c.RecipeHandler.Update)
			recipes.DELETE("/:id", auth, c.RecipeHandler.Delete)

			recipes.POST("/favourite", auth, c.ContentHandler.Favourite(shared.ContentTypeRecipe))
			recipes.GET("/favourite/status/:type/:id", auth, c.ContentHandler.FavouriteStatus)
			recipes.POST("/show-all", auth, c.ContentHandler.ShowAll(shared.ContentTypeRecipe))

			// Catch-all: numeric ID or slug.
			recipes.GET("/:identifier", c.RecipeHandler.Show)
		}

		articles := api.Group("/articles")
		{
			articles.GET("/load", c.ArticleHandler.Load)
			articles.GET("", c.ArticleHandler.Index)
			articles.POST("", optionalAuth, c.ArticleHandler.Create)
			articles.PUT("/:id", auth, c.ArticleHandler.Update)
			articles.DELETE("/:id", auth, c.ArticleHandler.Delete)

			articles.POST("/favourite", auth, c.ContentHandler.Favourite(shared.ContentTypeArticle))
			articles.GET("/favourite/status/:type/:id", auth, c.ContentHandler.FavouriteStatus)
			articles.POST("/show-all", auth, c.ContentHandler.ShowAll(shared.ContentTypeArticle))

			articles.GET("/:identifier", c.ArticleHandler.Show)
		}

		admin := api.Group("/admin", auth)
		{
			admin.GET("/recipes/export", c.RecipeHandler.Export)
		}
	}

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		checks := gin.H{"database": "ok", "cache": "ok"}

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["database"] = "unavailable"
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			checks["cache"] = "unavailable"
		}

		ctx.JSON(status, gin.H{
			"status":  http.StatusText(status),
			"version": c.Config.App.Version,
			"checks":  checks,
		})
	}
}
