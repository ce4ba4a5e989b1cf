package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"memepmw-backend/internal/shared/middleware"
	"memepmw-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)

		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
		{
			protected.GET("/me", c.UserHandler.Profile)
			protected.PUT("/password", c.UserHandler.ChangePassword)
		}
	}
}

// ========================================
// PUBLIC ROUTES
// ========================================
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	// Home composition: the active layout rendered against live
	// articles, plus the theme.
	v1.GET("/compose/home", c.LayoutHandler.ComposeHome)
	v1.GET("/layouts/active", c.LayoutHandler.Active)

	v1.GET("/settings/appearance", c.SettingsHandler.Appearance)

	articles := v1.Group("/articles")
	{
		articles.GET("", c.ArticleHandler.List)
		articles.GET("/by-slug/:slug", c.ArticleHandler.GetBySlug)
		articles.GET("/:id/comments", c.CommentHandler.ListForArticle)
		articles.POST("/:id/comments", c.CommentHandler.Create)
		articles.GET("/:id/reactions", c.ReactionHandler.Counts)
		articles.POST("/:id/reactions", c.ReactionHandler.React)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.List)
		categories.GET("/:id", c.CategoryHandler.GetByID)
		categories.GET("/by-slug/:slug", c.CategoryHandler.GetBySlug)
	}

	v1.GET("/pages/by-slug/:slug", c.PageHandler.GetBySlug)
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(c.Config.JWT.Secret),
		middleware.AdminMiddleware(),
	)
	{
		// Articles
		admin.GET("/articles", c.ArticleHandler.ListAll)
		admin.GET("/articles/export", c.ArticleHandler.Export)
		admin.GET("/articles/:id", c.ArticleHandler.GetByID)
		admin.POST("/articles", c.ArticleHandler.Create)
		admin.PUT("/articles/:id", c.ArticleHandler.Update)
		admin.POST("/articles/:id/publish", c.ArticleHandler.Publish)
		admin.POST("/articles/:id/unpublish", c.ArticleHandler.Unpublish)
		admin.POST("/articles/:id/image", c.ArticleHandler.UploadImage)
		admin.DELETE("/articles/:id", c.ArticleHandler.Delete)

		// Categories
		admin.POST("/categories", c.CategoryHandler.Create)
		admin.PUT("/categories/:id", c.CategoryHandler.Update)
		admin.DELETE("/categories/:id", c.CategoryHandler.Delete)

		// Comments (moderation)
		admin.GET("/comments", c.CommentHandler.ListAll)
		admin.PATCH("/comments/:id", c.CommentHandler.Moderate)
		admin.DELETE("/comments/:id", c.CommentHandler.Delete)

		// Pages
		admin.GET("/pages", c.PageHandler.List)
		admin.GET("/pages/:id", c.PageHandler.GetByID)
		admin.POST("/pages", c.PageHandler.Create)
		admin.PUT("/pages/:id", c.PageHandler.Update)
		admin.DELETE("/pages/:id", c.PageHandler.Delete)

		// Layouts
		admin.GET("/layouts", c.LayoutHandler.List)
		admin.POST("/layouts", c.LayoutHandler.Create)
		admin.POST("/layouts/editor/apply", c.LayoutHandler.ApplyOp)
		admin.GET("/layouts/:id", c.LayoutHandler.GetByID)
		admin.PUT("/layouts/:id", c.LayoutHandler.Update)
		admin.POST("/layouts/:id/activate", c.LayoutHandler.Activate)
		admin.DELETE("/layouts/:id", c.LayoutHandler.Delete)

		// Settings
		admin.GET("/settings", c.SettingsHandler.List)
		admin.PUT("/settings", c.SettingsHandler.BulkUpsert)

		// Users
		admin.GET("/users", c.UserHandler.List)
		admin.PATCH("/users/:id", c.UserHandler.Update)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   getEnv("APP_VERSION", "1.0.0"),
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		c.JSON(200, health)
	}
}
