package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookcatalog-backend/internal/shared/middleware"
	"bookcatalog-backend/pkg/container"
)

// SetupRouter wires all routes. Catalog reads are open; every mutation and
// anything favorites-related requires a bearer access token.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	auth := middleware.RequireAuth(c.JWTManager)

	router.GET("/health", healthCheckHandler(c))

	// Identity
	router.POST("/register", c.UserHandler.Register)
	router.POST("/login", c.UserHandler.Login)
	router.POST("/refresh", c.UserHandler.Refresh)

	// Authors
	authors := router.Group("/authors")
	{
		authors.GET("", c.AuthorHandler.List)
		authors.GET("/:id", c.AuthorHandler.Get)
		authors.POST("", auth, c.AuthorHandler.Create)
		authors.PUT("/:id", auth, c.AuthorHandler.Update)
		authors.PATCH("/:id", auth, c.AuthorHandler.Update)
		authors.DELETE("/:id", auth, c.AuthorHandler.Delete)
	}

	// Books
	books := router.Group("/books")
	{
		books.GET("", c.BookHandler.List)
		books.GET("/:id", c.BookHandler.Get)
		books.POST("", auth, c.BookHandler.Create)
		books.PUT("/:id", auth, c.BookHandler.Update)
		books.PATCH("/:id", auth, c.BookHandler.Update)
		books.DELETE("/:id", auth, c.BookHandler.Delete)
	}

	// Favorites (all routes authenticated; delete takes the book id in
	// the body)
	favorites := router.Group("/favorites", auth)
	{
		favorites.GET("", c.FavoriteHandler.List)
		favorites.POST("", c.FavoriteHandler.Create)
		favorites.DELETE("", c.FavoriteHandler.Delete)
	}

	return router
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		overall := "ok"
		dbStatus := "ok"
		cacheStatus := "ok"

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			overall = "degraded"
			dbStatus = "unavailable"
		}
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "unavailable"
		}

		ctx.JSON(status, gin.H{
			"status":   overall,
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
