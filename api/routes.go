package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/lisapod/lisapod-api/api/admin"
	"github.com/lisapod/lisapod-api/api/episodes"
	"github.com/lisapod/lisapod-api/api/health"
	"github.com/lisapod/lisapod-api/api/jobs"
	"github.com/lisapod/lisapod-api/api/podcasts"
	"github.com/lisapod/lisapod-api/api/types"
	"github.com/lisapod/lisapod-api/api/version"
	_ "github.com/lisapod/lisapod-api/docs/swagger"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	if deps == nil {
		deps = &types.Dependencies{}
	}

	v1 := engine.Group("/api/v1")

	// Generation requests trigger remote LLM and speech synthesis calls, so
	// they get a much tighter rate limit than reads (1 req/s, burst of 2).
	podcastGroup := v1.Group("/podcasts")
	generateMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 1, 2)
	readMiddleware := PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20)

	generateGroup := podcastGroup.Group("")
	generateGroup.Use(generateMiddleware)
	episodes.RegisterRoutes(generateGroup, deps)

	readGroup := podcastGroup.Group("")
	readGroup.Use(readMiddleware)
	podcasts.RegisterRoutes(readGroup, deps)

	// Job polling gets a generous limit (20 req/s, burst of 30)
	jobGroup := v1.Group("/jobs")
	jobGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 20, 30))
	jobs.RegisterRoutes(jobGroup, deps)

	// Admin routes share the general read limit
	adminGroup := v1.Group("/admin")
	adminGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
	admin.RegisterRoutes(adminGroup, deps)

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(404, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
