package admin

import (
	"github.com/gin-gonic/gin"

	"github.com/lisapod/lisapod-api/api/types"
)

// RegisterRoutes registers admin routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/admin/users - List users with podcast counts
	router.GET("/users", GetUsers(deps))

	// GET /api/v1/admin/stats - Aggregate usage statistics
	router.GET("/stats", GetStats(deps))

	// GET /api/v1/admin/podcasts/:user_id - Inspect one user's podcast
	router.GET("/podcasts/:user_id", GetPodcast(deps))

	// GET /api/v1/admin/jobs - List generation jobs by status
	router.GET("/jobs", GetJobs(deps))
}
