package jobs

import (
	"github.com/gin-gonic/gin"

	"github.com/lisapod/lisapod-api/api/types"
)

// RegisterRoutes registers job routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/jobs/:id - Poll a generation job
	router.GET("/:id", GetStatus(deps))
}
