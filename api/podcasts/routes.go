package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/lisapod/lisapod-api/api/types"
	"github.com/lisapod/lisapod-api/pkg/config"
)

// RegisterRoutes registers podcast routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/podcasts/:user_id - Get a user's podcast with segments
	router.GET("/:user_id", GetPodcast(deps))

	// DELETE /api/v1/podcasts/:user_id - Clear a user's podcast
	router.DELETE("/:user_id", DeletePodcast(deps))
}

func episodeCount() int {
	if cfg, err := config.GetConfig(); err == nil && cfg.Generation.EpisodeCount > 0 {
		return cfg.Generation.EpisodeCount
	}
	return 5
}
