package episodes

import (
	"github.com/gin-gonic/gin"

	"github.com/lisapod/lisapod-api/api/types"
	"github.com/lisapod/lisapod-api/internal/services/orchestrator"
)

// RegisterRoutes registers episode generation routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// POST /api/v1/podcasts/episodes - Queue generation of the next episode
	router.POST("/episodes", PostGenerate(deps))
}

func orchestratorRequest(req types.GenerateEpisodeRequest) orchestrator.Request {
	return orchestrator.Request{
		UserID:       req.UserID,
		DisplayName:  req.DisplayName,
		Topic:        req.Topic,
		Language:     req.Language,
		EpisodeIndex: req.EpisodeIndex,
	}
}
