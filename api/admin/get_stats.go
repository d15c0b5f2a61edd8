package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lisapod/lisapod-api/api/types"
	"github.com/lisapod/lisapod-api/internal/services/podcasts"
)

// StatsResponse carries aggregate usage numbers
type StatsResponse struct {
	types.BaseResponse
	Stats *podcasts.UsageStats `json:"stats"`
}

// GetStats returns aggregate usage statistics
// @Summary      Usage statistics
// @Description  Total users and podcasts, podcasts grouped by language and podcasts
// @Description  created today.
// @Tags         admin
// @Produce      json
// @Success      200 {object} StatsResponse "Usage statistics"
// @Failure      500 {object} types.ErrorResponse "Failed to compute statistics"
// @Router       /api/v1/admin/stats [get]
func GetStats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := deps.PodcastService.Stats(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to compute stats: %v", err)
			types.SendInternalError(c, "Failed to compute statistics")
			return
		}

		c.JSON(http.StatusOK, StatsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Statistics retrieved successfully",
			},
			Stats: stats,
		})
	}
}
