package podcasts

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lisapod/lisapod-api/api/types"
	podcastsService "github.com/lisapod/lisapod-api/internal/services/podcasts"
)

// DeletePodcast clears a user's podcast so they can start over
// @Summary      Clear podcast
// @Description  Delete a user's podcast record and best-effort delete its audio
// @Description  artifacts. The user can bootstrap a new podcast afterwards.
// @Tags         podcasts
// @Produce      json
// @Param        user_id path string true "User ID" example(user-42)
// @Success      200 {object} types.BaseResponse "Podcast cleared"
// @Failure      404 {object} types.ErrorResponse "No podcast exists for the user"
// @Failure      500 {object} types.ErrorResponse "Failed to clear podcast"
// @Router       /api/v1/podcasts/{user_id} [delete]
func DeletePodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		if err := deps.PodcastService.Clear(c.Request.Context(), userID); err != nil {
			if podcastsService.IsNotFound(err) {
				types.SendNotFound(c, "No podcast exists for user "+userID)
				return
			}
			log.Printf("[ERROR] Failed to clear podcast for user %s: %v", userID, err)
			types.SendInternalError(c, "Failed to clear podcast")
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Podcast cleared successfully",
		})
	}
}
