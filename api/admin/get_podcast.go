package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lisapod/lisapod-api/api/types"
	"github.com/lisapod/lisapod-api/internal/services/podcasts"
)

// PodcastViewResponse carries the admin view of one user's podcast
type PodcastViewResponse struct {
	types.BaseResponse
	Podcast *podcasts.PodcastView `json:"podcast"`
}

// GetPodcast returns the admin view of a user's podcast
// @Summary      Inspect a user's podcast
// @Description  Admin view of one podcast: progress, status and whether each audio
// @Description  artifact is actually present on storage.
// @Tags         admin
// @Produce      json
// @Param        user_id path string true "User ID" example(user-42)
// @Success      200 {object} PodcastViewResponse "Podcast view"
// @Failure      404 {object} types.ErrorResponse "No podcast exists for the user"
// @Failure      500 {object} types.ErrorResponse "Failed to inspect podcast"
// @Router       /api/v1/admin/podcasts/{user_id} [get]
func GetPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		view, err := deps.PodcastService.Describe(c.Request.Context(), userID)
		if err != nil {
			if podcasts.IsNotFound(err) {
				types.SendNotFound(c, "No podcast exists for user "+userID)
				return
			}
			log.Printf("[ERROR] Failed to describe podcast for user %s: %v", userID, err)
			types.SendInternalError(c, "Failed to inspect podcast")
			return
		}

		c.JSON(http.StatusOK, PodcastViewResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Podcast retrieved successfully",
			},
			Podcast: view,
		})
	}
}
