package podcasts

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lisapod/lisapod-api/api/types"
	podcastsService "github.com/lisapod/lisapod-api/internal/services/podcasts"
)

// GetPodcast returns a user's podcast with its ordered episode segments
// @Summary      Get podcast
// @Description  Retrieve a user's podcast: topic, lineup, generation progress and
// @Description  every generated episode in order.
// @Tags         podcasts
// @Produce      json
// @Param        user_id path string true "User ID" example(user-42)
// @Success      200 {object} types.PodcastResponse "Podcast with episode segments"
// @Failure      404 {object} types.ErrorResponse "No podcast exists for the user"
// @Failure      500 {object} types.ErrorResponse "Failed to load podcast"
// @Router       /api/v1/podcasts/{user_id} [get]
func GetPodcast(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")

		podcast, err := deps.PodcastService.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			if podcastsService.IsNotFound(err) {
				types.SendNotFound(c, "No podcast exists for user "+userID)
				return
			}
			log.Printf("[ERROR] Failed to get podcast for user %s: %v", userID, err)
			types.SendInternalError(c, "Failed to load podcast")
			return
		}

		segments := make([]types.EpisodeSegmentView, 0, len(podcast.Segments))
		for _, segment := range podcast.Segments {
			segments = append(segments, types.EpisodeSegmentView{
				Index:     segment.Index,
				Script:    segment.Script,
				AudioPath: segment.AudioPath,
			})
		}

		c.JSON(http.StatusOK, types.PodcastResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Podcast retrieved successfully",
			},
			UserID:       podcast.UserID,
			Topic:        podcast.Topic,
			Language:     podcast.Language,
			Lineup:       podcast.Lineup,
			CurrentIndex: podcast.CurrentIndex,
			Complete:     podcast.IsComplete(episodeCount()),
			IntroPath:    podcast.IntroPath,
			Segments:     segments,
			CreatedAt:    podcast.CreatedAt,
		})
	}
}
