package episodes

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lisapod/lisapod-api/api/types"
	"github.com/lisapod/lisapod-api/internal/models"
)

// PostGenerate queues generation of the next episode for a user
// @Summary      Request episode generation
// @Description  Queue generation of one episode. Episode 1 bootstraps a new podcast
// @Description  from the given topic; later episodes continue the stored lineup and
// @Description  must be requested strictly in order. The request is validated
// @Description  synchronously and processed in the background; poll the returned job
// @Description  to observe the outcome. Failed generations are never retried
// @Description  automatically: submit the same request again to retry.
// @Tags         episodes
// @Accept       json
// @Produce      json
// @Param        request body types.GenerateEpisodeRequest true "Generation request"
// @Success      202 {object} types.GenerateAcceptedResponse "Request accepted and queued"
// @Failure      400 {object} types.ErrorResponse "Invalid request body or episode index"
// @Failure      404 {object} types.ErrorResponse "No podcast exists for the user"
// @Failure      409 {object} types.ErrorResponse "Out-of-order index, existing podcast, or generation in progress"
// @Router       /api/v1/podcasts/episodes [post]
func PostGenerate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.GenerateEpisodeRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		if err := deps.Orchestrator.Validate(c.Request.Context(), orchestratorRequest(req)); err != nil {
			types.SendAppError(c, err)
			return
		}

		job, err := deps.JobService.EnqueueUnique(c.Request.Context(), models.GenerationPayload{
			UserID:       req.UserID,
			DisplayName:  req.DisplayName,
			Topic:        req.Topic,
			Language:     req.Language,
			EpisodeIndex: req.EpisodeIndex,
		}, "api")
		if err != nil {
			log.Printf("[ERROR] Failed to enqueue generation for user %s: %v", req.UserID, err)
			types.SendInternalError(c, "Failed to queue generation")
			return
		}

		c.JSON(http.StatusAccepted, types.GenerateAcceptedResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusQueued,
				Message: "Episode generation queued",
			},
			JobID:        job.ID,
			UserID:       req.UserID,
			EpisodeIndex: req.EpisodeIndex,
		})
	}
}
