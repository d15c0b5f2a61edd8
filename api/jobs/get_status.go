package jobs

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lisapod/lisapod-api/api/types"
	"github.com/lisapod/lisapod-api/internal/models"
	jobsService "github.com/lisapod/lisapod-api/internal/services/jobs"
)

// GetStatus returns the state of a generation job
// @Summary      Get job status
// @Description  Poll a queued generation job. A completed job carries the generated
// @Description  script and artifact locations; a failed job carries the error code
// @Description  of the step that failed.
// @Tags         jobs
// @Produce      json
// @Param        id path int true "Job ID" minimum(1)
// @Success      200 {object} types.JobStatusResponse "Job state"
// @Failure      400 {object} types.ErrorResponse "Invalid job ID"
// @Failure      404 {object} types.ErrorResponse "Job not found"
// @Router       /api/v1/jobs/{id} [get]
func GetStatus(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		jobID, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		job, err := deps.JobService.GetJob(c.Request.Context(), jobID)
		if err != nil {
			if errors.Is(err, jobsService.ErrJobNotFound) {
				types.SendNotFound(c, "Job not found")
				return
			}
			log.Printf("[ERROR] Failed to get job %d: %v", jobID, err)
			types.SendInternalError(c, "Failed to load job")
			return
		}

		response := types.JobStatusResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Job retrieved successfully",
			},
			JobID:       job.ID,
			JobStatus:   string(job.Status),
			ErrorCode:   job.ErrorCode,
			Error:       job.Error,
			CreatedAt:   job.CreatedAt,
			CompletedAt: job.CompletedAt,
		}
		if job.Status == models.JobStatusCompleted {
			response.Result = job.Result.Data()
		}

		c.JSON(http.StatusOK, response)
	}
}
