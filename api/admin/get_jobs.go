package admin

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lisapod/lisapod-api/api/types"
	"github.com/lisapod/lisapod-api/internal/models"
)

// JobsResponse lists generation jobs in one status
type JobsResponse struct {
	types.BaseResponse
	Jobs  []*models.Job `json:"jobs"`
	Count int           `json:"count"`
}

var validJobStatuses = map[models.JobStatus]bool{
	models.JobStatusPending:    true,
	models.JobStatusProcessing: true,
	models.JobStatusCompleted:  true,
	models.JobStatusFailed:     true,
}

// GetJobs lists recent generation jobs filtered by status
// @Summary      List jobs
// @Description  List recent generation jobs in the given status, newest first.
// @Description  Defaults to failed jobs, which are terminal and otherwise only
// @Description  visible one at a time through the job polling endpoint.
// @Tags         admin
// @Produce      json
// @Param        status query string false "Job status" Enums(pending, processing, completed, failed) default(failed)
// @Param        limit  query int    false "Maximum number of jobs" default(50)
// @Success      200 {object} JobsResponse "Job list"
// @Failure      400 {object} types.ErrorResponse "Unknown status"
// @Failure      500 {object} types.ErrorResponse "Failed to list jobs"
// @Router       /api/v1/admin/jobs [get]
func GetJobs(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := models.JobStatus(c.DefaultQuery("status", string(models.JobStatusFailed)))
		if !validJobStatuses[status] {
			types.SendBadRequest(c, "Unknown job status: "+string(status))
			return
		}

		limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
		if err != nil || limit < 0 {
			types.SendBadRequest(c, "Invalid limit")
			return
		}

		jobs, err := deps.JobService.ListJobsByStatus(c.Request.Context(), status, limit)
		if err != nil {
			log.Printf("[ERROR] Failed to list %s jobs: %v", status, err)
			types.SendInternalError(c, "Failed to list jobs")
			return
		}

		c.JSON(http.StatusOK, JobsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Jobs retrieved successfully",
			},
			Jobs:  jobs,
			Count: len(jobs),
		})
	}
}
