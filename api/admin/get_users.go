package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lisapod/lisapod-api/api/types"
	"github.com/lisapod/lisapod-api/internal/services/podcasts"
)

// UsersResponse lists every known user with their podcast count
type UsersResponse struct {
	types.BaseResponse
	Users []podcasts.UserSummary `json:"users"`
	Count int                    `json:"count"`
}

// GetUsers lists all users and their podcast counts
// @Summary      List users
// @Description  List every user that has interacted with the service, with the
// @Description  number of podcasts each one holds.
// @Tags         admin
// @Produce      json
// @Success      200 {object} UsersResponse "User list"
// @Failure      500 {object} types.ErrorResponse "Failed to list users"
// @Router       /api/v1/admin/users [get]
func GetUsers(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := deps.PodcastService.ListUsers(c.Request.Context())
		if err != nil {
			log.Printf("[ERROR] Failed to list users: %v", err)
			types.SendInternalError(c, "Failed to list users")
			return
		}

		c.JSON(http.StatusOK, UsersResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Users retrieved successfully",
			},
			Users: users,
			Count: len(users),
		})
	}
}
