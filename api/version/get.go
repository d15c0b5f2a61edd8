package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      Service version
// @Description  Name and version of the service.
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]interface{} "Version info"
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Lisapod API",
			"version":     "1.0.0",
			"description": "API for generating serialized podcasts",
			"status":      "running",
		})
	}
}
