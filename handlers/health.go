package handlers

import (
	"net/http"

	"civicjustice/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness together with the last dependency check.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"message":      "Hi, I'm CivicJustice",
		"dependencies": utils.GetHealthStatus(),
	})
}
