package handlers

import (
	"net/http"

	"civicjustice/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotFoundView is returned for any route that does not exist.
type NotFoundView struct {
	Code        string          `json:"code"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Actions     []models.Action `json:"actions"`
}

// NotFoundHandler logs the unknown path and renders the not-found page.
func NotFoundHandler(c *gin.Context) {
	getLogger(c).Error("404 Error: User attempted to access non-existent route", zap.String("path", c.Request.URL.Path))
	c.JSON(http.StatusNotFound, NotFoundView{
		Code:        "404",
		Title:       "Page Not Found",
		Description: "The page you are looking for doesn't exist or has been moved.",
		Actions: []models.Action{
			{Label: "Return to Home", Path: "/"},
			{Label: "Go Back"},
		},
	})
}
