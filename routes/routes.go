package routes

import (
	"time"

	"civicjustice/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPageRoutes registers the home, lawyer directory and constitution endpoints.
func RegisterPageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/", hb.HomeHandler)

	lawyers := r.Group("/lawyers")
	{
		lawyers.GET("", hb.ListLawyersHandler)
		lawyers.GET("/:id", hb.GetLawyerHandler)
	}

	constitution := r.Group("/constitution")
	{
		constitution.GET("", hb.BrowseConstitutionHandler)
		constitution.GET("/chapters/:id", hb.GetChapterHandler)
	}
}

// RegisterReportRoutes registers the issue report form and its drafts.
func RegisterReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	reportGroup := r.Group("/report-issue")
	{
		reportGroup.GET("", hb.ReportFormHandler)
		reportGroup.POST("", hb.SubmitReportHandler)

		drafts := reportGroup.Group("/drafts")
		drafts.POST("", hb.CreateDraftHandler)
		drafts.GET("/:id", hb.GetDraftHandler)
		drafts.PATCH("/:id", hb.UpdateDraftHandler)
		drafts.DELETE("/:id", hb.DiscardDraftHandler)
		drafts.POST("/:id/attachments", hb.AddAttachmentHandler)
		drafts.DELETE("/:id/attachments/:index", hb.RemoveAttachmentHandler)
		drafts.POST("/:id/recording", hb.ToggleRecordingHandler)
		drafts.POST("/:id/submit", hb.SubmitDraftHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPageRoutes(r, hb)
	RegisterReportRoutes(r, hb)
	RegisterHealthRoute(r, hb)
	r.NoRoute(hb.NotFoundHandler)
}
