package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Page endpoints
	HomeHandler     gin.HandlerFunc
	NotFoundHandler gin.HandlerFunc
	HealthHandler   gin.HandlerFunc

	// Lawyer directory endpoints
	ListLawyersHandler gin.HandlerFunc
	GetLawyerHandler   gin.HandlerFunc

	// Constitution endpoints
	BrowseConstitutionHandler gin.HandlerFunc
	GetChapterHandler         gin.HandlerFunc

	// Report endpoints
	ReportFormHandler       gin.HandlerFunc
	SubmitReportHandler     gin.HandlerFunc
	CreateDraftHandler      gin.HandlerFunc
	GetDraftHandler         gin.HandlerFunc
	UpdateDraftHandler      gin.HandlerFunc
	DiscardDraftHandler     gin.HandlerFunc
	AddAttachmentHandler    gin.HandlerFunc
	RemoveAttachmentHandler gin.HandlerFunc
	ToggleRecordingHandler  gin.HandlerFunc
	SubmitDraftHandler      gin.HandlerFunc
}
