package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	draftRepo "civicjustice/database/repository/draft"
	"civicjustice/models"
	"civicjustice/services/report"
	"civicjustice/services/speech"
	"civicjustice/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxAttachmentSize caps a single uploaded attachment.
const maxAttachmentSize = 10 * 1024 * 1024

// ReportFormView is the issue report page.
type ReportFormView struct {
	Categories []string           `json:"categories"`
	Defaults   models.IssueReport `json:"defaults"`
	Steps      []models.Step      `json:"steps"`
	Helpline   Helpline           `json:"helpline"`
}

// Helpline is the urgent assistance box beside the form.
type Helpline struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
}

// ValidationErrorResponse lists the fields a report failed on.
type ValidationErrorResponse struct {
	Message     string              `json:"message"`
	FieldErrors []models.FieldError `json:"fieldErrors"`
}

// DraftResponse is a draft together with an optional toast.
type DraftResponse struct {
	Draft  *models.ReportDraft `json:"draft"`
	Notice *models.Notice      `json:"notice,omitempty"`
}

var howItWorks = []models.Step{
	{Number: 1, Title: "Submit Your Issue", Description: "Fill out the form with details about your civil legal issue."},
	{Number: 2, Title: "Review Process", Description: "A legal professional will review your case within 48 hours."},
	{Number: 3, Title: "Get Connected", Description: "You'll be matched with a qualified lawyer for consultation."},
	{Number: 4, Title: "Resolution", Description: "Work with your lawyer to resolve your legal issue."},
}

type ReportHandler struct {
	Svc report.ReportService
}

func NewReportHandler(svc report.ReportService) *ReportHandler {
	return &ReportHandler{Svc: svc}
}

// ReportFormHandler renders the empty report form.
func (h *ReportHandler) ReportFormHandler(c *gin.Context) {
	c.JSON(http.StatusOK, ReportFormView{
		Categories: append([]string(nil), models.IssueCategories...),
		Defaults:   models.NewIssueReport(),
		Steps:      append([]models.Step(nil), howItWorks...),
		Helpline: Helpline{
			Title:       "Need Urgent Assistance?",
			Description: "For urgent legal matters requiring immediate attention, please call our legal helpline.",
			Phone:       "+233 30 000 0000",
		},
	})
}

// SubmitReportHandler validates and submits a complete report in one request.
func (h *ReportHandler) SubmitReportHandler(c *gin.Context) {
	input := models.NewIssueReport()
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if input.Attachments == nil {
		input.Attachments = []string{}
	}

	res, err := h.Svc.Submit(c.Request.Context(), input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// CreateDraftHandler starts a new draft holding the form defaults.
func (h *ReportHandler) CreateDraftHandler(c *gin.Context) {
	draft, err := h.Svc.CreateDraft(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, DraftResponse{Draft: draft})
}

func (h *ReportHandler) GetDraftHandler(c *gin.Context) {
	draft, err := h.Svc.GetDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Draft: draft})
}

// UpdateDraftHandler applies a partial update of the form fields.
func (h *ReportHandler) UpdateDraftHandler(c *gin.Context) {
	var patch models.IssueReportPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	draft, err := h.Svc.UpdateDraft(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Draft: draft})
}

// DiscardDraftHandler abandons a draft.
func (h *ReportHandler) DiscardDraftHandler(c *gin.Context) {
	if err := h.Svc.DiscardDraft(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddAttachmentHandler attaches a file to the draft. The multipart "file" part is optional.
func (h *ReportHandler) AddAttachmentHandler(c *gin.Context) {
	upload, cleanup, err := receiveUpload(c, "file", "attachment-*", maxAttachmentSize)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid attachment", err.Error())
		return
	}
	defer cleanup()

	draft, notice, err := h.Svc.AddAttachment(c.Request.Context(), c.Param("id"), upload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Draft: draft, Notice: &notice})
}

func (h *ReportHandler) RemoveAttachmentHandler(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid attachment index", c.Param("index"))
		return
	}
	draft, err := h.Svc.RemoveAttachment(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Draft: draft})
}

// ToggleRecordingHandler starts or stops the audio recording. When stopping, an optional
// multipart "audio" WAV file and "language" field are passed on for transcription.
func (h *ReportHandler) ToggleRecordingHandler(c *gin.Context) {
	upload, cleanup, err := receiveUpload(c, "audio", "audio-*.wav", speech.MaxFileSize)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid audio file", err.Error())
		return
	}
	defer cleanup()

	if upload != nil {
		if err := speech.CheckAudioFile(upload.Name); err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid audio file", err.Error())
			return
		}
		upload.Language = c.DefaultPostForm("language", speech.DefaultLanguage)
	}

	draft, notice, err := h.Svc.ToggleRecording(c.Request.Context(), c.Param("id"), upload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Draft: draft, Notice: &notice})
}

// SubmitDraftHandler validates the draft and, when valid, submits and resets it.
func (h *ReportHandler) SubmitDraftHandler(c *gin.Context) {
	res, err := h.Svc.SubmitDraft(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ReportHandler) respondError(c *gin.Context, err error) {
	var vErr *report.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
			Message:     "Please correct the highlighted fields",
			FieldErrors: vErr.Fields,
		})
	case errors.Is(err, draftRepo.ErrDraftNotFound):
		utils.JSONError(c, http.StatusNotFound, "Draft not found", c.Param("id"))
	case errors.Is(err, report.ErrAttachmentIndex):
		utils.JSONError(c, http.StatusNotFound, "Attachment not found", c.Param("index"))
	case errors.Is(err, report.ErrUploadInProgress):
		utils.JSONError(c, http.StatusConflict, "An upload is already in progress", "")
	case errors.Is(err, context.Canceled):
		getLogger(c).Info("Request cancelled by client")
		c.Status(499)
	default:
		getLogger(c).Error("Report request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// receiveUpload saves the named multipart file to a temp file. A request without that part
// yields a nil upload. cleanup is always safe to call.
func receiveUpload(c *gin.Context, field, pattern string, maxSize int64) (*report.Upload, func(), error) {
	noop := func() {}
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, noop, nil
	}

	fileHeader, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, err
	}
	if fileHeader.Size > maxSize {
		return nil, noop, fmt.Errorf("file exceeds %d bytes", maxSize)
	}

	tempPath, err := saveTemp(fileHeader, pattern)
	if err != nil {
		return nil, noop, err
	}
	return &report.Upload{
		Name: filepath.Base(fileHeader.Filename),
		Path: tempPath,
	}, func() { os.Remove(tempPath) }, nil
}

func saveTemp(fileHeader *multipart.FileHeader, pattern string) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to save upload: %w", err)
	}
	return dst.Name(), nil
}
