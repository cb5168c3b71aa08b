package handlers

import (
	"errors"
	"net/http"
	"strconv"

	lawyerRepo "civicjustice/database/repository/lawyer"
	"civicjustice/models"
	"civicjustice/services/lawyer"
	"civicjustice/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const noLawyersMessage = "No lawyers found matching your criteria. Please try different filters."

// LawyerDirectoryView is the filterable lawyer directory.
type LawyerDirectoryView struct {
	Criteria     lawyer.SearchCriteria  `json:"criteria"`
	Options      lawyer.Lookups         `json:"options"`
	Lawyers      []models.LawyerProfile `json:"lawyers"`
	Count        int                    `json:"count"`
	EmptyMessage string                 `json:"emptyMessage,omitempty"`
}

type LawyerHandler struct {
	Svc lawyer.LawyerService
}

func NewLawyerHandler(svc lawyer.LawyerService) *LawyerHandler {
	return &LawyerHandler{Svc: svc}
}

// ListLawyersHandler filters the directory by the q, specialty, region and language query parameters.
func (h *LawyerHandler) ListLawyersHandler(c *gin.Context) {
	logger := getLogger(c)

	var criteria lawyer.SearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid query", err.Error())
		return
	}
	criteria = h.Svc.Normalize(criteria)

	lawyers, err := h.Svc.Search(criteria)
	if err != nil {
		var selErr *lawyer.SelectorError
		if errors.As(err, &selErr) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid "+selErr.Selector, selErr.Error())
			return
		}
		logger.Error("Failed to search lawyers", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to search lawyers", "")
		return
	}

	view := LawyerDirectoryView{
		Criteria: criteria,
		Options:  h.Svc.Lookups(),
		Lawyers:  lawyers,
		Count:    len(lawyers),
	}
	if len(lawyers) == 0 {
		view.EmptyMessage = noLawyersMessage
	}
	c.JSON(http.StatusOK, view)
}

// GetLawyerHandler returns a single lawyer profile.
func (h *LawyerHandler) GetLawyerHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid lawyer id", c.Param("id"))
		return
	}

	profile, err := h.Svc.GetByID(id)
	if err != nil {
		if errors.Is(err, lawyerRepo.ErrLawyerNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Lawyer not found", c.Param("id"))
			return
		}
		getLogger(c).Error("Failed to get lawyer", zap.Int("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to get lawyer", "")
		return
	}
	c.JSON(http.StatusOK, profile)
}
