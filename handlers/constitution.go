package handlers

import (
	"errors"
	"net/http"
	"strconv"

	constitutionRepo "civicjustice/database/repository/constitution"
	"civicjustice/models"
	"civicjustice/services/constitution"
	"civicjustice/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	searchPromptMessage  = "Enter a search term to find relevant articles in the Constitution."
	searchNoMatchMessage = "No articles found matching your search criteria."
)

// ConstitutionView is the constitution browser.
type ConstitutionView struct {
	Languages []models.ConstitutionLanguage `json:"languages"`
	Language  models.ConstitutionLanguage   `json:"language"`
	Chapters  []models.ChapterSummary       `json:"chapters"`
	Chapter   models.ConstitutionChapter    `json:"chapter"`
	Search    SearchSection                 `json:"search"`
	Bookmarks BookmarksSection              `json:"bookmarks"`
}

// SearchSection holds the article search results, or a message when there are none to show.
type SearchSection struct {
	Query   string           `json:"query"`
	Results []models.Article `json:"results"`
	Message string           `json:"message,omitempty"`
}

// BookmarksSection is a placeholder until accounts exist.
type BookmarksSection struct {
	Message string        `json:"message"`
	Action  models.Action `json:"action"`
}

type ConstitutionHandler struct {
	Svc constitution.ConstitutionService
}

func NewConstitutionHandler(svc constitution.ConstitutionService) *ConstitutionHandler {
	return &ConstitutionHandler{Svc: svc}
}

// BrowseConstitutionHandler renders the browser for the chapter, lang and q query parameters.
func (h *ConstitutionHandler) BrowseConstitutionHandler(c *gin.Context) {
	chapterID := constitution.DefaultChapterID
	if raw := c.Query("chapter"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid chapter id", raw)
			return
		}
		chapterID = id
	}

	lang, err := h.Svc.Language(c.Query("lang"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid language", c.Query("lang"))
		return
	}

	chapter, err := h.Svc.Chapter(chapterID)
	if err != nil {
		h.chapterError(c, chapterID, err)
		return
	}

	query := c.Query("q")
	section := SearchSection{Query: query, Results: []models.Article{}}
	if query == "" {
		section.Message = searchPromptMessage
	} else {
		section.Results = h.Svc.SearchArticles(query)
		if len(section.Results) == 0 {
			section.Message = searchNoMatchMessage
		}
	}

	chapters := h.Svc.Chapters()
	summaries := make([]models.ChapterSummary, 0, len(chapters))
	for _, ch := range chapters {
		summaries = append(summaries, models.ChapterSummary{ID: ch.ID, Title: ch.Title, Selected: ch.ID == chapter.ID})
	}

	c.JSON(http.StatusOK, ConstitutionView{
		Languages: h.Svc.Languages(),
		Language:  *lang,
		Chapters:  summaries,
		Chapter:   *chapter,
		Search:    section,
		Bookmarks: BookmarksSection{
			Message: "Your bookmarked articles will appear here.",
			Action:  models.Action{Label: "Sign in to save bookmarks"},
		},
	})
}

// GetChapterHandler returns one chapter with its articles.
func (h *ConstitutionHandler) GetChapterHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid chapter id", c.Param("id"))
		return
	}
	chapter, err := h.Svc.Chapter(id)
	if err != nil {
		h.chapterError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, chapter)
}

func (h *ConstitutionHandler) chapterError(c *gin.Context, id int, err error) {
	if errors.Is(err, constitutionRepo.ErrChapterNotFound) {
		utils.JSONError(c, http.StatusNotFound, "Chapter not found", strconv.Itoa(id))
		return
	}
	getLogger(c).Error("Failed to get chapter", zap.Int("id", id), zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Failed to get chapter", "")
}
