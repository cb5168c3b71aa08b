package handlers

import (
	"net/http"

	"civicjustice/models"

	"github.com/gin-gonic/gin"
)

// InterfaceLanguage is an option of the sidebar language picker.
type InterfaceLanguage struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Layout is the chrome shared by every page.
type Layout struct {
	AppName    string              `json:"appName"`
	Navigation []models.NavItem    `json:"navigation"`
	Languages  []InterfaceLanguage `json:"languages"`
	Language   string              `json:"language"`
}

// HomeView is the landing page.
type HomeView struct {
	Layout   Layout           `json:"layout"`
	Title    string           `json:"title"`
	Subtitle string           `json:"subtitle"`
	Actions  []models.Action  `json:"actions"`
	Features []models.Feature `json:"features"`
	About    AboutSection     `json:"about"`
}

// AboutSection describes the platform below the feature cards.
type AboutSection struct {
	Title string   `json:"title"`
	Text  string   `json:"text"`
	Tags  []string `json:"tags"`
}

var navigation = []models.NavItem{
	{Label: "Home", Path: "/"},
	{Label: "Find Lawyers", Path: "/lawyers"},
	{Label: "Constitution", Path: "/constitution"},
	{Label: "Report Issue", Path: "/report-issue"},
}

var interfaceLanguages = []InterfaceLanguage{
	{Code: "en", Name: "English"},
	{Code: "ak", Name: "Akan (Twi)"},
	{Code: "ee", Name: "Ewe"},
	{Code: "gaa", Name: "Ga"},
	{Code: "ha", Name: "Hausa"},
}

var features = []models.Feature{
	{
		Title:       "Find Lawyers",
		Description: "Connect with verified legal practitioners for advice or representation.",
		Path:        "/lawyers",
	},
	{
		Title:       "Constitution of Ghana",
		Description: "Access and search the full Constitution with multilingual support.",
		Path:        "/constitution",
	},
	{
		Title:       "Report an Issue",
		Description: "File a civil issue report and get connected with legal help.",
		Path:        "/report-issue",
	},
}

const aboutText = "CivicJustice is a platform designed to empower citizens in Ghana by making civil legal " +
	"support accessible, efficient, and multilingual. Our mission is to bridge the gap between " +
	"citizens and legal practitioners, providing tools for civil issue reporting, legal " +
	"consultations, and access to constitutional resources."

func newLayout() Layout {
	return Layout{
		AppName:    "CivicJustice",
		Navigation: append([]models.NavItem(nil), navigation...),
		Languages:  append([]InterfaceLanguage(nil), interfaceLanguages...),
		Language:   "en",
	}
}

// HomeHandler renders the landing page.
func HomeHandler(c *gin.Context) {
	c.JSON(http.StatusOK, HomeView{
		Layout:   newLayout(),
		Title:    "Welcome to CivicJustice",
		Subtitle: "Empowering citizens with accessible legal support and resources",
		Actions: []models.Action{
			{Label: "Report an Issue", Path: "/report-issue"},
			{Label: "Find a Lawyer", Path: "/lawyers"},
		},
		Features: append([]models.Feature(nil), features...),
		About: AboutSection{
			Title: "About CivicJustice",
			Text:  aboutText,
			Tags:  []string{"Civil Rights", "Legal Support", "Constitution Access", "Multilingual"},
		},
	})
}
