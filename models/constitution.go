package models

// Article is a single numbered provision of the constitution.
type Article struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

// ConstitutionChapter groups articles under a chapter heading.
type ConstitutionChapter struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Articles []Article `json:"articles"`
}

// ChapterSummary is the chapter list entry shown in the browser sidebar.
type ChapterSummary struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Selected bool   `json:"selected"`
}

// ConstitutionLanguage is a reading language offered by the browser.
type ConstitutionLanguage struct {
	Code string `json:"code"`
	Name string `json:"name"`
}
