package models

// NavItem is an entry of the sidebar navigation.
type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Feature is a card on the home page.
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Path        string `json:"path"`
}

// Step is one stage of the "how it works" explanation on the report page.
type Step struct {
	Number      int    `json:"number"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Action is a button in a view that leads somewhere.
type Action struct {
	Label string `json:"label"`
	Path  string `json:"path,omitempty"`
}
