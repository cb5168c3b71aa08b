package models

import "strings"

// Contact holds how a lawyer can be reached.
type Contact struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// LawyerProfile is a directory entry.
type LawyerProfile struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Specialty string   `json:"specialty"`
	Location  string   `json:"location"`
	Languages []string `json:"languages"`
	Rating    float64  `json:"rating"`
	Image     string   `json:"image"`
	Contact   Contact  `json:"contact"`
}

// Region is the part of Location after the last comma, e.g. "Ashanti" for "Kumasi, Ashanti".
func (l LawyerProfile) Region() string {
	i := strings.LastIndex(l.Location, ",")
	if i < 0 {
		return strings.TrimSpace(l.Location)
	}
	return strings.TrimSpace(l.Location[i+1:])
}
