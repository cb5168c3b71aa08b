package models

import "time"

// IssueCategories is the fixed set of categories a report may be filed under.
var IssueCategories = []string{
	"Land Dispute",
	"Property Rights",
	"Family Matter",
	"Employment Issue",
	"Consumer Protection",
	"Abuse or Harassment",
	"Other Civil Matter",
}

// IsIssueCategory reports whether c is one of IssueCategories.
func IsIssueCategory(c string) bool {
	for _, known := range IssueCategories {
		if known == c {
			return true
		}
	}
	return false
}

// IssueReport is the content of the report form.
type IssueReport struct {
	FullName    string   `json:"fullName" bson:"fullName" validate:"min=2"`
	Email       string   `json:"email" bson:"email" validate:"email"`
	Phone       string   `json:"phone" bson:"phone" validate:"min=10"`
	Category    string   `json:"category" bson:"category" validate:"category"`
	Description string   `json:"description" bson:"description" validate:"min=10"`
	Location    string   `json:"location" bson:"location,omitempty"`
	Anonymous   bool     `json:"anonymous" bson:"anonymous"`
	ContactMe   bool     `json:"contactMe" bson:"contactMe"`
	Attachments []string `json:"attachments" bson:"attachments"`
}

// NewIssueReport returns a report holding the form defaults.
func NewIssueReport() IssueReport {
	return IssueReport{
		ContactMe:   true,
		Attachments: []string{},
	}
}

// IssueReportPatch carries a partial update of a draft; nil fields are left alone.
type IssueReportPatch struct {
	FullName    *string `json:"fullName"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Anonymous   *bool   `json:"anonymous"`
	ContactMe   *bool   `json:"contactMe"`
}

// Apply copies every non-nil field of p onto r.
func (p IssueReportPatch) Apply(r *IssueReport) {
	if p.FullName != nil {
		r.FullName = *p.FullName
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
	if p.Phone != nil {
		r.Phone = *p.Phone
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.Anonymous != nil {
		r.Anonymous = *p.Anonymous
	}
	if p.ContactMe != nil {
		r.ContactMe = *p.ContactMe
	}
}

// ReportDraft is the in-progress state of one report form.
type ReportDraft struct {
	ID        string      `json:"id"`
	Report    IssueReport `json:"report"`
	Recording bool        `json:"recording"`
	Attaching bool        `json:"attaching"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// Reset puts the draft back to the form defaults.
func (d *ReportDraft) Reset() {
	d.Report = NewIssueReport()
	d.Recording = false
	d.Attaching = false
}

// SubmittedReport is what the intake service receives.
type SubmittedReport struct {
	ID          string      `json:"id" bson:"id"`
	Report      IssueReport `json:"report" bson:"report"`
	SubmittedAt time.Time   `json:"submittedAt" bson:"submittedAt"`
}

// FieldError is a validation failure scoped to one form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
