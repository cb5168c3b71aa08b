package report

import (
	"strings"
	"testing"

	"civicjustice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validReport() models.IssueReport {
	r := models.NewIssueReport()
	r.FullName = "Ama Serwaa"
	r.Email = "ama.serwaa@example.com"
	r.Phone = "+233 24 987 6543"
	r.Category = "Family Matter"
	r.Description = "My landlord has locked me out of my home."
	return r
}

func TestValidate_ValidReport(t *testing.T) {
	assert.Empty(t, Validate(validReport()))
}

func TestValidate_DescriptionBoundary(t *testing.T) {
	r := validReport()

	r.Description = strings.Repeat("x", 9)
	errs := Validate(r)
	require.Len(t, errs, 1)
	assert.Equal(t, models.FieldError{Field: "description", Message: "Description must be at least 10 characters"}, errs[0])

	r.Description = strings.Repeat("x", 10)
	assert.Empty(t, Validate(r))
}

func TestValidate_CountsCharactersNotBytes(t *testing.T) {
	r := validReport()
	r.FullName = "Ɔ"
	require.Len(t, Validate(r), 1)

	r.FullName = "Ɔb"
	assert.Empty(t, Validate(r))
}

func TestValidate_EachField(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.IssueReport)
		field   string
		message string
	}{
		{"short name", func(r *models.IssueReport) { r.FullName = "A" }, "fullName", "Full name is required"},
		{"bad email", func(r *models.IssueReport) { r.Email = "not-an-email" }, "email", "Invalid email address"},
		{"empty email", func(r *models.IssueReport) { r.Email = "" }, "email", "Invalid email address"},
		{"short phone", func(r *models.IssueReport) { r.Phone = "024987" }, "phone", "Valid phone number required"},
		{"no category", func(r *models.IssueReport) { r.Category = "" }, "category", "Please select an issue category"},
		{"unknown category", func(r *models.IssueReport) { r.Category = "Traffic" }, "category", "Please select an issue category"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validReport()
			tt.mutate(&r)
			errs := Validate(r)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.message, errs[0].Message)
		})
	}
}

func TestValidate_EmptyFormReportsEveryRequiredFieldInOrder(t *testing.T) {
	errs := Validate(models.NewIssueReport())
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	assert.Equal(t, []string{"fullName", "email", "phone", "category", "description"}, fields)
}

func TestValidate_OptionalFieldsAndAttachmentsAreNotChecked(t *testing.T) {
	r := validReport()
	r.Location = ""
	r.Anonymous = true
	r.ContactMe = false
	r.Attachments = []string{"", "weird name.exe"}
	assert.Empty(t, Validate(r))
}
