package report

import (
	"errors"
	"fmt"

	"civicjustice/models"
)

var (
	// ErrAttachmentIndex is returned when removing an attachment that does not exist.
	ErrAttachmentIndex = errors.New("attachment index out of range")
	// ErrUploadInProgress is returned when a draft is already receiving an attachment.
	ErrUploadInProgress = errors.New("an upload is already in progress")
)

// ValidationError carries the field-level failures of a rejected report.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("report is invalid: %d field error(s)", len(e.Fields))
}
