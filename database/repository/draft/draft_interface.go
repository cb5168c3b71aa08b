package draftRepo

import (
	"context"
	"errors"

	"civicjustice/models"
)

// ErrDraftNotFound is returned for an unknown or expired draft id.
var ErrDraftNotFound = errors.New("draft not found")

// DraftRepository stores report drafts between requests.
type DraftRepository interface {
	// Create stores a new draft.
	Create(ctx context.Context, draft models.ReportDraft) error
	// Get returns a copy of the draft.
	Get(ctx context.Context, id string) (*models.ReportDraft, error)
	// Update applies fn to the stored draft atomically and returns the result.
	// If fn returns an error nothing is written.
	Update(ctx context.Context, id string, fn func(*models.ReportDraft) error) (*models.ReportDraft, error)
	// Delete removes the draft.
	Delete(ctx context.Context, id string) error
}

func cloneDraft(d models.ReportDraft) models.ReportDraft {
	d.Report.Attachments = append([]string{}, d.Report.Attachments...)
	return d
}
