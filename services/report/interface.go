package report

import (
	"context"
	"sync"
	"time"

	draftRepo "civicjustice/database/repository/draft"
	"civicjustice/models"
	"civicjustice/services/speech"
	"civicjustice/services/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultAttachmentName is recorded when an upload carries no file.
	DefaultAttachmentName = "document.pdf"
	// AudioAttachmentName is recorded when a recording is stopped.
	AudioAttachmentName = "audio_recording.mp3"
)

// intakeTimeout bounds a single hand-off to the intake sink.
const intakeTimeout = 10 * time.Second

// Upload describes a file sent along with an attachment or recording request.
type Upload struct {
	// Name is the client-side file name.
	Name string
	// Path is a local copy of the file; empty when only the name is known.
	Path string
	// Language is the BCP-47 code of a spoken recording.
	Language string
}

// SubmitResult is the outcome of a successful submission.
type SubmitResult struct {
	ReportID string              `json:"reportId"`
	Notice   models.Notice       `json:"notice"`
	Draft    *models.ReportDraft `json:"draft,omitempty"`
}

type ReportService interface {
	// Validate checks a report against the form schema.
	Validate(r models.IssueReport) []models.FieldError

	CreateDraft(ctx context.Context) (*models.ReportDraft, error)
	GetDraft(ctx context.Context, id string) (*models.ReportDraft, error)
	UpdateDraft(ctx context.Context, id string, patch models.IssueReportPatch) (*models.ReportDraft, error)
	// DiscardDraft abandons a draft without submitting it.
	DiscardDraft(ctx context.Context, id string) error
	AddAttachment(ctx context.Context, id string, upload *Upload) (*models.ReportDraft, models.Notice, error)
	RemoveAttachment(ctx context.Context, id string, index int) (*models.ReportDraft, error)
	ToggleRecording(ctx context.Context, id string, audio *Upload) (*models.ReportDraft, models.Notice, error)

	// SubmitDraft validates the draft, hands it to intake and resets it.
	SubmitDraft(ctx context.Context, id string) (*SubmitResult, error)
	// Submit validates and hands over a complete report in one step.
	Submit(ctx context.Context, r models.IssueReport) (*SubmitResult, error)
}

// DefaultReportService is the production implementation.
type DefaultReportService struct {
	Drafts      draftRepo.DraftRepository
	Intake      IntakeSink
	Storage     storage.AttachmentStorage // optional
	Transcriber speech.Transcriber        // optional
	UploadDelay time.Duration
	Logger      *zap.Logger

	wg      sync.WaitGroup
	nowFunc func() time.Time
	idFunc  func() string
}

func NewDefaultReportService(drafts draftRepo.DraftRepository, intake IntakeSink, uploadDelay time.Duration, logger *zap.Logger) *DefaultReportService {
	return &DefaultReportService{
		Drafts:      drafts,
		Intake:      intake,
		UploadDelay: uploadDelay,
		Logger:      logger,
		nowFunc:     time.Now,
		idFunc:      func() string { return uuid.New().String() },
	}
}

// Wait blocks until every pending intake hand-off has finished.
func (s *DefaultReportService) Wait() {
	s.wg.Wait()
}
