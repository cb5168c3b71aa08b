package report

import (
	"context"
	"fmt"
	"time"

	"civicjustice/models"
	"civicjustice/services/storage"

	"go.uber.org/zap"
)

func (s *DefaultReportService) CreateDraft(ctx context.Context) (*models.ReportDraft, error) {
	now := s.nowFunc().UTC()
	draft := models.ReportDraft{
		ID:        s.idFunc(),
		Report:    models.NewIssueReport(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Drafts.Create(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}
	return &draft, nil
}

func (s *DefaultReportService) GetDraft(ctx context.Context, id string) (*models.ReportDraft, error) {
	return s.Drafts.Get(ctx, id)
}

func (s *DefaultReportService) UpdateDraft(ctx context.Context, id string, patch models.IssueReportPatch) (*models.ReportDraft, error) {
	return s.Drafts.Update(ctx, id, func(d *models.ReportDraft) error {
		patch.Apply(&d.Report)
		d.UpdatedAt = s.nowFunc().UTC()
		return nil
	})
}

func (s *DefaultReportService) DiscardDraft(ctx context.Context, id string) error {
	return s.Drafts.Delete(ctx, id)
}

// AddAttachment simulates an upload: the draft is flagged as attaching, the configured delay
// elapses, the file is stored when a storage backend and a local copy exist, and the file name
// is appended.
func (s *DefaultReportService) AddAttachment(ctx context.Context, id string, upload *Upload) (*models.ReportDraft, models.Notice, error) {
	_, err := s.Drafts.Update(ctx, id, func(d *models.ReportDraft) error {
		if d.Attaching {
			return ErrUploadInProgress
		}
		d.Attaching = true
		return nil
	})
	if err != nil {
		return nil, models.Notice{}, err
	}

	if err := s.simulateUpload(ctx, upload); err != nil {
		s.clearAttaching(id)
		return nil, models.Notice{}, err
	}

	name := DefaultAttachmentName
	if upload != nil && upload.Name != "" {
		name = upload.Name
	}

	draft, err := s.Drafts.Update(ctx, id, func(d *models.ReportDraft) error {
		d.Report.Attachments = append(d.Report.Attachments, name)
		d.Attaching = false
		d.UpdatedAt = s.nowFunc().UTC()
		return nil
	})
	if err != nil {
		return nil, models.Notice{}, err
	}
	return draft, models.Notice{Severity: models.SeveritySuccess, Message: "File uploaded successfully"}, nil
}

func (s *DefaultReportService) simulateUpload(ctx context.Context, upload *Upload) error {
	if s.UploadDelay > 0 {
		timer := time.NewTimer(s.UploadDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if s.Storage == nil || upload == nil || upload.Path == "" {
		return nil
	}
	publicID, err := s.Storage.UploadFile(ctx, upload.Path, storage.AttachmentFolder)
	if err != nil {
		return fmt.Errorf("failed to store attachment: %w", err)
	}
	s.Logger.Debug("Attachment stored", zap.String("name", upload.Name), zap.String("publicID", publicID))
	return nil
}

// clearAttaching drops the attaching flag after a failed upload. It runs detached from the
// request so a cancelled client does not leave the draft locked.
func (s *DefaultReportService) clearAttaching(id string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := s.Drafts.Update(ctx, id, func(d *models.ReportDraft) error {
		d.Attaching = false
		return nil
	})
	if err != nil {
		s.Logger.Warn("Failed to clear attaching flag", zap.String("draftID", id), zap.Error(err))
	}
}

func (s *DefaultReportService) RemoveAttachment(ctx context.Context, id string, index int) (*models.ReportDraft, error) {
	return s.Drafts.Update(ctx, id, func(d *models.ReportDraft) error {
		if index < 0 || index >= len(d.Report.Attachments) {
			return ErrAttachmentIndex
		}
		d.Report.Attachments = append(d.Report.Attachments[:index], d.Report.Attachments[index+1:]...)
		d.UpdatedAt = s.nowFunc().UTC()
		return nil
	})
}

// ToggleRecording starts or stops the audio recording of a draft. Stopping appends the
// recording to the attachments and, when a transcriber is configured and audio was sent,
// adds the transcript to the description.
func (s *DefaultReportService) ToggleRecording(ctx context.Context, id string, audio *Upload) (*models.ReportDraft, models.Notice, error) {
	current, err := s.Drafts.Get(ctx, id)
	if err != nil {
		return nil, models.Notice{}, err
	}

	var transcript string
	if current.Recording && audio != nil && audio.Path != "" && s.Transcriber != nil {
		transcript, err = s.Transcriber.Transcribe(ctx, audio.Path, audio.Language)
		if err != nil {
			s.Logger.Warn("Transcription failed", zap.String("draftID", id), zap.Error(err))
			transcript = ""
		}
	}

	var started bool
	draft, err := s.Drafts.Update(ctx, id, func(d *models.ReportDraft) error {
		d.Recording = !d.Recording
		started = d.Recording
		if !started {
			d.Report.Attachments = append(d.Report.Attachments, AudioAttachmentName)
			if transcript != "" {
				if d.Report.Description == "" {
					d.Report.Description = transcript
				} else {
					d.Report.Description += " " + transcript
				}
			}
		}
		d.UpdatedAt = s.nowFunc().UTC()
		return nil
	})
	if err != nil {
		return nil, models.Notice{}, err
	}

	if started {
		return draft, models.Notice{
			Severity:    models.SeverityInfo,
			Message:     "Audio recording started",
			Description: "Speak clearly to describe your issue.",
		}, nil
	}
	return draft, models.Notice{
		Severity:    models.SeveritySuccess,
		Message:     "Audio recording completed",
		Description: "Your audio description has been added.",
	}, nil
}
