package report

import (
	"context"

	"civicjustice/models"

	"go.uber.org/zap"
)

var submittedNotice = models.Notice{
	Severity:    models.SeveritySuccess,
	Message:     "Report submitted successfully!",
	Description: "A legal professional will review your case soon.",
}

func (s *DefaultReportService) Submit(_ context.Context, r models.IssueReport) (*SubmitResult, error) {
	if fieldErrs := Validate(r); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}
	sub := s.newSubmission(r)
	s.dispatch(sub)
	return &SubmitResult{ReportID: sub.ID, Notice: submittedNotice}, nil
}

// SubmitDraft validates the stored draft. An invalid draft is left exactly as it was; a valid
// one is handed to intake and reset to the form defaults. A draft still receiving an attachment
// cannot be submitted.
func (s *DefaultReportService) SubmitDraft(ctx context.Context, id string) (*SubmitResult, error) {
	var sub models.SubmittedReport
	draft, err := s.Drafts.Update(ctx, id, func(d *models.ReportDraft) error {
		if d.Attaching {
			return ErrUploadInProgress
		}
		if fieldErrs := Validate(d.Report); len(fieldErrs) > 0 {
			return &ValidationError{Fields: fieldErrs}
		}
		sub = s.newSubmission(d.Report)
		d.Reset()
		d.UpdatedAt = s.nowFunc().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.dispatch(sub)
	return &SubmitResult{ReportID: sub.ID, Notice: submittedNotice, Draft: draft}, nil
}

func (s *DefaultReportService) newSubmission(r models.IssueReport) models.SubmittedReport {
	r.Attachments = append([]string{}, r.Attachments...)
	return models.SubmittedReport{
		ID:          s.idFunc(),
		Report:      r,
		SubmittedAt: s.nowFunc().UTC(),
	}
}

// dispatch hands the report to the intake sink without waiting for it.
func (s *DefaultReportService) dispatch(sub models.SubmittedReport) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), intakeTimeout)
		defer cancel()
		if err := s.Intake.Submit(ctx, sub); err != nil {
			s.Logger.Error("Report intake failed", zap.String("reportID", sub.ID), zap.Error(err))
		}
	}()
}
