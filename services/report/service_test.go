package report

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	draftRepo "civicjustice/database/repository/draft"
	"civicjustice/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"
)

type recordingSink struct {
	mu      sync.Mutex
	reports []models.SubmittedReport
	err     error
}

func (r *recordingSink) Submit(_ context.Context, report models.SubmittedReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, report)
	return r.err
}

func (r *recordingSink) received() []models.SubmittedReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.SubmittedReport(nil), r.reports...)
}

type fakeStorage struct {
	uploaded []string
	err      error
}

func (f *fakeStorage) UploadFile(_ context.Context, localFilePath, destFolder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploaded = append(f.uploaded, destFolder+"|"+localFilePath)
	return "public-id", nil
}

type fakeTranscriber struct {
	text string
	err  error
}

func (f fakeTranscriber) Transcribe(context.Context, string, string) (string, error) {
	return f.text, f.err
}

func newTestService(t *testing.T) (*DefaultReportService, *recordingSink) {
	sink := &recordingSink{}
	svc := NewDefaultReportService(draftRepo.NewMemoryDraftRepo(time.Hour), sink, 0, zaptest.NewLogger(t))
	n := 0
	svc.idFunc = func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	svc.nowFunc = func() time.Time { return time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC) }
	return svc, sink
}

func strPtr(s string) *string { return &s }

func fillDraft(t *testing.T, svc *DefaultReportService, id, email string) {
	t.Helper()
	_, err := svc.UpdateDraft(context.Background(), id, models.IssueReportPatch{
		FullName:    strPtr("Kwame Mensah"),
		Email:       strPtr(email),
		Phone:       strPtr("0244123456"),
		Category:    strPtr("Land Dispute"),
		Description: strPtr("A neighbour moved the boundary pillars."),
		Location:    strPtr("Kumasi"),
	})
	require.NoError(t, err)
}

func TestCreateDraft_Defaults(t *testing.T) {
	svc, _ := newTestService(t)
	d, err := svc.CreateDraft(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "id-1", d.ID)
	assert.Equal(t, models.NewIssueReport(), d.Report)
	assert.True(t, d.Report.ContactMe)
	assert.False(t, d.Report.Anonymous)
	assert.False(t, d.Recording)
}

func TestSubmitDraft_InvalidThenCorrected(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()
	svc, sink := newTestService(t)

	d, err := svc.CreateDraft(ctx)
	require.NoError(t, err)
	fillDraft(t, svc, d.ID, "not-an-email")
	_, _, err = svc.AddAttachment(ctx, d.ID, nil)
	require.NoError(t, err)

	_, err = svc.SubmitDraft(ctx, d.ID)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []models.FieldError{{Field: "email", Message: "Invalid email address"}}, vErr.Fields)

	// Nothing was reset.
	kept, err := svc.GetDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kwame Mensah", kept.Report.FullName)
	assert.Equal(t, "not-an-email", kept.Report.Email)
	assert.Equal(t, []string{DefaultAttachmentName}, kept.Report.Attachments)

	_, err = svc.UpdateDraft(ctx, d.ID, models.IssueReportPatch{Email: strPtr("kwame@example.com")})
	require.NoError(t, err)

	res, err := svc.SubmitDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, submittedNotice, res.Notice)
	require.NotNil(t, res.Draft)
	assert.Equal(t, models.NewIssueReport(), res.Draft.Report)

	reset, err := svc.GetDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NewIssueReport(), reset.Report)
	assert.Empty(t, reset.Report.Attachments)

	svc.Wait()
	got := sink.received()
	require.Len(t, got, 1)
	assert.Equal(t, res.ReportID, got[0].ID)
	assert.Equal(t, "kwame@example.com", got[0].Report.Email)
	assert.Equal(t, []string{DefaultAttachmentName}, got[0].Report.Attachments)
}

func TestSubmit_Stateless(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, sink := newTestService(t)

	_, err := svc.Submit(context.Background(), models.IssueReport{Email: "x"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Fields, 5)

	res, err := svc.Submit(context.Background(), validReport())
	require.NoError(t, err)
	assert.Nil(t, res.Draft)

	svc.Wait()
	require.Len(t, sink.received(), 1)
	assert.Equal(t, res.ReportID, sink.received()[0].ID)
}

func TestSubmit_IntakeFailureIsNotSurfaced(t *testing.T) {
	defer goleak.VerifyNone(t)
	svc, sink := newTestService(t)
	sink.err = errors.New("intake down")

	res, err := svc.Submit(context.Background(), validReport())
	require.NoError(t, err)
	assert.Equal(t, models.SeveritySuccess, res.Notice.Severity)
	svc.Wait()
}

func TestAddAttachment(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	store := &fakeStorage{}
	svc.Storage = store
	d, err := svc.CreateDraft(ctx)
	require.NoError(t, err)

	got, notice, err := svc.AddAttachment(ctx, d.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "File uploaded successfully", notice.Message)
	assert.Equal(t, []string{DefaultAttachmentName}, got.Report.Attachments)
	assert.False(t, got.Attaching)
	assert.Empty(t, store.uploaded, "nothing to store without a file")

	got, _, err = svc.AddAttachment(ctx, d.ID, &Upload{Name: "deed.pdf", Path: "/tmp/deed.pdf"})
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultAttachmentName, "deed.pdf"}, got.Report.Attachments)
	assert.Equal(t, []string{"reports/attachments|/tmp/deed.pdf"}, store.uploaded)
}

func TestAddAttachment_StorageFailureClearsFlag(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	svc.Storage = &fakeStorage{err: errors.New("quota")}
	d, err := svc.CreateDraft(ctx)
	require.NoError(t, err)

	_, _, err = svc.AddAttachment(ctx, d.ID, &Upload{Name: "deed.pdf", Path: "/tmp/deed.pdf"})
	assert.ErrorContains(t, err, "quota")

	got, err := svc.GetDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.False(t, got.Attaching)
	assert.Empty(t, got.Report.Attachments)
}

func TestAddAttachment_CancelledDuringDelay(t *testing.T) {
	svc, _ := newTestService(t)
	svc.UploadDelay = time.Hour
	d, err := svc.CreateDraft(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = svc.AddAttachment(ctx, d.ID, nil)
	assert.ErrorIs(t, err, context.Canceled)

	got, err := svc.GetDraft(context.Background(), d.ID)
	require.NoError(t, err)
	assert.False(t, got.Attaching)
	assert.Empty(t, got.Report.Attachments)
}

func TestAddAttachment_OneUploadAtATime(t *testing.T) {
	svc, _ := newTestService(t)
	svc.UploadDelay = 200 * time.Millisecond
	d, err := svc.CreateDraft(context.Background())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, _, err := svc.AddAttachment(context.Background(), d.ID, nil)
		done <- err
	}()

	require.Eventually(t, func() bool {
		cur, err := svc.GetDraft(context.Background(), d.ID)
		return err == nil && cur.Attaching
	}, time.Second, 5*time.Millisecond)

	_, _, err = svc.AddAttachment(context.Background(), d.ID, nil)
	assert.ErrorIs(t, err, ErrUploadInProgress)

	require.NoError(t, <-done)
	got, err := svc.GetDraft(context.Background(), d.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultAttachmentName}, got.Report.Attachments)
}

func TestRemoveAttachment(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	d, err := svc.CreateDraft(ctx)
	require.NoError(t, err)
	for _, name := range []string{"a.pdf", "b.pdf", "c.pdf"} {
		_, _, err := svc.AddAttachment(ctx, d.ID, &Upload{Name: name})
		require.NoError(t, err)
	}

	got, err := svc.RemoveAttachment(ctx, d.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf", "c.pdf"}, got.Report.Attachments)

	_, err = svc.RemoveAttachment(ctx, d.ID, 2)
	assert.ErrorIs(t, err, ErrAttachmentIndex)
	_, err = svc.RemoveAttachment(ctx, d.ID, -1)
	assert.ErrorIs(t, err, ErrAttachmentIndex)
}

func TestToggleRecording(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	svc.Transcriber = fakeTranscriber{text: "they took my land"}
	d, err := svc.CreateDraft(ctx)
	require.NoError(t, err)

	got, notice, err := svc.ToggleRecording(ctx, d.ID, nil)
	require.NoError(t, err)
	assert.True(t, got.Recording)
	assert.Equal(t, models.SeverityInfo, notice.Severity)
	assert.Equal(t, "Audio recording started", notice.Message)
	assert.Empty(t, got.Report.Attachments)

	got, notice, err = svc.ToggleRecording(ctx, d.ID, &Upload{Name: "note.wav", Path: "/tmp/note.wav"})
	require.NoError(t, err)
	assert.False(t, got.Recording)
	assert.Equal(t, "Audio recording completed", notice.Message)
	assert.Equal(t, []string{AudioAttachmentName}, got.Report.Attachments)
	assert.Equal(t, "they took my land", got.Report.Description)
}

func TestToggleRecording_TranscriptionFailureStillCompletes(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	svc.Transcriber = fakeTranscriber{err: errors.New("no ffmpeg")}
	d, err := svc.CreateDraft(ctx)
	require.NoError(t, err)
	_, err = svc.UpdateDraft(ctx, d.ID, models.IssueReportPatch{Description: strPtr("typed text")})
	require.NoError(t, err)

	_, _, err = svc.ToggleRecording(ctx, d.ID, nil)
	require.NoError(t, err)
	got, _, err := svc.ToggleRecording(ctx, d.ID, &Upload{Name: "note.wav", Path: "/tmp/note.wav"})
	require.NoError(t, err)
	assert.Equal(t, "typed text", got.Report.Description)
	assert.Equal(t, []string{AudioAttachmentName}, got.Report.Attachments)
}

func TestUnknownDraft(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.GetDraft(ctx, "nope")
	assert.ErrorIs(t, err, draftRepo.ErrDraftNotFound)
	_, err = svc.SubmitDraft(ctx, "nope")
	assert.ErrorIs(t, err, draftRepo.ErrDraftNotFound)
	_, _, err = svc.AddAttachment(ctx, "nope", nil)
	assert.ErrorIs(t, err, draftRepo.ErrDraftNotFound)
	_, _, err = svc.ToggleRecording(ctx, "nope", nil)
	assert.ErrorIs(t, err, draftRepo.ErrDraftNotFound)
}

func TestSubmitDraft_RefusedWhileUploading(t *testing.T) {
	defer goleak.VerifyNone(t)
	ctx := context.Background()
	svc, sink := newTestService(t)
	svc.UploadDelay = 200 * time.Millisecond

	d, err := svc.CreateDraft(ctx)
	require.NoError(t, err)
	fillDraft(t, svc, d.ID, "kwame@example.com")

	done := make(chan error, 1)
	go func() {
		_, _, err := svc.AddAttachment(ctx, d.ID, nil)
		done <- err
	}()
	require.Eventually(t, func() bool {
		cur, err := svc.GetDraft(ctx, d.ID)
		return err == nil && cur.Attaching
	}, time.Second, 5*time.Millisecond)

	_, err = svc.SubmitDraft(ctx, d.ID)
	assert.ErrorIs(t, err, ErrUploadInProgress)

	require.NoError(t, <-done)
	res, err := svc.SubmitDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, res.Draft.Report.Attachments)

	after, err := svc.GetDraft(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, models.NewIssueReport(), after.Report)

	svc.Wait()
	require.Len(t, sink.received(), 1)
	assert.Equal(t, []string{DefaultAttachmentName}, sink.received()[0].Report.Attachments)
}

func TestDiscardDraft(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	d, err := svc.CreateDraft(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.DiscardDraft(ctx, d.ID))
	_, err = svc.GetDraft(ctx, d.ID)
	assert.ErrorIs(t, err, draftRepo.ErrDraftNotFound)
	assert.ErrorIs(t, svc.DiscardDraft(ctx, d.ID), draftRepo.ErrDraftNotFound)
}
