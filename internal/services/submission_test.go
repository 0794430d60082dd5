package services

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doae178/job-landing-page/internal/models"
)

type fakeStorage struct {
	saved   []string
	deleted []string
	saveErr error
}

func (f *fakeStorage) Save(file *multipart.FileHeader) (*models.ResumeFile, error) {
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	stored := &models.ResumeFile{
		Filename:     "stored-resume.pdf",
		OriginalName: file.Filename,
		ContentType:  "application/pdf",
	}
	f.saved = append(f.saved, stored.Filename)
	return stored, nil
}

func (f *fakeStorage) Delete(filename string) error {
	f.deleted = append(f.deleted, filename)
	return nil
}

func (f *fakeStorage) GetFilePath(filename string) string { return filename }
func (f *fakeStorage) EnsureUploadDir() error             { return nil }

type fakeVerifier struct {
	calls int
	err   error
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) error {
	f.calls++
	return f.err
}

type fakeApplicantRepo struct {
	created   []*models.Applicant
	createErr error
}

func (f *fakeApplicantRepo) Create(fields models.ApplicantFields, resumeFilename string) (*models.Applicant, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	applicant := &models.Applicant{
		Name:   fields.Name,
		Email:  fields.Email,
		Phone:  fields.Phone,
		Resume: resumeFilename,
	}
	f.created = append(f.created, applicant)
	return applicant, nil
}

func (f *fakeApplicantRepo) EnsureDir() error { return nil }

func validRequest() models.SubmissionRequest {
	return models.SubmissionRequest{
		Name:           "Jane Doe",
		Email:          "JANE@Example.com",
		Phone:          "555-1234",
		ChallengeToken: "token-123",
	}
}

func resumeHeader() *multipart.FileHeader {
	return &multipart.FileHeader{Filename: "cv.pdf"}
}

func newTestService(storage *fakeStorage, verifier *fakeVerifier, repo *fakeApplicantRepo) SubmissionService {
	return NewSubmissionService(storage, NewFieldValidator(), verifier, repo)
}

func TestSubmitHappyPath(t *testing.T) {
	storage := &fakeStorage{}
	verifier := &fakeVerifier{}
	repo := &fakeApplicantRepo{}
	svc := newTestService(storage, verifier, repo)

	applicant, err := svc.Submit(context.Background(), validRequest(), resumeHeader())
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", applicant.Email)
	assert.Equal(t, "stored-resume.pdf", applicant.Resume)
	assert.Equal(t, 1, verifier.calls)
	require.Len(t, repo.created, 1)
	assert.Empty(t, storage.deleted)
}

func TestSubmitMissingFileStopsPipeline(t *testing.T) {
	storage := &fakeStorage{}
	verifier := &fakeVerifier{}
	repo := &fakeApplicantRepo{}
	svc := newTestService(storage, verifier, repo)

	_, err := svc.Submit(context.Background(), validRequest(), nil)
	assert.True(t, errors.Is(err, models.ErrFileMissing))
	assert.Zero(t, verifier.calls)
	assert.Empty(t, repo.created)
}

func TestSubmitRejectedFileStopsPipeline(t *testing.T) {
	storage := &fakeStorage{saveErr: models.ErrFileTypeRejected}
	verifier := &fakeVerifier{}
	repo := &fakeApplicantRepo{}
	svc := newTestService(storage, verifier, repo)

	_, err := svc.Submit(context.Background(), validRequest(), resumeHeader())
	assert.True(t, errors.Is(err, models.ErrFileTypeRejected))
	assert.Zero(t, verifier.calls)
	assert.Empty(t, repo.created)
}

func TestSubmitInvalidFieldsCleansUpUpload(t *testing.T) {
	storage := &fakeStorage{}
	verifier := &fakeVerifier{}
	repo := &fakeApplicantRepo{}
	svc := newTestService(storage, verifier, repo)

	req := validRequest()
	req.Name = "   "

	_, err := svc.Submit(context.Background(), req, resumeHeader())
	verrs, ok := models.AsValidationErrors(err)
	require.True(t, ok)
	require.Len(t, verrs, 1)
	assert.Equal(t, "name", verrs[0].Field)

	// Validation failed, so the challenge was never checked and the
	// already-stored file was removed.
	assert.Zero(t, verifier.calls)
	assert.Equal(t, []string{"stored-resume.pdf"}, storage.deleted)
	assert.Empty(t, repo.created)
}

func TestSubmitChallengeRejectionCleansUpUpload(t *testing.T) {
	storage := &fakeStorage{}
	verifier := &fakeVerifier{err: models.ErrChallengeRejected}
	repo := &fakeApplicantRepo{}
	svc := newTestService(storage, verifier, repo)

	_, err := svc.Submit(context.Background(), validRequest(), resumeHeader())
	assert.True(t, errors.Is(err, models.ErrChallengeRejected))
	assert.Equal(t, []string{"stored-resume.pdf"}, storage.deleted)
	assert.Empty(t, repo.created)
}

func TestSubmitPersistFailureCleansUpUpload(t *testing.T) {
	storage := &fakeStorage{}
	verifier := &fakeVerifier{}
	repo := &fakeApplicantRepo{createErr: errors.New("disk full")}
	svc := newTestService(storage, verifier, repo)

	_, err := svc.Submit(context.Background(), validRequest(), resumeHeader())
	require.Error(t, err)

	// Not a caller fault of any kind.
	_, isValidation := models.AsValidationErrors(err)
	assert.False(t, isValidation)
	assert.False(t, errors.Is(err, models.ErrChallengeRejected))
	assert.Equal(t, []string{"stored-resume.pdf"}, storage.deleted)
}
