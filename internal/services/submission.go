package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/doae178/job-landing-page/internal/models"
	"github.com/doae178/job-landing-page/internal/repositories"
)

// SubmissionService runs one application submission through its stages:
// the resume is stored first, then the fields are validated, then the
// challenge token is verified, then the applicant record is persisted.
// The first failing stage ends the submission; nothing is retried.
type SubmissionService interface {
	Submit(ctx context.Context, req models.SubmissionRequest, resume *multipart.FileHeader) (*models.Applicant, error)
}

type submissionService struct {
	storage       ResumeStorage
	validator     FieldValidator
	verifier      ChallengeVerifier
	applicantRepo repositories.ApplicantRepository
}

func NewSubmissionService(
	storage ResumeStorage,
	validator FieldValidator,
	verifier ChallengeVerifier,
	applicantRepo repositories.ApplicantRepository,
) SubmissionService {
	return &submissionService{
		storage:       storage,
		validator:     validator,
		verifier:      verifier,
		applicantRepo: applicantRepo,
	}
}

func (s *submissionService) Submit(ctx context.Context, req models.SubmissionRequest, resume *multipart.FileHeader) (*models.Applicant, error) {
	stored, err := s.acceptFile(resume)
	if err != nil {
		return nil, err
	}

	fields, err := s.validateFields(req)
	if err != nil {
		s.discardUpload(stored)
		return nil, err
	}

	if err := s.verifyChallenge(ctx, req.ChallengeToken); err != nil {
		s.discardUpload(stored)
		return nil, err
	}

	applicant, err := s.persist(*fields, stored)
	if err != nil {
		s.discardUpload(stored)
		return nil, err
	}

	return applicant, nil
}

func (s *submissionService) acceptFile(resume *multipart.FileHeader) (*models.ResumeFile, error) {
	if resume == nil {
		return nil, models.ErrFileMissing
	}
	return s.storage.Save(resume)
}

func (s *submissionService) validateFields(req models.SubmissionRequest) (*models.ApplicantFields, error) {
	fields, verrs := s.validator.Validate(req.Name, req.Email, req.Phone)
	if verrs != nil {
		return nil, verrs
	}
	return fields, nil
}

func (s *submissionService) verifyChallenge(ctx context.Context, token string) error {
	return s.verifier.Verify(ctx, token)
}

func (s *submissionService) persist(fields models.ApplicantFields, stored *models.ResumeFile) (*models.Applicant, error) {
	applicant, err := s.applicantRepo.Create(fields, stored.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to persist applicant: %w", err)
	}
	return applicant, nil
}

// discardUpload removes a stored resume whose submission failed after the
// file already hit disk. The stage error still wins; a cleanup failure is
// only logged.
func (s *submissionService) discardUpload(stored *models.ResumeFile) {
	if stored == nil {
		return
	}
	if err := s.storage.Delete(stored.Filename); err != nil {
		log.Printf("failed to clean up upload %s: %v", stored.Filename, err)
	}
}
