package models

import (
	"time"

	"github.com/google/uuid"
)

// Applicant is the persisted record for one job-application submission.
// It is written exactly once and never updated.
type Applicant struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Phone  string    `json:"phone"`
	Resume string    `json:"resume"`
	Date   time.Time `json:"date"`
}

// ApplicantFields holds the sanitized form fields before an id and
// timestamp are assigned.
type ApplicantFields struct {
	Name  string
	Email string
	Phone string
}

// ResumeFile describes a stored resume upload. Filename is the generated
// unique name on disk, not the name the applicant chose.
type ResumeFile struct {
	Filename     string
	OriginalName string
	ContentType  string
	Size         int64
	Path         string
}

// SubmissionRequest carries the raw, unvalidated form inputs from one
// POST /apply request into the submission pipeline.
type SubmissionRequest struct {
	Name           string
	Email          string
	Phone          string
	ChallengeToken string
}
