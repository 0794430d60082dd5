package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/doae178/job-landing-page/internal/models"
)

// ApplicantRepository persists one JSON record per applicant, named by the
// applicant id. Records are immutable; there is no read or delete path.
type ApplicantRepository interface {
	Create(fields models.ApplicantFields, resumeFilename string) (*models.Applicant, error)
	EnsureDir() error
}

type applicantRepository struct {
	dir string
}

func NewApplicantRepository(dir string) ApplicantRepository {
	return &applicantRepository{dir: dir}
}

func (r *applicantRepository) EnsureDir() error {
	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return fmt.Errorf("failed to create applicants directory: %w", err)
	}

	return nil
}

// Create assigns the id and timestamp, then writes the record via a temp
// file and rename so the final name never holds a partial record.
func (r *applicantRepository) Create(fields models.ApplicantFields, resumeFilename string) (*models.Applicant, error) {
	applicant := &models.Applicant{
		ID:     uuid.New(),
		Name:   fields.Name,
		Email:  fields.Email,
		Phone:  fields.Phone,
		Resume: resumeFilename,
		Date:   time.Now(),
	}

	data, err := json.MarshalIndent(applicant, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize applicant: %w", err)
	}

	tmp, err := os.CreateTemp(r.dir, ".applicant-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create applicant record: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to write applicant record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to write applicant record: %w", err)
	}

	finalPath := filepath.Join(r.dir, applicant.ID.String()+".json")
	if err := os.Rename(tmp.Name(), finalPath); err != nil {
		os.Remove(tmp.Name())
		return nil, fmt.Errorf("failed to store applicant record: %w", err)
	}

	return applicant, nil
}
