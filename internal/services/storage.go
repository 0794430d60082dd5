package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/doae178/job-landing-page/internal/models"
)

// Both the declared MIME type and the extension must be on the allow-list.
// The declared type alone is untrusted: the client sets it.
var allowedMimeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// FileNamer decides where an accepted upload lands and under what name.
type FileNamer interface {
	Destination() string
	Filename(originalName string) string
}

type uuidNamer struct {
	dir string
}

// NewUUIDNamer names files <uuid><original extension> under dir, which
// prevents both collisions and path traversal through the client filename.
func NewUUIDNamer(dir string) FileNamer {
	return &uuidNamer{dir: dir}
}

func (n *uuidNamer) Destination() string {
	return n.dir
}

func (n *uuidNamer) Filename(originalName string) string {
	return uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
}

type ResumeStorage interface {
	Save(file *multipart.FileHeader) (*models.ResumeFile, error)
	Delete(filename string) error
	GetFilePath(filename string) string
	EnsureUploadDir() error
}

type resumeStorage struct {
	namer       FileNamer
	maxFileSize int64
}

func NewResumeStorage(namer FileNamer, maxFileSize int64) ResumeStorage {
	return &resumeStorage{
		namer:       namer,
		maxFileSize: maxFileSize,
	}
}

func (s *resumeStorage) EnsureUploadDir() error {
	if err := os.MkdirAll(s.namer.Destination(), 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// Save validates file against the size and type constraints and, on
// acceptance, writes it under a generated unique name. A caller-fault
// rejection wraps one of the models.ErrFile* sentinels.
func (s *resumeStorage) Save(file *multipart.FileHeader) (*models.ResumeFile, error) {
	if file == nil {
		return nil, models.ErrFileMissing
	}

	if file.Size > s.maxFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", models.ErrFileTooLarge, file.Size, s.maxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return nil, fmt.Errorf("%w: extension %q", models.ErrFileTypeRejected, ext)
	}

	contentType := file.Header.Get("Content-Type")
	if !allowedMimeTypes[contentType] {
		return nil, fmt.Errorf("%w: content type %q", models.ErrFileTypeRejected, contentType)
	}

	filename := s.namer.Filename(file.Filename)
	filePath := filepath.Join(s.namer.Destination(), filename)

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	if err := dst.Close(); err != nil {
		os.Remove(filePath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &models.ResumeFile{
		Filename:     filename,
		OriginalName: file.Filename,
		ContentType:  contentType,
		Size:         file.Size,
		Path:         filePath,
	}, nil
}

func (s *resumeStorage) GetFilePath(filename string) string {
	return filepath.Join(s.namer.Destination(), filename)
}

func (s *resumeStorage) Delete(filename string) error {
	if err := os.Remove(s.GetFilePath(filename)); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
