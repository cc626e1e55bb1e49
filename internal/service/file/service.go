package file

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medusa-holding/medusa/internal/pkg/storage"
)

type FileService interface {
	// UploadJustificationEvidence stores the evidence of an absence justification and returns its key
	UploadJustificationEvidence(ctx context.Context, companyID string, attendanceID string, file io.Reader, filename string) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, key string) error
	GetFileURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

var evidenceContentTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// UploadJustificationEvidence uploads to justifications/{companyID}/{attendanceID}/{uuid}{ext}
func (s *fileServiceImpl) UploadJustificationEvidence(ctx context.Context, companyID string, attendanceID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := evidenceContentTypes[ext]
	if !ok {
		return "", fmt.Errorf("invalid file type: only pdf, jpg, jpeg, png allowed")
	}

	key := path.Join("justifications", companyID, attendanceID, uuid.Must(uuid.NewV7()).String()+ext)

	uploadedKey, err := s.storage.Upload(ctx, file, key, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload justification evidence: %w", err)
	}

	return uploadedKey, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, key string) error {
	return s.storage.Delete(ctx, key)
}

// GetFileURL generates URL to access file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, key, expiry)
}
