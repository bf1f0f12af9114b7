package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vault/internal/cache"
	apperrors "vault/internal/errors"
	"vault/internal/model"
	"vault/internal/repository"
)

const (
	documentListCacheKey = "documents:all"
	documentCacheTTL     = 5 * time.Minute
)

// UploadInput describes an incoming document upload.
type UploadInput struct {
	Title       string
	Description string
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

// DocumentService handles the content library.
type DocumentService interface {
	Upload(ctx context.Context, uploader *model.User, input UploadInput) (*model.Document, error)
	Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Document, error)
	List(ctx context.Context) ([]model.Document, error)
}

type documentService struct {
	docRepo      repository.DocumentRepository
	activityRepo repository.ActivityRepository
	cache        *cache.Client
	uploadDir    string
}

// NewDocumentService creates a new document service storing files under uploadDir.
func NewDocumentService(docRepo repository.DocumentRepository, activityRepo repository.ActivityRepository, cache *cache.Client, uploadDir string) DocumentService {
	return &documentService{
		docRepo:      docRepo,
		activityRepo: activityRepo,
		cache:        cache,
		uploadDir:    uploadDir,
	}
}

// Upload stores the file on disk under a unique name, records the document,
// and appends an upload activity. Only editors and admins may upload.
func (s *documentService) Upload(ctx context.Context, uploader *model.User, input UploadInput) (*model.Document, error) {
	if !uploader.Role.CanUpload() {
		return nil, apperrors.ErrForbidden
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	// Prefix with a UUID so colliding client file names never overwrite.
	storedName := uuid.New().String() + "-" + filepath.Base(input.FileName)
	dst, err := os.Create(filepath.Join(s.uploadDir, storedName))
	if err != nil {
		return nil, fmt.Errorf("create upload file: %w", err)
	}
	written, err := io.Copy(dst, input.Content)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("write upload file: %w", err)
	}

	doc := &model.Document{
		Title:        input.Title,
		Description:  input.Description,
		FileName:     storedName,
		ContentType:  input.ContentType,
		Size:         written,
		UploadedByID: uploader.ID,
	}
	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}

	_ = s.activityRepo.Create(ctx, &model.Activity{
		UserID:     uploader.ID,
		DocumentID: &doc.ID,
		Action:     model.ActionUpload,
		Details:    "Uploaded document: " + doc.Title,
	})

	// Invalidate list cache
	_ = s.cache.Delete(ctx, documentListCacheKey)
	_ = s.cache.Delete(ctx, activityCacheKey(uploader.ID))

	return doc, nil
}

// Get fetches a single document and records a view activity for the viewer.
func (s *documentService) Get(ctx context.Context, viewer *model.User, id uuid.UUID) (*model.Document, error) {
	doc, err := s.docRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("find document: %w", err)
	}

	_ = s.activityRepo.Create(ctx, &model.Activity{
		UserID:     viewer.ID,
		DocumentID: &doc.ID,
		Action:     model.ActionView,
		Details:    "Viewed document: " + doc.Title,
	})
	_ = s.cache.Delete(ctx, activityCacheKey(viewer.ID))

	return doc, nil
}

// List returns all documents, newest first, with read-through caching.
func (s *documentService) List(ctx context.Context) ([]model.Document, error) {
	if data, _ := s.cache.Get(ctx, documentListCacheKey); data != nil {
		var cached []model.Document
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	docs, err := s.docRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	if payload, err := json.Marshal(docs); err == nil {
		_ = s.cache.Set(ctx, documentListCacheKey, payload, documentCacheTTL)
	}

	return docs, nil
}
