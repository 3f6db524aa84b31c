package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"civicmatch_backend/internal/config"
	"civicmatch_backend/internal/logger"
	"civicmatch_backend/internal/models"
	"civicmatch_backend/internal/repositories"
	"civicmatch_backend/internal/services/dto"
	"civicmatch_backend/internal/storage"
	"civicmatch_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UploadInput carries everything the handler extracted from the
// multipart request.
type UploadInput struct {
	UserID   string
	Type     models.DocumentType
	FileName string
	Size     int64
	MimeType string
	Reader   io.Reader
}

type DocumentService interface {
	Upload(ctx context.Context, db *gorm.DB, in *UploadInput) (*dto.DocumentResponse, error)
	ListOwn(db *gorm.DB, userID string) ([]*dto.DocumentResponse, error)
	ListAll(db *gorm.DB, status models.DocumentStatus) ([]*dto.AdminDocumentResponse, error)
	Review(db *gorm.DB, docID, reviewerID string, decision *dto.ReviewDecision) (*dto.DocumentResponse, error)
	Download(ctx context.Context, db *gorm.DB, docID, requesterID string, elevated bool) (string, error)
}

type DocumentServiceImpl struct {
	documentRepo repositories.DocumentRepository
	activityRepo repositories.ActivityRepository
	store        storage.Storage
	cfg          *config.Config
}

func NewDocumentService(
	documentRepo repositories.DocumentRepository,
	activityRepo repositories.ActivityRepository,
	store storage.Storage,
	cfg *config.Config,
) DocumentService {
	return &DocumentServiceImpl{
		documentRepo: documentRepo,
		activityRepo: activityRepo,
		store:        store,
		cfg:          cfg,
	}
}

// Upload validates the file, writes it to storage, then records it.
// If the record insert fails the stored object is deleted again so the
// store never holds orphans.
func (s *DocumentServiceImpl) Upload(ctx context.Context, db *gorm.DB, in *UploadInput) (*dto.DocumentResponse, error) {
	if !s.mimeAllowed(in.MimeType) {
		return nil, apperrors.ErrUnsupportedFileType
	}
	if in.Size > s.cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	key := fmt.Sprintf("documents/%s/%s%s", in.UserID, uuid.NewString(), filepath.Ext(in.FileName))
	if err := s.store.Save(ctx, key, in.Reader, in.MimeType); err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("store upload: %w", err))
	}

	doc := &models.Document{
		UserID:   in.UserID,
		Type:     in.Type,
		Path:     key,
		FileName: in.FileName,
		FileSize: in.Size,
		MimeType: in.MimeType,
		Status:   models.DocumentStatusPending,
	}

	if err := s.documentRepo.Create(db, doc); err != nil {
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			logger.Error("orphaned upload not cleaned up", "key", key, "error", delErr)
		}
		return nil, apperrors.InternalError(err)
	}

	activity := &models.UserActivity{
		UserID:       in.UserID,
		ActivityType: models.ActivityTypeDocumentUpload,
		EntityType:   "document",
		EntityID:     doc.ID,
	}
	if err := s.activityRepo.Create(db, activity); err != nil {
		logger.Warn("upload activity not recorded", "document_id", doc.ID, "error", err)
	}

	logger.Info("document uploaded", "document_id", doc.ID, "user_id", in.UserID, "size", in.Size)
	return dto.NewDocumentResponse(doc), nil
}

func (s *DocumentServiceImpl) ListOwn(db *gorm.DB, userID string) ([]*dto.DocumentResponse, error) {
	docs, err := s.documentRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewDocumentResponseList(docs), nil
}

func (s *DocumentServiceImpl) ListAll(db *gorm.DB, status models.DocumentStatus) ([]*dto.AdminDocumentResponse, error) {
	docs, err := s.documentRepo.FindAll(db, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewAdminDocumentResponseList(docs), nil
}

// Review applies a reviewer's decision. Verify and reject both
// overwrite whatever state the document is in, so a mistaken verdict
// can be corrected by a second review.
func (s *DocumentServiceImpl) Review(db *gorm.DB, docID, reviewerID string, decision *dto.ReviewDecision) (*dto.DocumentResponse, error) {
	var status models.DocumentStatus
	var reason string
	var activityType models.ActivityType

	switch decision.Action {
	case "verify":
		status = models.DocumentStatusVerified
		activityType = models.ActivityTypeDocumentVerified
	case "reject":
		status = models.DocumentStatusRejected
		reason = decision.Reason
		activityType = models.ActivityTypeDocumentRejected
	default:
		return nil, apperrors.ErrInvalidReviewDecision
	}

	if err := s.documentRepo.UpdateReview(db, docID, status, reviewerID, reason); err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	doc, err := s.documentRepo.FindByID(db, docID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	activity := &models.UserActivity{
		UserID:       doc.UserID,
		ActivityType: activityType,
		EntityType:   "document",
		EntityID:     doc.ID,
	}
	if err := s.activityRepo.Create(db, activity); err != nil {
		logger.Warn("review activity not recorded", "document_id", doc.ID, "error", err)
	}

	logger.Info("document reviewed", "document_id", doc.ID, "status", status, "reviewer_id", reviewerID)
	return dto.NewDocumentResponse(doc), nil
}

// Download returns a short-lived signed URL. Owners can always fetch
// their own documents; anyone else needs reviewer privileges.
func (s *DocumentServiceImpl) Download(ctx context.Context, db *gorm.DB, docID, requesterID string, elevated bool) (string, error) {
	doc, err := s.documentRepo.FindByID(db, docID)
	if err != nil {
		if errors.Is(err, repositories.ErrDocumentNotFound) {
			return "", apperrors.ErrNotFound(err)
		}
		return "", apperrors.InternalError(err)
	}

	if doc.UserID != requesterID && !elevated {
		return "", apperrors.ErrInsufficientPermissions
	}

	url, err := s.store.GetSignedURL(ctx, doc.Path, 15*time.Minute)
	if err != nil {
		return "", apperrors.InternalError(fmt.Errorf("sign url: %w", err))
	}
	return url, nil
}

func (s *DocumentServiceImpl) mimeAllowed(mimeType string) bool {
	for _, allowed := range s.cfg.Upload.AllowedTypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}
