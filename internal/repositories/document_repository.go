package repositories

import (
	"errors"
	"time"

	"civicmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

// adminListCap bounds the review queue listing.
const adminListCap = 200

type DocumentRepository interface {
	Create(db *gorm.DB, doc *models.Document) error
	FindByID(db *gorm.DB, id string) (*models.Document, error)
	// FindByUser returns the caller's own documents, newest first.
	FindByUser(db *gorm.DB, userID string) ([]models.Document, error)
	// FindAll returns documents with their uploader preloaded, optionally
	// filtered by status, newest first, capped at 200 rows.
	FindAll(db *gorm.DB, status models.DocumentStatus) ([]models.Document, error)
	// UpdateReview stamps the review outcome onto the document.
	UpdateReview(db *gorm.DB, docID string, status models.DocumentStatus, reviewerID, reason string) error
}

type documentRepository struct{}

func NewDocumentRepository() DocumentRepository {
	return &documentRepository{}
}

func (r *documentRepository) Create(db *gorm.DB, doc *models.Document) error {
	return db.Create(doc).Error
}

func (r *documentRepository) FindByID(db *gorm.DB, id string) (*models.Document, error) {
	var doc models.Document
	err := db.First(&doc, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) FindByUser(db *gorm.DB, userID string) ([]models.Document, error) {
	var docs []models.Document
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func (r *documentRepository) FindAll(db *gorm.DB, status models.DocumentStatus) ([]models.Document, error) {
	var docs []models.Document
	query := db.Model(&models.Document{}).Preload("Owner")

	if status != "" {
		query = query.Where("status = ?", status)
	}

	err := query.Order("created_at DESC").
		Limit(adminListCap).
		Find(&docs).Error
	return docs, err
}

func (r *documentRepository) UpdateReview(db *gorm.DB, docID string, status models.DocumentStatus, reviewerID, reason string) error {
	now := time.Now()

	result := db.Model(&models.Document{}).Where("id = ?", docID).Updates(map[string]interface{}{
		"status":           status,
		"rejection_reason": reason,
		"verified_by":      reviewerID,
		"verified_at":      now,
		"updated_at":       now,
	})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
