package repositories

import (
	"errors"
	"time"

	"civicmatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEducationProfileNotFound = errors.New("education profile not found")

type EducationRepository interface {
	FindByUserID(db *gorm.DB, userID string) (*models.EducationProfile, error)
	Create(db *gorm.DB, profile *models.EducationProfile) error
	// Update applies a partial update: only the supplied columns change.
	Update(db *gorm.DB, userID string, fields map[string]interface{}) error
}

type educationRepository struct{}

func NewEducationRepository() EducationRepository {
	return &educationRepository{}
}

func (r *educationRepository) FindByUserID(db *gorm.DB, userID string) (*models.EducationProfile, error) {
	var profile models.EducationProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEducationProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *educationRepository) Create(db *gorm.DB, profile *models.EducationProfile) error {
	return db.Create(profile).Error
}

func (r *educationRepository) Update(db *gorm.DB, userID string, fields map[string]interface{}) error {
	fields["updated_at"] = time.Now()

	result := db.Model(&models.EducationProfile{}).Where("user_id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEducationProfileNotFound
	}
	return nil
}
