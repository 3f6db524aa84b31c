package repositories

import (
	"civicmatch_backend/internal/models"

	"gorm.io/gorm"
)

// ActivityCount is one row of the admin activity summary.
type ActivityCount struct {
	ActivityType models.ActivityType `json:"activity_type"`
	Count        int64               `json:"count"`
}

type ActivityRepository interface {
	Create(db *gorm.DB, activity *models.UserActivity) error
	CountByType(db *gorm.DB) ([]ActivityCount, error)
	FindByUser(db *gorm.DB, userID string, limit int) ([]models.UserActivity, error)
}

type activityRepository struct{}

func NewActivityRepository() ActivityRepository {
	return &activityRepository{}
}

func (r *activityRepository) Create(db *gorm.DB, activity *models.UserActivity) error {
	return db.Create(activity).Error
}

func (r *activityRepository) CountByType(db *gorm.DB) ([]ActivityCount, error) {
	var counts []ActivityCount
	err := db.Model(&models.UserActivity{}).
		Select("activity_type, count(*) as count").
		Group("activity_type").
		Order("count DESC").
		Find(&counts).Error
	return counts, err
}

func (r *activityRepository) FindByUser(db *gorm.DB, userID string, limit int) ([]models.UserActivity, error) {
	var activities []models.UserActivity
	err := db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&activities).Error
	return activities, err
}
