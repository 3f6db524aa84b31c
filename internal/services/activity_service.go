package services

import (
	"civicmatch_backend/internal/models"
	"civicmatch_backend/internal/repositories"
	"civicmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ActivityService interface {
	CountsByType(db *gorm.DB) (map[string]int64, error)
	RecentForUser(db *gorm.DB, userID string, limit int) ([]models.UserActivity, error)
}

type ActivityServiceImpl struct {
	activityRepo repositories.ActivityRepository
}

func NewActivityService(activityRepo repositories.ActivityRepository) ActivityService {
	return &ActivityServiceImpl{activityRepo: activityRepo}
}

// CountsByType aggregates the activity log into per-type totals for the
// admin dashboard.
func (s *ActivityServiceImpl) CountsByType(db *gorm.DB) (map[string]int64, error) {
	counts, err := s.activityRepo.CountByType(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make(map[string]int64, len(counts))
	for _, c := range counts {
		out[string(c.ActivityType)] = c.Count
	}
	return out, nil
}

func (s *ActivityServiceImpl) RecentForUser(db *gorm.DB, userID string, limit int) ([]models.UserActivity, error) {
	// limit guards against unbounded history scans
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	activities, err := s.activityRepo.FindByUser(db, userID, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return activities, nil
}
