package services

import (
	"errors"
	"sort"

	"civicmatch_backend/internal/algorithms"
	"civicmatch_backend/internal/logger"
	"civicmatch_backend/internal/models"
	"civicmatch_backend/internal/repositories"
	"civicmatch_backend/internal/services/dto"
	"civicmatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	// candidatePoolSize bounds how many active resources are scored per
	// request; recommendationLimit bounds how many are returned.
	candidatePoolSize   = 50
	recommendationLimit = 10
)

type RecommendationService interface {
	Recommend(db *gorm.DB, userID string) ([]*dto.RecommendationResponse, error)
}

type RecommendationServiceImpl struct {
	educationRepo repositories.EducationRepository
	resourceRepo  repositories.ResourceRepository
}

func NewRecommendationService(
	educationRepo repositories.EducationRepository,
	resourceRepo repositories.ResourceRepository,
) RecommendationService {
	return &RecommendationServiceImpl{
		educationRepo: educationRepo,
		resourceRepo:  resourceRepo,
	}
}

// Recommend scores the candidate pool against the user's education
// profile and returns the top matches, highest score first. Ties keep
// the pool's ordering (oldest resource first), so results are stable
// across calls. A user without a profile still gets the list: every
// score is zero and the pool order is preserved.
func (s *RecommendationServiceImpl) Recommend(db *gorm.DB, userID string) ([]*dto.RecommendationResponse, error) {
	profile, err := s.educationRepo.FindByUserID(db, userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrEducationProfileNotFound) {
			return nil, apperrors.InternalError(err)
		}
		profile = nil
	}

	pool, err := s.resourceRepo.FindActive(db, candidatePoolSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	type scored struct {
		resource *models.Resource
		score    float64
	}
	ranked := make([]scored, 0, len(pool))
	for i := range pool {
		ranked = append(ranked, scored{
			resource: &pool[i],
			score:    algorithms.Score(profile, &pool[i]),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > recommendationLimit {
		ranked = ranked[:recommendationLimit]
	}

	out := make([]*dto.RecommendationResponse, 0, len(ranked))
	for _, item := range ranked {
		out = append(out, dto.NewRecommendationResponse(item.resource, item.score))
	}

	logger.Debug("recommendations ranked", "user_id", userID, "pool", len(pool), "returned", len(out))
	return out, nil
}
