package services

import (
	"fmt"
	"testing"
	"time"

	"civicmatch_backend/internal/models"
	"civicmatch_backend/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newRecommendationTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.EducationProfile{},
		&models.Resource{},
	))
	return db
}

func newRecommendationTestService() RecommendationService {
	return NewRecommendationService(
		repositories.NewEducationRepository(),
		repositories.NewResourceRepository(),
	)
}

// createResource inserts with an explicit timestamp so pool ordering is
// deterministic.
func createResource(t *testing.T, db *gorm.DB, title, description string, age time.Duration) *models.Resource {
	res := &models.Resource{
		Title:       title,
		Description: description,
		Type:        models.ResourceTypeJob,
		URL:         "https://example.gov/" + title,
		IsActive:    true,
	}
	res.CreatedAt = time.Now().Add(-age)
	require.NoError(t, db.Create(res).Error)
	return res
}

func createProfile(t *testing.T, db *gorm.DB, profile *models.EducationProfile) {
	profile.UserID = "5f6c9a1e-0000-4000-8000-000000000001"
	require.NoError(t, db.Create(profile).Error)
}

func TestRecommend_OrdersByScoreDescending(t *testing.T) {
	db := newRecommendationTestDB(t)
	svc := newRecommendationTestService()

	createProfile(t, db, &models.EducationProfile{
		Specialization:  "computer science",
		AreasOfInterest: "react",
	})

	createResource(t, db, "Clerk opening", "Municipal records office", 3*time.Hour)
	createResource(t, db, "Frontend role", "React work on computer science portals", 2*time.Hour)
	createResource(t, db, "React workshop", "Hands-on sessions", 1*time.Hour)

	recs, err := svc.Recommend(db, "5f6c9a1e-0000-4000-8000-000000000001")
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// 0.4 + 0.1, then 0.1, then 0
	assert.Equal(t, "Frontend role", recs[0].Resource.Title)
	assert.InDelta(t, 0.5, recs[0].Score, 1e-9)
	assert.Equal(t, "React workshop", recs[1].Resource.Title)
	assert.InDelta(t, 0.1, recs[1].Score, 1e-9)
	assert.Equal(t, "Clerk opening", recs[2].Resource.Title)
	assert.Equal(t, 0.0, recs[2].Score)
}

func TestRecommend_TiesKeepPoolOrder(t *testing.T) {
	db := newRecommendationTestDB(t)
	svc := newRecommendationTestService()

	createProfile(t, db, &models.EducationProfile{AreasOfInterest: "welding"})

	createResource(t, db, "Welding course A", "", 3*time.Hour)
	createResource(t, db, "Welding course B", "", 2*time.Hour)
	createResource(t, db, "Welding course C", "", 1*time.Hour)

	recs, err := svc.Recommend(db, "5f6c9a1e-0000-4000-8000-000000000001")
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// equal scores, so the oldest-first pool order survives
	assert.Equal(t, "Welding course A", recs[0].Resource.Title)
	assert.Equal(t, "Welding course B", recs[1].Resource.Title)
	assert.Equal(t, "Welding course C", recs[2].Resource.Title)
}

func TestRecommend_NoProfileReturnsZeroScores(t *testing.T) {
	db := newRecommendationTestDB(t)
	svc := newRecommendationTestService()

	createResource(t, db, "Scholarship", "For science graduates", 2*time.Hour)
	createResource(t, db, "Job fair", "Open to all", 1*time.Hour)

	recs, err := svc.Recommend(db, "5f6c9a1e-0000-4000-8000-00000000dead")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	for _, rec := range recs {
		assert.Equal(t, 0.0, rec.Score)
	}
	assert.Equal(t, "Scholarship", recs[0].Resource.Title)
}

func TestRecommend_LimitsToTen(t *testing.T) {
	db := newRecommendationTestDB(t)
	svc := newRecommendationTestService()

	createProfile(t, db, &models.EducationProfile{AreasOfInterest: "training"})

	for i := 0; i < 15; i++ {
		createResource(t, db, fmt.Sprintf("Training session %02d", i), "", time.Duration(20-i)*time.Hour)
	}

	recs, err := svc.Recommend(db, "5f6c9a1e-0000-4000-8000-000000000001")
	require.NoError(t, err)
	assert.Len(t, recs, 10)
}

func TestRecommend_SkipsInactiveResources(t *testing.T) {
	db := newRecommendationTestDB(t)
	svc := newRecommendationTestService()

	createProfile(t, db, &models.EducationProfile{AreasOfInterest: "nursing"})

	active := createResource(t, db, "Nursing course", "", 2*time.Hour)
	inactive := createResource(t, db, "Nursing job", "", 1*time.Hour)
	require.NoError(t, db.Model(inactive).Update("is_active", false).Error)

	recs, err := svc.Recommend(db, "5f6c9a1e-0000-4000-8000-000000000001")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, active.Title, recs[0].Resource.Title)
}
