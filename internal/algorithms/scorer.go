package algorithms

import (
	"strings"

	"civicmatch_backend/internal/models"
)

// Weights of the content-based relevance signal. The score is additive and
// unnormalized: each matched interest tag keeps adding weight, so the only
// practical bound is the number of tags a user supplies.
const (
	SpecializationWeight = 0.4
	DegreeWeight         = 0.3
	InterestTagWeight    = 0.1
)

// Score computes how relevant a resource is to a user's education profile.
// A nil profile scores 0. Matching is case-insensitive substring containment,
// so "art" matches "part"; that looseness is intentional and keeps the
// scoring cheap and predictable.
func Score(edu *models.EducationProfile, res *models.Resource) float64 {
	if edu == nil {
		return 0.0
	}

	title := strings.ToLower(res.Title)
	description := strings.ToLower(res.Description)

	score := 0.0

	if spec := strings.ToLower(strings.TrimSpace(edu.Specialization)); spec != "" {
		if strings.Contains(description, spec) {
			score += SpecializationWeight
		}
	}

	if degree := strings.ToLower(strings.TrimSpace(edu.DegreeName)); degree != "" {
		if strings.Contains(title, degree) {
			score += DegreeWeight
		}
	}

	for _, tag := range edu.InterestTags() {
		if strings.Contains(title, tag) || strings.Contains(description, tag) {
			score += InterestTagWeight
		}
	}

	return score
}
