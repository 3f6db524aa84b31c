package dto

import "civicmatch_backend/internal/models"

// RecommendationResponse pairs a resource with the relevance score the
// ranker computed for the requesting user.
type RecommendationResponse struct {
	Resource *ResourceResponse `json:"resource"`
	Score    float64           `json:"score"`
}

func NewRecommendationResponse(res *models.Resource, score float64) *RecommendationResponse {
	return &RecommendationResponse{
		Resource: NewResourceResponse(res),
		Score:    score,
	}
}
