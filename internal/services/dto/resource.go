package dto

import (
	"time"

	"civicmatch_backend/internal/models"
)

type CreateResourceRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required,oneof=job course scholarship workshop government_scheme other"`

	Source   string `json:"source" validate:"omitempty,max=100"`
	URL      string `json:"url" validate:"required,url,max=500"`
	ImageURL string `json:"image_url" validate:"omitempty,url,max=500"`

	MinEducationLevel   string   `json:"min_education_level" validate:"omitempty,max=100"`
	RequiredSkills      []string `json:"required_skills"`
	EligibilityCriteria string   `json:"eligibility_criteria"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Location  string     `json:"location" validate:"omitempty,max=255"`
}

// UpdateResourceRequest uses pointers so absent fields are left untouched.
type UpdateResourceRequest struct {
	Title       *string `json:"title" validate:"omitempty,max=255"`
	Description *string `json:"description"`
	Type        *string `json:"type" validate:"omitempty,oneof=job course scholarship workshop government_scheme other"`

	Source   *string `json:"source" validate:"omitempty,max=100"`
	URL      *string `json:"url" validate:"omitempty,url,max=500"`
	ImageURL *string `json:"image_url" validate:"omitempty,url,max=500"`

	MinEducationLevel   *string  `json:"min_education_level" validate:"omitempty,max=100"`
	RequiredSkills      []string `json:"required_skills"`
	EligibilityCriteria *string  `json:"eligibility_criteria"`

	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Location  *string    `json:"location" validate:"omitempty,max=255"`
	IsActive  *bool      `json:"is_active"`
}

type ResourceResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`

	Source   string `json:"source,omitempty"`
	URL      string `json:"url"`
	ImageURL string `json:"image_url,omitempty"`

	MinEducationLevel   string   `json:"min_education_level,omitempty"`
	RequiredSkills      []string `json:"required_skills,omitempty"`
	EligibilityCriteria string   `json:"eligibility_criteria,omitempty"`

	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Location  string     `json:"location,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

func NewResourceResponse(res *models.Resource) *ResourceResponse {
	return &ResourceResponse{
		ID:                  res.ID,
		Title:               res.Title,
		Description:         res.Description,
		Type:                string(res.Type),
		Source:              res.Source,
		URL:                 res.URL,
		ImageURL:            res.ImageURL,
		MinEducationLevel:   res.MinEducationLevel,
		RequiredSkills:      res.GetRequiredSkills(),
		EligibilityCriteria: res.EligibilityCriteria,
		StartDate:           res.StartDate,
		EndDate:             res.EndDate,
		Location:            res.Location,
		IsActive:            res.IsActive,
		CreatedAt:           res.CreatedAt,
	}
}

func NewResourceResponseList(resources []models.Resource) []*ResourceResponse {
	out := make([]*ResourceResponse, 0, len(resources))
	for i := range resources {
		out = append(out, NewResourceResponse(&resources[i]))
	}
	return out
}
