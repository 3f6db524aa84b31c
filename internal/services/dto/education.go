package dto

import (
	"time"

	"civicmatch_backend/internal/models"
)

// UpdateEducationRequest applies partial-update semantics: only supplied
// fields change. Marks are validated into [0,100].
type UpdateEducationRequest struct {
	PUMarks  *float64 `json:"pu_marks" validate:"omitempty,min=0,max=100"`
	PUStream *string  `json:"pu_stream" validate:"omitempty,max=100"`
	PUYear   *int     `json:"pu_year" validate:"omitempty,min=1950,max=2100"`

	DegreeName     *string  `json:"degree_name" validate:"omitempty,max=200"`
	DegreeMarks    *float64 `json:"degree_marks" validate:"omitempty,min=0,max=100"`
	DegreeYear     *int     `json:"degree_year" validate:"omitempty,min=1950,max=2100"`
	Specialization *string  `json:"specialization" validate:"omitempty,max=200"`
	University     *string  `json:"university" validate:"omitempty,max=200"`

	AdditionalQualifications *string `json:"additional_qualifications"`
	AreasOfInterest          *string `json:"areas_of_interest"`
}

type EducationResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	PUMarks  *float64 `json:"pu_marks,omitempty"`
	PUStream string   `json:"pu_stream,omitempty"`
	PUYear   *int     `json:"pu_year,omitempty"`

	DegreeName     string   `json:"degree_name,omitempty"`
	DegreeMarks    *float64 `json:"degree_marks,omitempty"`
	DegreeYear     *int     `json:"degree_year,omitempty"`
	Specialization string   `json:"specialization,omitempty"`
	University     string   `json:"university,omitempty"`

	AdditionalQualifications string `json:"additional_qualifications,omitempty"`
	AreasOfInterest          string `json:"areas_of_interest,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func NewEducationResponse(edu *models.EducationProfile) *EducationResponse {
	return &EducationResponse{
		ID:                       edu.ID,
		UserID:                   edu.UserID,
		PUMarks:                  edu.PUMarks,
		PUStream:                 edu.PUStream,
		PUYear:                   edu.PUYear,
		DegreeName:               edu.DegreeName,
		DegreeMarks:              edu.DegreeMarks,
		DegreeYear:               edu.DegreeYear,
		Specialization:           edu.Specialization,
		University:               edu.University,
		AdditionalQualifications: edu.AdditionalQualifications,
		AreasOfInterest:          edu.AreasOfInterest,
		UpdatedAt:                edu.UpdatedAt,
	}
}
