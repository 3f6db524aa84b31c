package models

import "strings"

// EducationProfile holds the declared educational attributes of a user.
// Exactly one per user, created lazily on the first write.
type EducationProfile struct {
	BaseModel
	UserID string `gorm:"type:uuid;uniqueIndex;not null"`

	// Pre-university (10+2)
	PUMarks  *float64 // percentage
	PUStream string   // science, commerce, arts
	PUYear   *int

	// Degree
	DegreeName     string
	DegreeMarks    *float64 // CGPA or percentage
	DegreeYear     *int
	Specialization string
	University     string

	AdditionalQualifications string `gorm:"type:text"`
	AreasOfInterest          string `gorm:"type:text"` // comma-separated tags
}

// InterestTags splits AreasOfInterest into trimmed, lowercased, non-empty tags.
func (e *EducationProfile) InterestTags() []string {
	if e.AreasOfInterest == "" {
		return nil
	}
	var tags []string
	for _, raw := range strings.Split(e.AreasOfInterest, ",") {
		tag := strings.ToLower(strings.TrimSpace(raw))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
