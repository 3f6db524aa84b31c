package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Resource is a catalog entry: a job, course, scholarship, workshop or
// government scheme. Managed by administrators; read-only for everyone else.
type Resource struct {
	BaseModel
	Title       string       `gorm:"size:255;not null"`
	Description string       `gorm:"type:text"`
	Type        ResourceType `gorm:"type:varchar(30);not null"`

	Source   string `gorm:"size:100"` // issuing department or portal
	URL      string `gorm:"size:500;not null"`
	ImageURL string `gorm:"size:500"`

	// Eligibility metadata
	MinEducationLevel   string         `gorm:"size:100"`
	RequiredSkills      datatypes.JSON `gorm:"type:jsonb"` // ["skill", ...]
	EligibilityCriteria string         `gorm:"type:text"`

	StartDate *time.Time
	EndDate   *time.Time
	Location  string `gorm:"size:255"`
	IsActive  bool   `gorm:"default:true"`
}

// GetRequiredSkills returns the skills column as a string slice.
func (r *Resource) GetRequiredSkills() []string {
	var skills []string
	if len(r.RequiredSkills) > 0 {
		_ = json.Unmarshal(r.RequiredSkills, &skills)
	}
	return skills
}

// SetRequiredSkills stores a string slice into the skills column.
func (r *Resource) SetRequiredSkills(skills []string) {
	data, _ := json.Marshal(skills)
	r.RequiredSkills = datatypes.JSON(data)
}
