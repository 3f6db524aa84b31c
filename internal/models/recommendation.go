package models

// UserRecommendation is a persisted recommendation with interaction tracking.
// The live ranker recomputes scores per request and does not write this
// table; it exists for future feedback-driven models.
type UserRecommendation struct {
	BaseModel
	UserID     string `gorm:"type:uuid;not null;index"`
	ResourceID string `gorm:"type:uuid;not null;index"`

	Score        float64 `gorm:"not null"`
	ModelVersion string  `gorm:"size:50"`

	IsViewed      bool `gorm:"default:false"`
	IsApplied     bool `gorm:"default:false"`
	IsSaved       bool `gorm:"default:false"`
	FeedbackScore *int // 1-5 user rating

	// Relations
	User     *User     `gorm:"foreignKey:UserID"`
	Resource *Resource `gorm:"foreignKey:ResourceID"`
}
