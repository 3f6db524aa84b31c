package models

import "gorm.io/datatypes"

// UserActivity is an append-only audit row recorded on logins, uploads and
// review decisions.
type UserActivity struct {
	BaseModel
	UserID       string       `gorm:"type:uuid;not null;index" json:"user_id"`
	ActivityType ActivityType `gorm:"type:varchar(30);not null;index" json:"activity_type"`
	EntityType   string       `gorm:"size:50" json:"entity_type,omitempty"`
	EntityID     string       `gorm:"size:64" json:"entity_id,omitempty"`

	IPAddress string         `gorm:"size:45" json:"ip_address,omitempty"` // IPv6 fits in 45 chars
	UserAgent string         `gorm:"type:text" json:"user_agent,omitempty"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
}
