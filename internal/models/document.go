package models

import "time"

// Document is an uploaded verification document. Owned by the uploading
// user; reviewed (at most) by one elevated reviewer at a time.
//
// Invariants: RejectionReason is set only when Status is rejected;
// VerifiedBy/VerifiedAt are set only once a reviewer has acted.
type Document struct {
	BaseModel
	UserID string       `gorm:"type:uuid;not null;index"`
	Type   DocumentType `gorm:"type:varchar(40);not null"`

	Path     string `gorm:"not null"` // storage key
	FileName string `gorm:"not null"` // original filename
	FileSize int64
	MimeType string

	Status          DocumentStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	RejectionReason string         `gorm:"type:text"`
	VerifiedBy      *string        `gorm:"type:uuid"`
	VerifiedAt      *time.Time

	// Relations
	Owner    *User `gorm:"foreignKey:UserID"`
	Verifier *User `gorm:"foreignKey:VerifiedBy"`
}
