package models

type User struct {
	BaseModel
	Email            string           `gorm:"uniqueIndex;not null"`
	PasswordHash     string           `gorm:"not null"`
	FullName         string           `gorm:"index"`
	PhoneNumber      string           `gorm:"index"`
	Role             UserRole         `gorm:"type:varchar(20);not null;default:'user'"`
	EmploymentStatus EmploymentStatus `gorm:"type:varchar(20)"`
	IsActive         bool             `gorm:"default:true"`
	IsVerified       bool             `gorm:"default:false"`

	// Relations
	EducationProfile *EducationProfile `gorm:"foreignKey:UserID"`
	Documents        []Document        `gorm:"foreignKey:UserID"`
	Activities       []UserActivity    `gorm:"foreignKey:UserID"`
}
