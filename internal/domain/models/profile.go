package models

// UserProfile is the one-to-one public profile of a user. A default row is
// created on first access when none exists.
type UserProfile struct {
	BaseModel
	UserID      uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	DisplayName string `gorm:"type:varchar(100)" json:"display_name"`
	AvatarURL   string `gorm:"type:varchar(255)" json:"avatar_url"`
	DateOfBirth string `gorm:"type:varchar(20)" json:"date_of_birth"`
	District    string `gorm:"type:varchar(100)" json:"district"`
}
