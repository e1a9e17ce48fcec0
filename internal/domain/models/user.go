package models

// User represents an authenticated citizen account
type User struct {
	BaseModel
	Email       string `gorm:"type:varchar(100);unique;not null" json:"email"`
	Password    string `gorm:"type:varchar(100);not null" json:"-"` // Password not exposed in JSON
	DisplayName string `gorm:"type:varchar(100)" json:"display_name"`
}
