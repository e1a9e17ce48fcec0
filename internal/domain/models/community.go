package models

// Community represents a local community group
type Community struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);unique;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	District    string `gorm:"type:varchar(100);index" json:"district"`
	MemberCount int    `gorm:"default:0" json:"member_count"`
	CreatedBy   uint   `json:"created_by"`
}
