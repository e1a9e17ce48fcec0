package models

// MinistryRecord holds the published data of a government ministry.
// Mutable only by administrators.
type MinistryRecord struct {
	BaseModel
	MinistryID       string   `gorm:"type:varchar(50);uniqueIndex;not null" json:"ministry_id"` // stable slug, e.g. "public-works"
	Name             string   `gorm:"type:varchar(200);not null" json:"name"`
	Address          string   `gorm:"type:varchar(255)" json:"address"`
	Contact          string   `gorm:"type:varchar(200)" json:"contact"`
	Email            string   `gorm:"type:varchar(100)" json:"email"`
	Categories       []string `gorm:"serializer:json" json:"categories"`
	CurrentIssues    []string `gorm:"serializer:json" json:"current_issues"`
	Implementations  []string `gorm:"serializer:json" json:"implementations"`
	MinisterName     string   `gorm:"type:varchar(100)" json:"minister_name,omitempty"`
	MinisterPhotoURL string   `gorm:"type:varchar(255)" json:"minister_photo_url,omitempty"`
}
