package models

// Struggle categories citizens can report under
const (
	CategoryInfrastructure = "Infrastructure"
	CategoryHealth         = "Health"
	CategoryHousing        = "Housing"
	CategoryEducation      = "Education"
)

// Struggle is a published, citizen-visible record of a community problem.
// It is created from an approved Report (or directly by an administrator)
// and immutable afterwards except for the verification flag.
type Struggle struct {
	BaseModel
	Headline string `gorm:"type:varchar(200);not null" json:"headline"`
	Summary  string `gorm:"type:text" json:"summary"`
	Category string `gorm:"type:varchar(50);index" json:"category"`
	Location string `gorm:"type:varchar(200)" json:"location"`
	Verified bool   `gorm:"default:false" json:"verified"`
	UserID   uint   `gorm:"index" json:"user_id"`
}
