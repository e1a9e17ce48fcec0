package models

// AdminUser grants administrator capability to a user. The existence of a
// row for a user is the sole authorization signal; there is no role
// hierarchy behind it.
type AdminUser struct {
	BaseModel
	UserID uint   `gorm:"uniqueIndex;not null" json:"user_id"`
	Role   string `gorm:"type:varchar(50);default:'admin'" json:"role"`
}
