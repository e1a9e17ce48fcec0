package models

// ReportStatus represents the moderation state of a citizen report
type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusApproved ReportStatus = "approved"
	ReportStatusRejected ReportStatus = "rejected"
)

// MaxEvidenceFiles caps the evidence list of a single report
const MaxEvidenceFiles = 3

// UnknownLocation is the fallback stored on the Struggle spawned from an
// approved report whose location is empty.
const UnknownLocation = "Unknown Location"

// Report is an unpublished citizen submission awaiting moderation.
// pending -> approved spawns exactly one verified Struggle; pending ->
// rejected is terminal. No transition leaves a terminal state.
type Report struct {
	BaseModel
	Title        string       `gorm:"type:varchar(200);not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	Category     string       `gorm:"type:varchar(50);index" json:"category"`
	Location     string       `gorm:"type:varchar(200)" json:"location"`
	EvidenceURLs []string     `gorm:"serializer:json" json:"evidence_urls"`
	Status       ReportStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	SubmittedBy  uint         `gorm:"index" json:"submitted_by"`
	ReviewedBy   *uint        `json:"reviewed_by,omitempty"`
}
