package services

import (
	"errors"
	"fmt"
	"strings"

	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// ErrReportAlreadyReviewed is returned when a moderation action races with,
// or repeats, an earlier decision on the same report.
var ErrReportAlreadyReviewed = errors.New("report has already been reviewed")

// InterfaceReportService defines the report submission and moderation interface
type InterfaceReportService interface {
	SubmitReport(report *models.Report) error
	GetReports(query models.PaginationQuery) ([]models.Report, int64, error)
	GetReportsBySubmitter(userID uint) ([]models.Report, error)
	ModerateReport(reportID uint, target models.ReportStatus, reviewerID uint) (*models.Report, error)
}

// ReportService owns the report lifecycle: pending -> approved | rejected,
// exactly once. Approval and the spawned struggle commit in one transaction.
type ReportService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB, cfg *config.Config) InterfaceReportService {
	return &ReportService{DB: db, Config: cfg}
}

// SubmitReport validates and stores a citizen submission. The evidence cap
// is enforced here as well, not only in the submitting client.
func (s *ReportService) SubmitReport(report *models.Report) error {
	report.Title = strings.TrimSpace(report.Title)
	report.Description = strings.TrimSpace(report.Description)
	if report.Title == "" {
		return errors.New("title is required")
	}
	if report.Description == "" {
		return errors.New("description is required")
	}
	if report.Category == "" {
		return errors.New("category is required")
	}
	if len(report.EvidenceURLs) > models.MaxEvidenceFiles {
		return fmt.Errorf("a report may carry at most %d evidence files", models.MaxEvidenceFiles)
	}
	if report.EvidenceURLs == nil {
		report.EvidenceURLs = []string{}
	}

	report.Status = models.ReportStatusPending
	report.ReviewedBy = nil
	return s.DB.Create(report).Error
}

// GetReports returns a page of the moderation queue newest first, plus the
// total count across all pages.
func (s *ReportService) GetReports(query models.PaginationQuery) ([]models.Report, int64, error) {
	query.Normalize()

	var total int64
	if err := s.DB.Model(&models.Report{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	reports := []models.Report{}
	offset := (query.Page - 1) * query.PageSize
	if err := s.DB.Order("created_at DESC").Offset(offset).Limit(query.PageSize).Find(&reports).Error; err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// GetReportsBySubmitter returns a citizen's own submissions newest first
func (s *ReportService) GetReportsBySubmitter(userID uint) ([]models.Report, error) {
	reports := []models.Report{}
	if err := s.DB.Where("submitted_by = ?", userID).Order("created_at DESC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// ModerateReport applies a one-way moderation decision. The status change is
// a conditional update (status must still be pending) so two racing
// administrators cannot both approve; the loser gets
// ErrReportAlreadyReviewed and no duplicate struggle is created. When the
// target is approved, the struggle insert commits with the status change or
// not at all.
func (s *ReportService) ModerateReport(reportID uint, target models.ReportStatus, reviewerID uint) (*models.Report, error) {
	if target != models.ReportStatusApproved && target != models.ReportStatusRejected {
		return nil, fmt.Errorf("invalid target status %q", target)
	}

	var report models.Report
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&report, reportID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("report does not exist")
			}
			return err
		}

		result := tx.Model(&models.Report{}).
			Where("id = ? AND status = ?", reportID, models.ReportStatusPending).
			Updates(map[string]interface{}{"status": target, "reviewed_by": reviewerID})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrReportAlreadyReviewed
		}

		if target == models.ReportStatusApproved {
			location := report.Location
			if location == "" {
				location = models.UnknownLocation
			}
			struggle := models.Struggle{
				Headline: report.Title,
				Summary:  report.Description,
				Category: report.Category,
				Location: location,
				Verified: true,
				UserID:   report.SubmittedBy,
			}
			if err := tx.Create(&struggle).Error; err != nil {
				return err
			}
		}

		report.Status = target
		report.ReviewedBy = &reviewerID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}
