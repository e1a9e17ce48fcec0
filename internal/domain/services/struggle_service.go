package services

import (
	"errors"

	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceStruggleService defines the struggle feed service interface
type InterfaceStruggleService interface {
	GetStruggles(category, district string) ([]models.Struggle, error)
	CreateStruggle(struggle *models.Struggle) error
	SetVerified(id uint, verified bool) (*models.Struggle, error)
}

// StruggleService provides the published struggle feed
type StruggleService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewStruggleService creates a new struggle service
func NewStruggleService(db *gorm.DB, cfg *config.Config) InterfaceStruggleService {
	return &StruggleService{DB: db, Config: cfg}
}

// GetStruggles returns struggles newest first, optionally filtered by
// category and district location.
func (s *StruggleService) GetStruggles(category, district string) ([]models.Struggle, error) {
	struggles := []models.Struggle{}

	query := s.DB.Model(&models.Struggle{})
	if category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}
	if district != "" {
		query = query.Where("location LIKE ?", "%"+district+"%")
	}

	if err := query.Order("created_at DESC").Find(&struggles).Error; err != nil {
		return nil, err
	}
	return struggles, nil
}

// CreateStruggle publishes a struggle directly (administrator path)
func (s *StruggleService) CreateStruggle(struggle *models.Struggle) error {
	if struggle.Headline == "" {
		return errors.New("headline is required")
	}
	if struggle.Location == "" {
		struggle.Location = models.UnknownLocation
	}
	return s.DB.Create(struggle).Error
}

// SetVerified updates the only mutable field of a published struggle
func (s *StruggleService) SetVerified(id uint, verified bool) (*models.Struggle, error) {
	var struggle models.Struggle
	if err := s.DB.First(&struggle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("struggle does not exist")
		}
		return nil, err
	}

	if err := s.DB.Model(&struggle).Update("verified", verified).Error; err != nil {
		return nil, err
	}
	struggle.Verified = verified
	return &struggle, nil
}
