package services

import (
	"errors"
	"strings"

	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceCommunityService defines the community group service interface
type InterfaceCommunityService interface {
	GetCommunities() ([]models.Community, error)
	CreateCommunity(community *models.Community) error
}

// CommunityService provides local community groups
type CommunityService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewCommunityService creates a new community service
func NewCommunityService(db *gorm.DB, cfg *config.Config) InterfaceCommunityService {
	return &CommunityService{DB: db, Config: cfg}
}

// GetCommunities returns community groups newest first
func (s *CommunityService) GetCommunities() ([]models.Community, error) {
	communities := []models.Community{}
	if err := s.DB.Order("created_at DESC").Find(&communities).Error; err != nil {
		return nil, err
	}
	return communities, nil
}

// CreateCommunity registers a community group with a unique name
func (s *CommunityService) CreateCommunity(community *models.Community) error {
	community.Name = strings.TrimSpace(community.Name)
	if community.Name == "" {
		return errors.New("name is required")
	}

	var count int64
	if err := s.DB.Model(&models.Community{}).Where("name = ?", community.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return errors.New("community already exists")
	}

	return s.DB.Create(community).Error
}
