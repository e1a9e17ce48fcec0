package services

import (
	"errors"

	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceProfileService defines the user profile service interface
type InterfaceProfileService interface {
	GetOrCreateProfile(userID uint) (*models.UserProfile, error)
	UpdateProfile(userID uint, updates map[string]interface{}) (*models.UserProfile, error)
}

// ProfileService provides one-to-one user profiles
type ProfileService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewProfileService creates a new profile service
func NewProfileService(db *gorm.DB, cfg *config.Config) InterfaceProfileService {
	return &ProfileService{DB: db, Config: cfg}
}

// GetOrCreateProfile returns the user's profile, creating a default row on
// first access.
func (s *ProfileService) GetOrCreateProfile(userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	err := s.DB.Where("user_id = ?", userID).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user does not exist")
		}
		return nil, err
	}

	profile = models.UserProfile{UserID: userID, DisplayName: user.DisplayName}
	if err := s.DB.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies edits to the user's own profile
func (s *ProfileService) UpdateProfile(userID uint, updates map[string]interface{}) (*models.UserProfile, error) {
	profile, err := s.GetOrCreateProfile(userID)
	if err != nil {
		return nil, err
	}

	delete(updates, "user_id")
	delete(updates, "id")
	if len(updates) == 0 {
		return profile, nil
	}

	if err := s.DB.Model(profile).Updates(updates).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Where("user_id = ?", userID).First(profile).Error; err != nil {
		return nil, err
	}
	return profile, nil
}
