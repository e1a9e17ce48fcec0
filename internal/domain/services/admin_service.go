package services

import (
	"errors"
	"strings"

	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/infrastructure/config"
	"citizens-voice-http-service/utils"

	"gorm.io/gorm"
)

// InterfaceAdminService manages the admin_users table. A row's existence is
// the sole admin-capability signal across the whole system.
type InterfaceAdminService interface {
	IsAdmin(userID uint) (bool, error)
	GetAdminUsers() ([]AdminUserView, error)
	AddAdmin(email, role string) (*models.AdminUser, error)
	RemoveAdmin(id uint) error
	EnsureDefaultAdmin() error
}

// AdminUserView joins an admin_users row with its user's email for listings
type AdminUserView struct {
	models.AdminUser
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

// AdminService provides admin-user management
type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminService creates a new admin service
func NewAdminService(db *gorm.DB, cfg *config.Config) InterfaceAdminService {
	return &AdminService{DB: db, Config: cfg}
}

// IsAdmin reports whether an admin_users row exists for the user
func (s *AdminService) IsAdmin(userID uint) (bool, error) {
	var count int64
	if err := s.DB.Model(&models.AdminUser{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAdminUsers lists all admin users with their account email
func (s *AdminService) GetAdminUsers() ([]AdminUserView, error) {
	var views []AdminUserView
	err := s.DB.Model(&models.AdminUser{}).
		Select("admin_users.*, users.email AS email, users.display_name AS display_name").
		Joins("JOIN users ON users.id = admin_users.user_id").
		Order("admin_users.created_at DESC").
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// AddAdmin grants admin capability to an existing user, looked up by email
func (s *AdminService) AddAdmin(email, role string) (*models.AdminUser, error) {
	var user models.User
	if err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("user does not exist")
		}
		return nil, err
	}

	var count int64
	if err := s.DB.Model(&models.AdminUser{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("the user is already an administrator")
	}

	if role == "" {
		role = "admin"
	}
	admin := models.AdminUser{UserID: user.ID, Role: role}
	if err := s.DB.Create(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// RemoveAdmin revokes admin capability
func (s *AdminService) RemoveAdmin(id uint) error {
	result := s.DB.Delete(&models.AdminUser{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("admin user does not exist")
	}
	return nil
}

// EnsureDefaultAdmin seeds an administrator account when none exists, so a
// fresh deployment can always be moderated.
func (s *AdminService) EnsureDefaultAdmin() error {
	var count int64
	if err := s.DB.Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(s.Config.DefaultAdminPassword)
	if err != nil {
		return err
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{
			Email:       strings.ToLower(s.Config.DefaultAdminEmail),
			Password:    hashed,
			DisplayName: "Administrator",
		}
		if err := tx.Where("email = ?", user.Email).FirstOrCreate(&user).Error; err != nil {
			return err
		}
		admin := models.AdminUser{UserID: user.ID, Role: "admin"}
		return tx.Create(&admin).Error
	})
}
