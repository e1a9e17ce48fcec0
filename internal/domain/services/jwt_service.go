package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/infrastructure/config"
	"citizens-voice-http-service/utils"

	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"
)

// InterfaceJWTService defines the authentication service interface
type InterfaceJWTService interface {
	GenerateToken(userID uint, role string) (string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
	Login(email, password string) (*LoginResult, error)
	Register(email, password, displayName string) (*LoginResult, error)
}

// LoginResult represents a successful authentication
type LoginResult struct {
	Token       string    `json:"token"`
	UserID      uint      `json:"user_id"`
	Role        string    `json:"role"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// JWTService issues and validates access tokens. The role claim is resolved
// once per session from admin_users existence, so every later request
// carries an explicit authorization context instead of an ambient flag.
type JWTService struct {
	secretKey string
	issuer    string
	DB        *gorm.DB
}

// NewJWTService creates a new authentication service
func NewJWTService(cfg *config.Config, db *gorm.DB) InterfaceJWTService {
	return &JWTService{
		secretKey: cfg.JWTSecretKey,
		issuer:    "citizens-voice-http-service",
		DB:        db,
	}
}

// GenerateToken generates a signed token valid for 24 hours
func (s *JWTService) GenerateToken(userID uint, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"iss":     s.issuer,
		"iat":     jwt.NewNumericDate(now),
		"nbf":     jwt.NewNumericDate(now),
		"exp":     jwt.NewNumericDate(now.Add(24 * time.Hour)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

// ValidateToken parses and verifies a token string
func (s *JWTService) ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
}

// Login verifies credentials and issues a token. The admin role is derived
// from admin_users existence at login time.
func (s *JWTService) Login(email, password string) (*LoginResult, error) {
	var user models.User
	if err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("incorrect email or password")
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, errors.New("incorrect email or password")
	}

	role := "user"
	var count int64
	if err := s.DB.Model(&models.AdminUser{}).Where("user_id = ?", user.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		role = "admin"
	}

	token, err := s.GenerateToken(user.ID, role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:       token,
		UserID:      user.ID,
		Role:        role,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}, nil
}

// Register creates a citizen account together with its default profile and
// issues a first token.
func (s *JWTService) Register(email, password, displayName string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, errors.New("email and password are required")
	}

	var count int64
	if err := s.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("user already exists")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{Email: email, Password: hashed, DisplayName: strings.TrimSpace(displayName)}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.UserProfile{UserID: user.ID, DisplayName: user.DisplayName}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	token, err := s.GenerateToken(user.ID, "user")
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:       token,
		UserID:      user.ID,
		Role:        "user",
		Email:       user.Email,
		DisplayName: user.DisplayName,
		CreatedAt:   user.CreatedAt,
	}, nil
}
