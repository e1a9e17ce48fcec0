package services

import (
	"errors"

	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceMinistryService defines the ministry data service interface
type InterfaceMinistryService interface {
	GetMinistries() ([]models.MinistryRecord, error)
	UpdateMinistry(id uint, updates map[string]interface{}) (*models.MinistryRecord, error)
	SeedMinistries() error
}

// MinistryService provides government ministry records
type MinistryService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewMinistryService creates a new ministry service
func NewMinistryService(db *gorm.DB, cfg *config.Config) InterfaceMinistryService {
	return &MinistryService{DB: db, Config: cfg}
}

// GetMinistries returns all ministry records ordered by name
func (s *MinistryService) GetMinistries() ([]models.MinistryRecord, error) {
	ministries := []models.MinistryRecord{}
	if err := s.DB.Order("name ASC").Find(&ministries).Error; err != nil {
		return nil, err
	}
	return ministries, nil
}

// UpdateMinistry applies administrator edits to a ministry record. The
// stable slug is never updated.
func (s *MinistryService) UpdateMinistry(id uint, updates map[string]interface{}) (*models.MinistryRecord, error) {
	var ministry models.MinistryRecord
	if err := s.DB.First(&ministry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("ministry record does not exist")
		}
		return nil, err
	}

	// apply field by field so the JSON list columns go through the
	// serializer, which map-based updates would bypass
	for key, value := range updates {
		switch key {
		case "name":
			if v, ok := value.(string); ok {
				ministry.Name = v
			}
		case "address":
			if v, ok := value.(string); ok {
				ministry.Address = v
			}
		case "contact":
			if v, ok := value.(string); ok {
				ministry.Contact = v
			}
		case "email":
			if v, ok := value.(string); ok {
				ministry.Email = v
			}
		case "categories":
			if v, ok := value.([]string); ok {
				ministry.Categories = v
			}
		case "current_issues":
			if v, ok := value.([]string); ok {
				ministry.CurrentIssues = v
			}
		case "implementations":
			if v, ok := value.([]string); ok {
				ministry.Implementations = v
			}
		case "minister_name":
			if v, ok := value.(string); ok {
				ministry.MinisterName = v
			}
		case "minister_photo_url":
			if v, ok := value.(string); ok {
				ministry.MinisterPhotoURL = v
			}
		}
	}

	if err := s.DB.Save(&ministry).Error; err != nil {
		return nil, err
	}
	return &ministry, nil
}

// SeedMinistries loads the known Guyana ministries on an empty table
func (s *MinistryService) SeedMinistries() error {
	var count int64
	if err := s.DB.Model(&models.MinistryRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []models.MinistryRecord{
		{
			MinistryID:      "finance",
			Name:            "Ministry of Finance",
			Address:         "49 Main & Urquhart Streets, Georgetown, Guyana",
			Contact:         "592 227 3992, 592 225 6088, 592 227 7935",
			Email:           "publicrelations@finance.gov.gy",
			Categories:      []string{"Budget", "Tax Policy", "Economic Development", "Public Debt"},
			CurrentIssues:   []string{"2024 Budget Implementation", "Tax Reform Initiative", "Debt Management Strategy"},
			Implementations: []string{"Digital Tax Platform", "Budget Transparency Portal", "Economic Recovery Program"},
		},
		{
			MinistryID:      "health",
			Name:            "Ministry of Health",
			Address:         "1 Brickdam, Georgetown, Guyana",
			Contact:         "592 227 7986",
			Email:           "mophguyanapr@gmail.com",
			Categories:      []string{"Healthcare", "Public Health", "Medical Services", "Health Policy"},
			CurrentIssues:   []string{"Healthcare Access in Rural Areas", "Medical Equipment Shortages", "Staff Training Programs"},
			Implementations: []string{"Telemedicine Initiative", "Mobile Health Clinics", "Healthcare Worker Training Program"},
		},
		{
			MinistryID:      "education",
			Name:            "Ministry of Education",
			Address:         "21 Brickdam, Georgetown, Guyana",
			Contact:         "592 223 7900",
			Email:           "educationministrygy@gmail.com",
			Categories:      []string{"Primary Education", "Secondary Education", "Higher Education", "Technical Training"},
			CurrentIssues:   []string{"School Infrastructure", "Teacher Shortage", "Educational Technology"},
			Implementations: []string{"Digital Learning Platform", "Teacher Training Program", "School Improvement Projects"},
		},
		{
			MinistryID:      "housing",
			Name:            "Ministry of Housing and Water",
			Address:         "41 Brickdam & United Nations Place, Georgetown, Guyana",
			Contact:         "592 223 7521",
			Email:           "ps.housing.water@gmail.com",
			Categories:      []string{"Housing Development", "Water Supply", "Sanitation", "Urban Planning"},
			CurrentIssues:   []string{"Housing Shortage", "Water Access in Remote Areas", "Sewerage Systems"},
			Implementations: []string{"Low-Income Housing Program", "Water Infrastructure Expansion", "Smart City Initiative"},
		},
		{
			MinistryID:      "agriculture",
			Name:            "Ministry of Agriculture",
			Address:         "Regent Street & Vlissengen Road, Bourda, Georgetown, Guyana",
			Contact:         "592 223 7291",
			Email:           "agri.pr.gy@gmail.com",
			Categories:      []string{"Crop Production", "Livestock", "Food Security", "Agricultural Technology"},
			CurrentIssues:   []string{"Climate Change Impact", "Market Access", "Agricultural Modernization"},
			Implementations: []string{"Smart Agriculture Program", "Farmer Support Initiative", "Food Security Strategy"},
		},
		{
			MinistryID:      "natural-resources",
			Name:            "Ministry of Natural Resources",
			Address:         "96 Duke Street, Kingston, Georgetown, Guyana",
			Contact:         "592 231 2506, 592 231 2511",
			Email:           "ministry@nre.gov.gy",
			Categories:      []string{"Mining", "Forestry", "Petroleum", "Environmental Protection"},
			CurrentIssues:   []string{"Environmental Impact", "Resource Management", "Local Content Development"},
			Implementations: []string{"Sustainable Mining Initiative", "Forest Conservation Program", "Local Content Policy"},
		},
		{
			MinistryID:      "culture-youth-sport",
			Name:            "Ministry of Culture, Youth and Sport",
			Address:         "71-72 Main Street, Georgetown, Guyana",
			Contact:         "592 226 8562",
			Email:           "minofcyf@gmail.com",
			Categories:      []string{"Sports Development", "Cultural Heritage", "Youth Programs", "Recreation"},
			CurrentIssues:   []string{"Youth Employment", "Sports Infrastructure", "Cultural Preservation"},
			Implementations: []string{"Youth Skills Program", "Sports Facility Upgrade", "Cultural Heritage Project"},
		},
		{
			MinistryID:      "public-works",
			Name:            "Ministry of Public Works",
			Address:         "Wight's Lane, Kingston, Georgetown, Guyana",
			Contact:         "592 225 6510",
			Email:           "ministryofpublicworksgy@gmail.com",
			Categories:      []string{"Infrastructure", "Road Maintenance", "Public Buildings", "Transportation"},
			CurrentIssues:   []string{"Road Network Maintenance", "Bridge Repairs", "Public Building Upgrades"},
			Implementations: []string{"National Road Improvement Program", "Bridge Rehabilitation Project", "Infrastructure Modernization"},
		},
	}

	return s.DB.Create(&seed).Error
}
