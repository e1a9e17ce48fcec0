package services

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

// InterfaceResourceService defines the natural-resource feed interface
type InterfaceResourceService interface {
	GetResources() ([]models.Resource, error)
	GetLiveData() (*LiveResourceSnapshot, error)
}

// LiveResourceSnapshot is the stable shape of the live petroleum metrics.
// Values are regenerated on every request and never persisted or cached.
type LiveResourceSnapshot struct {
	Source        string        `json:"source"`
	LastUpdated   time.Time     `json:"last_updated"`
	OilProduction OilProduction `json:"oil_production"`
	GasProduction GasProduction `json:"gas_production"`
	Revenue       Revenue       `json:"revenue"`
	Blocks        []Block       `json:"blocks"`
}

// OilProduction carries daily oil output metrics
type OilProduction struct {
	DailyBarrels int `json:"daily_barrels"`
	TotalWells   int `json:"total_wells"`
	ActiveRigs   int `json:"active_rigs"`
}

// GasProduction carries daily gas output metrics
type GasProduction struct {
	DailyMcf int    `json:"daily_mcf"`
	Reserves string `json:"reserves"`
}

// Revenue carries petroleum revenue figures
type Revenue struct {
	MonthlyUSD int64 `json:"monthly_usd"`
	YtdUSD     int64 `json:"ytd_usd"`
}

// Block describes an offshore exploration block
type Block struct {
	Name     string `json:"name"`
	Operator string `json:"operator"`
	Status   string `json:"status"`
}

// LiveDataProvider supplies a live snapshot. The synthetic provider stands
// in until a real data feed is integrated; the shape stays stable either way.
type LiveDataProvider interface {
	Fetch() (*LiveResourceSnapshot, error)
}

// ResourceService provides the resource news feed plus live metrics
type ResourceService struct {
	DB       *gorm.DB
	Config   *config.Config
	Provider LiveDataProvider
}

// NewResourceService creates a resource service. When LIVE_FEED_URL is
// configured the live path proxies that feed, otherwise synthetic values
// are generated.
func NewResourceService(db *gorm.DB, cfg *config.Config) InterfaceResourceService {
	var provider LiveDataProvider = &SyntheticFeed{}
	if cfg.LiveFeedURL != "" {
		provider = &PetroleumFeed{URL: cfg.LiveFeedURL, Client: &http.Client{Timeout: 10 * time.Second}}
	}
	return &ResourceService{DB: db, Config: cfg, Provider: provider}
}

// GetResources returns resource news items newest first
func (s *ResourceService) GetResources() ([]models.Resource, error) {
	resources := []models.Resource{}
	if err := s.DB.Order("created_at DESC").Find(&resources).Error; err != nil {
		return nil, err
	}
	return resources, nil
}

// GetLiveData fetches a fresh snapshot from the configured provider
func (s *ResourceService) GetLiveData() (*LiveResourceSnapshot, error) {
	return s.Provider.Fetch()
}

// SyntheticFeed generates plausibly-ranged petroleum figures
type SyntheticFeed struct{}

// Fetch builds a fresh synthetic snapshot
func (f *SyntheticFeed) Fetch() (*LiveResourceSnapshot, error) {
	return &LiveResourceSnapshot{
		Source:      "https://petroleum.gov.gy/data-visualization",
		LastUpdated: time.Now().UTC(),
		OilProduction: OilProduction{
			DailyBarrels: rand.Intn(50000) + 300000,
			TotalWells:   12,
			ActiveRigs:   3,
		},
		GasProduction: GasProduction{
			DailyMcf: rand.Intn(10000) + 50000,
			Reserves: "15+ TCF",
		},
		Revenue: Revenue{
			MonthlyUSD: int64(rand.Intn(100000000)) + 500000000,
			YtdUSD:     int64(rand.Intn(1000000000)) + 6000000000,
		},
		Blocks: []Block{
			{Name: "Stabroek Block", Operator: "ExxonMobil", Status: "Producing"},
			{Name: "Kaieteur Block", Operator: "ExxonMobil", Status: "Exploration"},
			{Name: "Canje Block", Operator: "ExxonMobil", Status: "Exploration"},
		},
	}, nil
}

// PetroleumFeed fetches the snapshot from an external data feed
type PetroleumFeed struct {
	URL    string
	Client *http.Client
}

// Fetch retrieves and decodes the external feed
func (f *PetroleumFeed) Fetch() (*LiveResourceSnapshot, error) {
	resp, err := f.Client.Get(f.URL)
	if err != nil {
		return nil, fmt.Errorf("error fetching live data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("live data feed returned status code %d", resp.StatusCode)
	}

	var snapshot LiveResourceSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("error decoding live data response: %w", err)
	}
	if snapshot.LastUpdated.IsZero() {
		snapshot.LastUpdated = time.Now().UTC()
	}
	return &snapshot, nil
}
