package container

import (
	"log"
	"sync"

	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/infrastructure/config"
	"citizens-voice-http-service/internal/infrastructure/storage"

	"gorm.io/gorm"
)

// ServiceContainer wires all services behind one dependency-injection point
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config
	store  storage.ObjectStore

	// Base services
	jwtService   services.InterfaceJWTService
	redisService services.InterfaceRedisService

	// Domain services
	struggleService  services.InterfaceStruggleService
	reportService    services.InterfaceReportService
	resourceService  services.InterfaceResourceService
	communityService services.InterfaceCommunityService
	ministryService  services.InterfaceMinistryService
	profileService   services.InterfaceProfileService
	adminService     services.InterfaceAdminService

	mu sync.RWMutex
}

// NewServiceContainer creates the container and initializes every service.
// The Redis service is optional: when it cannot be reached the response
// cache falls back to its in-process store.
func NewServiceContainer(db *gorm.DB, cfg *config.Config, store storage.ObjectStore) *ServiceContainer {
	if db == nil {
		panic("database connection is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
		store:  store,
	}
	container.initializeServices()
	return container
}

// initializeServices constructs all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config, c.db)

	c.redisService = services.NewRedisService(c.config)
	if err := c.redisService.Ping(); err != nil {
		log.Printf("Redis connection test failed: %v, response cache falls back to memory", err)
		c.redisService = nil
	}

	c.struggleService = services.NewStruggleService(c.db, c.config)
	c.reportService = services.NewReportService(c.db, c.config)
	c.resourceService = services.NewResourceService(c.db, c.config)
	c.communityService = services.NewCommunityService(c.db, c.config)
	c.ministryService = services.NewMinistryService(c.db, c.config)
	c.profileService = services.NewProfileService(c.db, c.config)
	c.adminService = services.NewAdminService(c.db, c.config)
}

// GetService returns the service registered under a name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "config":
		return c.config
	case "db":
		return c.db
	case "storage":
		return c.store
	case "jwt":
		return c.jwtService
	case "redis":
		return c.redisService
	case "struggle":
		return c.struggleService
	case "report":
		return c.reportService
	case "resource":
		return c.resourceService
	case "community":
		return c.communityService
	case "ministry":
		return c.ministryService
	case "profile":
		return c.profileService
	case "admin":
		return c.adminService
	default:
		return nil
	}
}

// GetDB returns the database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.db
}

// GetConfig returns the application configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

// GetObjectStore returns the object storage backend
func (c *ServiceContainer) GetObjectStore() storage.ObjectStore {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store
}
