// @title           The Citizen's Voice API
// @version         1.0
// @description     Civic issue reporting service for Guyana: struggles, reports, resources, communities and ministry data.

// @BasePath  /api

// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Enter the token with the `Bearer: ` prefix
package main

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"citizens-voice-http-service/internal/app/routes"
	"citizens-voice-http-service/internal/domain/models"
	"citizens-voice-http-service/internal/domain/services"
	"citizens-voice-http-service/internal/infrastructure/config"
	"citizens-voice-http-service/internal/infrastructure/database"
	"citizens-voice-http-service/internal/infrastructure/logger"
	"citizens-voice-http-service/internal/infrastructure/storage"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := logger.SetupLogger(); err != nil {
		fmt.Printf("failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := godotenv.Load(); err != nil {
		logger.Warning("no .env file loaded: %v", err)
	} else {
		logger.Info(".env file loaded")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		log.Fatalf("failed to create database connection pool: %v", err)
	}
	db := pool.DB

	if cfg.DBMigrationMode == "drop" {
		log.Println("warning: running in drop mode, all tables will be dropped and recreated")
		if err := dropAndRecreateTables(db); err != nil {
			log.Fatalf("failed to drop and recreate tables: %v", err)
		}
	} else {
		if err := autoMigrate(db); err != nil {
			log.Fatalf("database migration failed: %v", err)
		}
	}

	seedInitialData(db, cfg)

	store, err := storage.NewObjectStore(cfg)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	r := routes.SetupRouter(db, cfg, store)

	port := cfg.ServerPort
	logger.Info("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		logger.Error("server exited: %v", err)
		os.Exit(1)
	}
}

// autoMigrate adds new columns and tables without touching existing ones
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.AdminUser{},
		&models.Struggle{},
		&models.Report{},
		&models.Resource{},
		&models.Community{},
		&models.MinistryRecord{},
	)
}

// dropAndRecreateTables rebuilds the schema from scratch
func dropAndRecreateTables(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get DB connection: %w", err)
	}

	if _, err := sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 0"); err != nil {
		log.Printf("failed to disable foreign key checks: %v", err)
	}
	defer sqlDB.Exec("SET FOREIGN_KEY_CHECKS = 1")

	tables := []string{
		"users", "user_profiles", "admin_users", "struggles", "reports",
		"resources", "communities", "ministry_records",
	}
	for _, table := range tables {
		if _, err := sqlDB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", table)); err != nil {
			log.Printf("failed to drop table %s: %v", table, err)
		}
	}

	return autoMigrate(db)
}

// seedInitialData guarantees a usable system on first boot: one default
// administrator and the ministry directory.
func seedInitialData(db *gorm.DB, cfg *config.Config) {
	adminService := services.NewAdminService(db, cfg)
	if err := adminService.EnsureDefaultAdmin(); err != nil {
		log.Fatalf("failed to ensure default admin: %v", err)
	}

	ministryService := services.NewMinistryService(db, cfg)
	if err := ministryService.SeedMinistries(); err != nil {
		log.Fatalf("failed to seed ministry records: %v", err)
	}
}
