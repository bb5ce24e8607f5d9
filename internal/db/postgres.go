package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-api/internal/config"
	"github.com/BruksfildServices01/barbershop-api/internal/models"
)

// NewAuditDB opens the relational audit database. It returns nil when no
// DSN is configured; the audit trail then only goes to the process log.
func NewAuditDB(cfg *config.Config) *gorm.DB {
	if cfg.AuditDBUrl == "" {
		return nil
	}

	db, err := gorm.Open(postgres.Open(cfg.AuditDBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect audit database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(&models.AuditLog{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}
