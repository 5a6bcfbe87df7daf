package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/trainer-marketplace/internal/config"
	"github.com/BruksfildServices01/trainer-marketplace/internal/models"
)

// AcceptedSlotIndex guarantees no two accepted contracts of a service share
// weekday and start time.
const AcceptedSlotIndex = "ux_contracts_accepted_slot"

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	return db
}

// Migrate creates the schema, the partial slot index and the catalog
// sentinels. It is safe to run on every boot.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Zone{},
		&models.Category{},
		&models.Service{},
		&models.ServiceDay{},
		&models.ServiceImage{},
		&models.View{},
		&models.Contract{},
		&models.ContractFile{},
		&models.Review{},
		&models.PasswordReset{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	if err := db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS ` + AcceptedSlotIndex + `
        ON contracts (service_id, weekday, start_time)
        WHERE status = 'accepted'
    `).Error; err != nil {
		return err
	}

	return db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.Zone{Name: models.VirtualZoneName}).Error
}
