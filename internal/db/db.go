package db

import (
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/autoservicehub/workshop-scheduler/internal/config"
	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log zerolog.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	if cfg.SeedData {
		if err := Seed(db); err != nil {
			log.Fatal().Err(err).Msg("failed to seed")
		}
	}

	return db
}

// Migrate builds the schema and the slot-occupancy constraint. The partial
// unique index is what makes double booking impossible: two inserts for the
// same workshop and date-time cannot both commit while neither is cancelled.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Workshop{},
		&models.User{},
		&models.ServiceType{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	return db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_slot
        ON appointments (workshop_id, appointment_date)
        WHERE status <> 'CANCELLED'
    `).Error
}
