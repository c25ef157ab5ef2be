package db

import (
	"fmt"
	"log"

	"github.com/lcdc/selections-go/config"
	"github.com/lcdc/selections-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func createEnums(gormDB *gorm.DB) {
	enums := []string{
		`DO $$ BEGIN CREATE TYPE user_role AS ENUM ('OWNER', 'SALESPERSON', 'CUSTOMER'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE form_status AS ENUM ('ASSIGNED', 'IN_PROGRESS', 'SUBMITTED', 'REOPENED', 'COMPLETED'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
		`DO $$ BEGIN CREATE TYPE form_type AS ENUM ('EXTERIOR_DOORS', 'GARAGE_DOORS', 'WINDOWS', 'ASPHALT_SHINGLES', 'WOODWORK', 'PAINT'); EXCEPTION WHEN duplicate_object THEN null; END $$;`,
	}

	for _, enum := range enums {
		if err := gormDB.Exec(enum).Error; err != nil {
			log.Printf("Failed to create enum: %s, error: %v", enum, err)
		}
	}
}

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// Migrate creates the enum types and brings the schema up to date.
func Migrate(gormDB *gorm.DB) error {
	createEnums(gormDB)
	return gormDB.AutoMigrate(
		&models.User{},
		&models.Form{},
		&models.FormSubmissionHistory{},
		&models.Notification{},
	)
}

// InitWithGormDB swaps in an externally constructed handle, used by tests.
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
