package database

import (
	"fmt"
	"log"
	"os"

	"marketing-app/internal/domain/billing"
	"marketing-app/internal/domain/campaigns"
	"marketing-app/internal/domain/plans"
	"marketing-app/internal/domain/subscribers"
	"marketing-app/internal/domain/templates"
	"marketing-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for uuid defaults on the template/campaign tables.
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},
		&plans.Plan{},
		&billing.Payment{},

		// templates
		&templates.EmailTemplate{},
		&templates.TemplateRevision{},

		// audiences
		&subscribers.List{},
		&subscribers.Subscriber{},

		// campaigns
		&campaigns.Campaign{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
