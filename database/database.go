package database

import (
	"fmt"
	"log"
	"os"

	"museum-app/internal/domain/artists"
	"museum-app/internal/domain/collections"
	"museum-app/internal/domain/exhibitions"
	"museum-app/internal/domain/objects"
	"museum-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate runs AutoMigrate for every domain model. Parent tables come first so
// foreign keys and cascade rules resolve during creation.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// people
		&users.User{},
		&users.AuthToken{},
		&artists.Artist{},

		// art objects + specializations
		&objects.ArtObject{},
		&objects.Sculpture{},
		&objects.Painting{},
		&objects.OtherArt{},

		// exhibitions
		&exhibitions.Exhibition{},
		&exhibitions.ExhibitionArtObject{},

		// collections
		&collections.Collection{},
		&collections.PermanentCollection{},
		&collections.BorrowedArtObject{},
	)
}
