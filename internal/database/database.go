package database

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"filmboard/backend/internal/models"
)

// Connect opens the database connection, runs migrations and seeds the
// immutable reference data.
func Connect(dsn string) *gorm.DB {
	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
		// Needed so foreign-key and unique violations surface as
		// gorm.ErrForeignKeyViolated / gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	// Run migrations
	err = db.AutoMigrate(
		&models.MpaRating{},
		&models.Genre{},
		&models.User{},
		&models.Film{},
		&models.FilmLike{},
		&models.Friendship{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := seedReferenceData(db); err != nil {
		log.Fatalf("Failed to seed reference data: %v", err)
	}

	log.Println("Database migrated successfully.")
	return db
}

// seedReferenceData inserts the genre and MPA rating rows, skipping any
// that already exist.
func seedReferenceData(db *gorm.DB) error {
	ratings := models.SeedMpaRatings()
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&ratings).Error; err != nil {
		return err
	}
	genres := models.SeedGenres()
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&genres).Error
}
