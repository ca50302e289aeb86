package lookuplog

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Repository interface {
	LogLookup(city, country, units string, temperature float64) error
}

type LookupSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &LookupSQLRepository{db: db}
}

// Open connects to postgres and migrates the lookup table. One CLI run makes
// at most one write, so the pool is kept small.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&LookupLog{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(2)
	sqlDB.SetConnMaxLifetime(time.Minute)

	return db, nil
}

func (r *LookupSQLRepository) LogLookup(city, country, units string, temperature float64) error {
	entry := LookupLog{
		City:        city,
		Country:     country,
		Units:       units,
		Temperature: temperature,
		CreatedAt:   time.Now(),
	}

	return r.db.Create(&entry).Error
}
