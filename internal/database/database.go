package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/9jakitchen/backend/config"
	"github.com/9jakitchen/backend/internal/logger"
)

// New opens a PostgreSQL connection pool and wraps it with gorm.
func New(cfg *config.Config) (*gorm.DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("error initializing orm: %w", err)
	}

	logger.Info("connected to database",
		logger.String("host", cfg.Database.Host),
		logger.String("name", cfg.Database.Name),
	)
	return db, nil
}
