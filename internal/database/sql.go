package database

import (
	"fmt"

	"matchdash/internal/configuration"
	"matchdash/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Dialector builds the gorm dialector matching the configured database type.
func Dialector(config models.DatabaseConfiguration) (gorm.Dialector, error) {
	switch config.Type {
	case configuration.DatabasePostgres:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
			config.Host, config.User, config.Password, config.Name, config.Port, config.SSLMode,
		)
		return postgres.Open(dsn), nil
	case configuration.DatabaseMySQL:
		dsn := fmt.Sprintf(
			"%s:%s@tcp(%s:%d)/%s?parseTime=true&loc=UTC&charset=utf8mb4",
			config.User, config.Password, config.Host, config.Port, config.Name,
		)
		return mysql.Open(dsn), nil
	case configuration.DatabaseSQLite:
		return sqlite.Open(config.Name), nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", config.Type)
	}
}

func InitDB(config models.DatabaseConfiguration) *gorm.DB {
	dialector, err := Dialector(config)
	if err != nil {
		zap.L().Fatal("Invalid database configuration", zap.Error(err))
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		zap.L().Fatal("Failed to connect to database",
			zap.String("type", config.Type),
			zap.Error(err))
	}

	zap.L().Info("Connected to database", zap.String("type", config.Type))
	return db
}
