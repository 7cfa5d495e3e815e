package database

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed migrations
var migrations embed.FS

// gooseLogger forwards goose output to the global zap logger.
type gooseLogger struct{}

func (gooseLogger) Printf(format string, v ...interface{}) {
	zap.S().Infof(format, v...)
}

func (gooseLogger) Fatalf(format string, v ...interface{}) {
	zap.S().Fatalf(format, v...)
}

// gooseDialect maps a gorm dialector name to a goose dialect and the
// migrations directory written for it.
func gooseDialect(name string) (string, error) {
	switch name {
	case "postgres":
		return "postgres", nil
	case "mysql":
		return "mysql", nil
	case "sqlite":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("no migrations for dialect %q", name)
	}
}

// Migrate applies the embedded schema migrations owned by this service.
// Platform tables (users, subscriptions, requests, favorites) are not managed here.
func Migrate(ctx context.Context, db *gorm.DB) error {
	dialect, err := gooseDialect(db.Dialector.Name())
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql connection: %w", err)
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{})
	if err = goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err = goose.UpContext(ctx, sqlDB, "migrations/"+dialect); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
