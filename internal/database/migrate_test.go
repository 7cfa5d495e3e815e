package database

import (
	"context"
	"path/filepath"
	"testing"

	"matchdash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "migrate.db")), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestMigrate(t *testing.T) {
	t.Run("should create the admin_users table", func(t *testing.T) {
		db := openSQLite(t)

		require.NoError(t, Migrate(context.Background(), db))

		assert.True(t, db.Migrator().HasTable("admin_users"))
		assert.True(t, db.Migrator().HasIndex("admin_users", "idx_admin_users_username"))

		admin := models.AdminUser{Username: "root", Password: "hash", Name: "Root"}
		require.NoError(t, db.Create(&admin).Error)
		assert.NotZero(t, admin.ID)

		duplicate := models.AdminUser{Username: "root", Password: "other"}
		assert.Error(t, db.Create(&duplicate).Error)
	})

	t.Run("should be idempotent", func(t *testing.T) {
		db := openSQLite(t)

		require.NoError(t, Migrate(context.Background(), db))
		require.NoError(t, Migrate(context.Background(), db))
	})
}

func TestGooseDialect(t *testing.T) {
	for name, expected := range map[string]string{
		"postgres": "postgres",
		"mysql":    "mysql",
		"sqlite":   "sqlite3",
	} {
		dialect, err := gooseDialect(name)
		require.NoError(t, err)
		assert.Equal(t, expected, dialect)
	}

	_, err := gooseDialect("sqlserver")
	assert.Error(t, err)
}

func TestDialector(t *testing.T) {
	for _, dbType := range []string{"postgres", "mysql", "sqlite"} {
		dialector, err := Dialector(models.DatabaseConfiguration{
			Type: dbType, Host: "localhost", Port: 5432, User: "u", Name: "dashboard",
		})
		require.NoError(t, err)
		assert.Equal(t, dbType, dialector.Name())
	}

	_, err := Dialector(models.DatabaseConfiguration{Type: "oracle"})
	assert.Error(t, err)
}
