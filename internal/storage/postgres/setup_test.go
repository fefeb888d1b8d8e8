package postgres

import (
	"testing"

	"github.com/joshu-sajeev/trendplanner/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // Disable logs during tests
	})
	require.NoError(t, err)

	// every connection to :memory: is its own database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, MigrateModels(db, models.All()...))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, id string, credits int) {
	t.Helper()
	require.NoError(t, db.Create(&models.User{
		ID:          id,
		Email:       id + "@example.com",
		Credits:     credits,
		WorkspaceID: "ws-1",
	}).Error)
}

func seedItem(t *testing.T, db *gorm.DB, workspaceID string) *models.ContentItem {
	t.Helper()
	item := &models.ContentItem{
		WorkspaceID:   workspaceID,
		Platform:      "Instagram",
		Hook:          "hook",
		ContentPillar: "viral",
		Status:        "DRAFT",
	}
	require.NoError(t, db.Create(item).Error)
	return item
}
