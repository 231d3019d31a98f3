package utils_test

import (
	"testing"

	"vesta/config"
	"vesta/database"
	"vesta/models"
	"vesta/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDb(t *testing.T) *gorm.DB {
	t.Helper()

	config.AppConfig = &config.Config{
		AuthServiceURL: "http://127.0.0.1:1", // unreachable on purpose
		AuthAdminKey:   "test-key",
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}
	return db
}

func TestBestEffortQueuesFailedRemoval(t *testing.T) {
	db := newTestDb(t)

	utils.RemoveAuthIdentityBestEffort(db, 42, "auth-xyz")

	var removal models.IdentityRemoval
	require.NoError(t, db.Where("user_id = ?", 42).First(&removal).Error)
	assert.Equal(t, "auth-xyz", removal.AuthID)
	assert.Equal(t, 1, removal.Attempts)
	assert.False(t, removal.Done)
	assert.NotNil(t, removal.LastTriedAt)
}

func TestBestEffortSkipsEmptyAuthID(t *testing.T) {
	db := newTestDb(t)

	utils.RemoveAuthIdentityBestEffort(db, 43, "")

	var count int64
	db.Model(&models.IdentityRemoval{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRetryIncrementsAttempts(t *testing.T) {
	db := newTestDb(t)

	require.NoError(t, db.Create(&models.IdentityRemoval{
		UserID:    42,
		AuthID:    "auth-xyz",
		Attempts:  1,
		LastError: "auth store returned 503",
	}).Error)

	utils.RetryPendingIdentityRemovals()

	var removal models.IdentityRemoval
	require.NoError(t, db.Where("user_id = ?", 42).First(&removal).Error)
	assert.Equal(t, 2, removal.Attempts)
	assert.False(t, removal.Done, "retry against an unreachable store stays queued")
	assert.NotEmpty(t, removal.LastError)
}
