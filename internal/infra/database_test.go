package infra

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beveragebuddy/internal/config"
	"beveragebuddy/internal/models/db_models"
)

func openTestDB(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.SQLitePath = filepath.Join(t.TempDir(), "buddy.db")
	return cfg
}

func TestOpenDatabaseAndMigrate(t *testing.T) {
	db, err := OpenDatabase(openTestDB(t))
	require.NoError(t, err)
	defer CloseDatabase(db)

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable(&db_models.Category{}))
	assert.True(t, db.Migrator().HasTable(&db_models.Review{}))
}

func TestOpenDatabase_UnknownDriver(t *testing.T) {
	cfg := config.Default()
	cfg.DBDriver = "oracle"

	_, err := OpenDatabase(cfg)
	assert.Error(t, err)
}

func TestReleaseTransaction(t *testing.T) {
	db, err := OpenDatabase(openTestDB(t))
	require.NoError(t, err)
	defer CloseDatabase(db)
	require.NoError(t, Migrate(db))

	tx := StartTransaction(db)
	require.NoError(t, tx.Create(&db_models.Category{Name: "Tea"}).Error)
	require.NoError(t, ReleaseTransaction(tx, nil))

	tx = StartTransaction(db)
	require.NoError(t, tx.Create(&db_models.Category{Name: "Coffee"}).Error)
	failure := errors.New("boom")
	assert.ErrorIs(t, ReleaseTransaction(tx, failure), failure)

	var count int64
	require.NoError(t, db.Model(&db_models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSQLiteLowerFoldsUnicode(t *testing.T) {
	db, err := OpenDatabase(openTestDB(t))
	require.NoError(t, err)
	defer CloseDatabase(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)

	var lowered string
	require.NoError(t, sqlDB.QueryRow("SELECT lower(?)", "ŁOMŻA Äpfel").Scan(&lowered))
	assert.Equal(t, "łomża äpfel", lowered)

	var null sql.NullString
	require.NoError(t, sqlDB.QueryRow("SELECT lower(NULL)").Scan(&null))
	assert.False(t, null.Valid)
}
