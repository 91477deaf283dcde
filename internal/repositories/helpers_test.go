package repositories

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"beveragebuddy/internal/infra"
	"beveragebuddy/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(infra.SQLiteDialector(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, infra.Migrate(db))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func uintPtr(v uint) *uint { return &v }

func mustCategory(t *testing.T, db *gorm.DB, name string) db_models.Category {
	t.Helper()
	c := db_models.Category{Name: name}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func mustReview(t *testing.T, db *gorm.DB, r db_models.Review) db_models.Review {
	t.Helper()
	require.NoError(t, db.Omit("Category").Create(&r).Error)
	return r
}
