package repository

import (
	"path/filepath"
	"testing"

	"github.com/PavaniTiago/vior-insights-api/internal/infrastructure/database"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "surveys.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	database.RegisterMiddlewares(db)
	require.NoError(t, database.Prepare(db))
	return db
}

func TestGormSurveyRepository(t *testing.T) {
	runRepositoryContract(t, NewGormSurveyRepository(newSQLiteDB(t)))
}
