package bootstrap

import (
	"context"
	"path/filepath"
	"testing"

	"surveyapi/config"
	"surveyapi/models"
	"surveyapi/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func openEmpty(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := config.SQLiteDSN(filepath.Join(t.TempDir(), "bootstrap.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// TestLoadData_CreatesSchema tests that every table exists after loading.
func TestLoadData_CreatesSchema(t *testing.T) {
	db := openEmpty(t)

	require.NoError(t, LoadData(context.Background(), db))

	for _, m := range models.All() {
		assert.True(t, db.Migrator().HasTable(m), "%T", m)
	}
}

// TestLoadData_BackfillsStatistics tests that questions without counters get a zeroed row.
func TestLoadData_BackfillsStatistics(t *testing.T) {
	db := openEmpty(t)
	ctx := context.Background()
	require.NoError(t, LoadData(ctx, db))

	questions := repository.NewQuestionRepository(db)
	stats := repository.NewStatisticRepository(db)

	withStat := &models.Question{Question: "Already counted question"}
	bare := &models.Question{Question: "Question without counters"}
	require.NoError(t, questions.Create(nil, withStat))
	require.NoError(t, questions.Create(nil, bare))
	require.NoError(t, stats.EnsureExists(nil, withStat.ID))
	require.NoError(t, stats.Increment(nil, withStat.ID, true))

	require.NoError(t, LoadData(ctx, db), "second run must be idempotent")

	stat, err := stats.GetByQuestionID(nil, bare.ID)
	require.NoError(t, err)
	assert.Zero(t, stat.AgreeCount)
	assert.Zero(t, stat.DisagreeCount)

	stat, err = stats.GetByQuestionID(nil, withStat.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stat.AgreeCount)
}
