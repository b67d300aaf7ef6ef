package bootstrap

import (
	"context"
	"fmt"

	"surveyapi/models"
	"surveyapi/pkg/logger"
	"surveyapi/repository"

	"gorm.io/gorm"
)

// LoadData migrates the schema and backfills statistic rows for questions that
// were created without one.
func LoadData(ctx context.Context, db *gorm.DB) error {
	logger.Infof("Starting bootstrap data loading...")

	if err := migrate(ctx, db); err != nil {
		return err
	}
	if err := backfillStatistics(ctx, db,
		repository.NewQuestionRepository(db),
		repository.NewStatisticRepository(db),
	); err != nil {
		return err
	}

	logger.Infof("Bootstrap data loading completed successfully")
	return nil
}

func migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		logger.Errorf("Failed to migrate schema: %v", err)
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	logger.Infof("Schema migrated for %d models", len(models.All()))
	return nil
}

func backfillStatistics(ctx context.Context, db *gorm.DB, questionRepo repository.QuestionRepository, statRepo repository.StatisticRepository) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ids, err := questionRepo.GetIDsWithoutStatistic(tx)
		if err != nil {
			logger.Errorf("Failed to list questions without statistics: %v", err)
			return fmt.Errorf("failed to list questions without statistics: %w", err)
		}
		for _, id := range ids {
			if err := statRepo.EnsureExists(tx, id); err != nil {
				return fmt.Errorf("failed to create statistic for question %d: %w", id, err)
			}
		}
		if len(ids) > 0 {
			logger.Infof("Backfilled statistics for %d questions", len(ids))
		}
		return nil
	})
}
