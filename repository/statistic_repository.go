package repository

import (
	"surveyapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StatisticRepository provides data access operations for per-question vote counters.
type StatisticRepository interface {
	GetByQuestionID(tx *gorm.DB, questionID uint) (*models.Statistic, error)
	GetAll(tx *gorm.DB) ([]models.Statistic, error)
	// EnsureExists inserts a zeroed row for questionID unless one is already present.
	EnsureExists(tx *gorm.DB, questionID uint) error
	// Increment adds one to the agree or disagree counter in a single UPDATE.
	Increment(tx *gorm.DB, questionID uint, agree bool) error
	DeleteByQuestionID(tx *gorm.DB, questionID uint) error
}

type statisticRepository struct {
	db *gorm.DB
}

// NewStatisticRepository creates a new statistic repository instance.
func NewStatisticRepository(db *gorm.DB) StatisticRepository {
	return &statisticRepository{
		db: db,
	}
}

func (r *statisticRepository) GetByQuestionID(tx *gorm.DB, questionID uint) (*models.Statistic, error) {
	var stat models.Statistic
	if err := pick(tx, r.db).Where("question_id = ?", questionID).First(&stat).Error; err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *statisticRepository) GetAll(tx *gorm.DB) ([]models.Statistic, error) {
	var stats []models.Statistic
	if err := pick(tx, r.db).Order("question_id ASC").Find(&stats).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statisticRepository) EnsureExists(tx *gorm.DB, questionID uint) error {
	stat := models.Statistic{QuestionID: questionID}
	return pick(tx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&stat).Error
}

func (r *statisticRepository) Increment(tx *gorm.DB, questionID uint, agree bool) error {
	column := "disagree_count"
	if agree {
		column = "agree_count"
	}
	res := pick(tx, r.db).Model(&models.Statistic{}).
		Where("question_id = ?", questionID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *statisticRepository) DeleteByQuestionID(tx *gorm.DB, questionID uint) error {
	return pick(tx, r.db).Where("question_id = ?", questionID).Delete(&models.Statistic{}).Error
}
