package repository

import (
	"surveyapi/models"

	"gorm.io/gorm"
)

// ResponseRepository provides data access operations for individual votes.
type ResponseRepository interface {
	Create(tx *gorm.DB, response *models.Response) error
	CountByQuestionID(tx *gorm.DB, questionID uint) (int64, error)
	DeleteByQuestionID(tx *gorm.DB, questionID uint) error
}

type responseRepository struct {
	db *gorm.DB
}

// NewResponseRepository creates a new response repository instance.
func NewResponseRepository(db *gorm.DB) ResponseRepository {
	return &responseRepository{
		db: db,
	}
}

func (r *responseRepository) Create(tx *gorm.DB, response *models.Response) error {
	return pick(tx, r.db).Create(response).Error
}

func (r *responseRepository) CountByQuestionID(tx *gorm.DB, questionID uint) (int64, error) {
	var count int64
	if err := pick(tx, r.db).Model(&models.Response{}).
		Where("question_id = ?", questionID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *responseRepository) DeleteByQuestionID(tx *gorm.DB, questionID uint) error {
	return pick(tx, r.db).Where("question_id = ?", questionID).Delete(&models.Response{}).Error
}
