package repository

import (
	"surveyapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// QuestionRepository provides data access operations for survey questions.
// Reads preload the owning category.
type QuestionRepository interface {
	GetByID(tx *gorm.DB, id uint) (*models.Question, error)
	GetAll(tx *gorm.DB) ([]models.Question, error)
	Create(tx *gorm.DB, question *models.Question) error
	UpdateText(tx *gorm.DB, id uint, text string) error
	Delete(tx *gorm.DB, id uint) error
	// GetIDsWithoutStatistic lists questions that have no statistics row yet.
	GetIDsWithoutStatistic(tx *gorm.DB) ([]uint, error)
	Exists(tx *gorm.DB, id uint) (bool, error)
}

type questionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository instance.
func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{
		db: db,
	}
}

func (r *questionRepository) GetByID(tx *gorm.DB, id uint) (*models.Question, error) {
	var question models.Question
	if err := pick(tx, r.db).Preload("Category").Where("id = ?", id).First(&question).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) GetAll(tx *gorm.DB) ([]models.Question, error) {
	var questions []models.Question
	if err := pick(tx, r.db).Preload("Category").Order("id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Create inserts the question row only; the category must already be persisted.
func (r *questionRepository) Create(tx *gorm.DB, question *models.Question) error {
	return pick(tx, r.db).Omit(clause.Associations).Create(question).Error
}

func (r *questionRepository) UpdateText(tx *gorm.DB, id uint, text string) error {
	return pick(tx, r.db).Model(&models.Question{}).Where("id = ?", id).Update("question", text).Error
}

func (r *questionRepository) Delete(tx *gorm.DB, id uint) error {
	res := pick(tx, r.db).Where("id = ?", id).Delete(&models.Question{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *questionRepository) GetIDsWithoutStatistic(tx *gorm.DB) ([]uint, error) {
	var ids []uint
	if err := pick(tx, r.db).Table(models.Question{}.TableName()+" AS q").
		Joins("LEFT JOIN "+models.Statistic{}.TableName()+" AS s ON s.question_id = q.id").
		Where("s.question_id IS NULL").
		Order("q.id ASC").
		Pluck("q.id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *questionRepository) Exists(tx *gorm.DB, id uint) (bool, error) {
	var count int64
	if err := pick(tx, r.db).Model(&models.Question{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
