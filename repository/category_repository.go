package repository

import (
	"surveyapi/models"

	"gorm.io/gorm"
)

// CategoryRepository provides data access operations for question categories.
type CategoryRepository interface {
	GetByID(tx *gorm.DB, id uint) (*models.Category, error)
	GetByName(tx *gorm.DB, name string) (*models.Category, error)
	GetAll(tx *gorm.DB) ([]models.Category, error)
	// CountByName counts categories named name, ignoring the row with excludeID (0 ignores none).
	CountByName(tx *gorm.DB, name string, excludeID uint) (int64, error)
	CountQuestions(tx *gorm.DB, id uint) (int64, error)
	Create(tx *gorm.DB, category *models.Category) error
	UpdateName(tx *gorm.DB, id uint, name string) error
	Delete(tx *gorm.DB, id uint) error
}

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository instance.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

func (r *categoryRepository) GetByID(tx *gorm.DB, id uint) (*models.Category, error) {
	var category models.Category
	if err := pick(tx, r.db).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetByName(tx *gorm.DB, name string) (*models.Category, error) {
	var category models.Category
	if err := pick(tx, r.db).Where("name = ?", name).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) GetAll(tx *gorm.DB) ([]models.Category, error) {
	var categories []models.Category
	if err := pick(tx, r.db).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *categoryRepository) CountByName(tx *gorm.DB, name string, excludeID uint) (int64, error) {
	var count int64
	q := pick(tx, r.db).Model(&models.Category{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *categoryRepository) CountQuestions(tx *gorm.DB, id uint) (int64, error) {
	var count int64
	if err := pick(tx, r.db).Model(&models.Question{}).
		Where("category_id = ?", id).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *categoryRepository) Create(tx *gorm.DB, category *models.Category) error {
	return pick(tx, r.db).Create(category).Error
}

func (r *categoryRepository) UpdateName(tx *gorm.DB, id uint, name string) error {
	return pick(tx, r.db).Model(&models.Category{}).Where("id = ?", id).Update("name", name).Error
}

func (r *categoryRepository) Delete(tx *gorm.DB, id uint) error {
	res := pick(tx, r.db).Where("id = ?", id).Delete(&models.Category{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
