package services

import (
	"context"
	"fmt"
	"net/http"

	"surveyapi/models"
	"surveyapi/pkg/apperror"
	"surveyapi/pkg/logger"
	"surveyapi/repository"
	"surveyapi/services/dto"

	"gorm.io/gorm"
)

// CategoryService provides business logic for question categories.
type CategoryService interface {
	// Create persists a new category. Returns ErrConflict when the name is taken.
	Create(ctx context.Context, in dto.CategoryInput) (*dto.CategoryResponse, error)

	// List returns every category that fits the public shape; others are skipped.
	List(ctx context.Context) ([]dto.CategoryResponse, error)

	// Get returns a category or ErrNotFound.
	Get(ctx context.Context, id uint) (*dto.CategoryResponse, error)

	// Rename replaces the category name. Returns ErrConflict when another category owns it.
	Rename(ctx context.Context, id uint, in dto.CategoryInput) (*models.Category, error)

	// Delete removes a category. Returns ErrConflict while questions still reference it.
	Delete(ctx context.Context, id uint) error
}

type categoryService struct {
	baseRepo     repository.BaseRepository
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a category service on db.
func NewCategoryService(db *gorm.DB) CategoryService {
	return &categoryService{
		baseRepo:     repository.NewBaseRepository(db),
		categoryRepo: repository.NewCategoryRepository(db),
	}
}

// NewCategoryServiceWithDeps creates a service instance with injected dependencies.
func NewCategoryServiceWithDeps(baseRepo repository.BaseRepository, categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{
		baseRepo:     baseRepo,
		categoryRepo: categoryRepo,
	}
}

func (s *categoryService) Create(ctx context.Context, in dto.CategoryInput) (*dto.CategoryResponse, error) {
	if err := in.Normalize(http.StatusUnprocessableEntity); err != nil {
		return nil, err
	}

	category := models.Category{Name: in.Name}
	err := s.baseRepo.Transaction(ctx, func(tx *gorm.DB) error {
		count, err := s.categoryRepo.CountByName(tx, in.Name, 0)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperror.Conflict("category with name %q already exists", in.Name)
		}
		return s.categoryRepo.Create(tx, &category)
	})
	if err != nil {
		return nil, apperror.FromStore(err, fmt.Sprintf("category %q", in.Name))
	}

	logger.Infof("Created category %d (%s)", category.ID, category.Name)
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.GetAll(s.baseRepo.Conn(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	result := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res, err := dto.NewCategoryResponse(c)
		if err != nil {
			logger.Warnf("Skipping category %d in list: %v", c.ID, err)
			continue
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *categoryService) Get(ctx context.Context, id uint) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(s.baseRepo.Conn(ctx), id)
	if err != nil {
		return nil, apperror.FromStore(err, fmt.Sprintf("category with id %d", id))
	}
	return &dto.CategoryResponse{ID: category.ID, Name: category.Name}, nil
}

func (s *categoryService) Rename(ctx context.Context, id uint, in dto.CategoryInput) (*models.Category, error) {
	var category *models.Category
	err := s.baseRepo.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		category, err = s.categoryRepo.GetByID(tx, id)
		if err != nil {
			return apperror.FromStore(err, fmt.Sprintf("category with id %d", id))
		}

		if err := in.Normalize(http.StatusBadRequest); err != nil {
			if in.Name == "" {
				return dto.NameRequiredError()
			}
			return err
		}

		count, err := s.categoryRepo.CountByName(tx, in.Name, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperror.Conflict("category with name %q already exists", in.Name)
		}

		if err := s.categoryRepo.UpdateName(tx, id, in.Name); err != nil {
			return err
		}
		category.Name = in.Name
		return nil
	})
	if err != nil {
		return nil, apperror.FromStore(err, fmt.Sprintf("category %q", in.Name))
	}

	logger.Infof("Renamed category %d to %s", category.ID, category.Name)
	return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uint) error {
	err := s.baseRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if _, err := s.categoryRepo.GetByID(tx, id); err != nil {
			return apperror.FromStore(err, fmt.Sprintf("category with id %d", id))
		}

		count, err := s.categoryRepo.CountQuestions(tx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperror.Conflict("category %d has %d related questions", id, count)
		}

		return s.categoryRepo.Delete(tx, id)
	})
	if err != nil {
		return apperror.FromStore(err, fmt.Sprintf("category with id %d", id))
	}

	logger.Infof("Deleted category %d", id)
	return nil
}
