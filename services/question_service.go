package services

import (
	"context"
	"errors"
	"fmt"

	"surveyapi/models"
	"surveyapi/pkg/apperror"
	"surveyapi/pkg/logger"
	"surveyapi/repository"
	"surveyapi/services/cache"
	"surveyapi/services/dto"

	"gorm.io/gorm"
)

// QuestionService provides business logic for survey questions.
type QuestionService interface {
	// Create stores a question, resolving its category by id or by name.
	// Returns ErrNotFound when category_id names a missing category.
	Create(ctx context.Context, in dto.QuestionCreate) (*dto.QuestionResponse, error)

	// List returns every question that fits the public shape; others are skipped.
	List(ctx context.Context) ([]dto.QuestionResponse, error)

	// Get returns a question with its category or ErrNotFound.
	Get(ctx context.Context, id uint) (*dto.QuestionResponse, error)

	// UpdateText replaces the question text.
	UpdateText(ctx context.Context, id uint, in dto.QuestionUpdate) (*models.Question, error)

	// Delete removes a question along with its responses and statistic.
	Delete(ctx context.Context, id uint) error
}

type questionService struct {
	baseRepo      repository.BaseRepository
	questionRepo  repository.QuestionRepository
	categoryRepo  repository.CategoryRepository
	statisticRepo repository.StatisticRepository
	responseRepo  repository.ResponseRepository
	statsCache    cache.StatisticCache
}

// NewQuestionService creates a question service on db.
func NewQuestionService(db *gorm.DB, statsCache cache.StatisticCache) QuestionService {
	return NewQuestionServiceWithDeps(
		repository.NewBaseRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewStatisticRepository(db),
		repository.NewResponseRepository(db),
		statsCache,
	)
}

// NewQuestionServiceWithDeps creates a service instance with injected dependencies.
func NewQuestionServiceWithDeps(
	baseRepo repository.BaseRepository,
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	statisticRepo repository.StatisticRepository,
	responseRepo repository.ResponseRepository,
	statsCache cache.StatisticCache,
) QuestionService {
	if statsCache == nil {
		statsCache = cache.NoopCache{}
	}
	return &questionService{
		baseRepo:      baseRepo,
		questionRepo:  questionRepo,
		categoryRepo:  categoryRepo,
		statisticRepo: statisticRepo,
		responseRepo:  responseRepo,
		statsCache:    statsCache,
	}
}

func (s *questionService) Create(ctx context.Context, in dto.QuestionCreate) (*dto.QuestionResponse, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}

	question := models.Question{Question: in.Text()}
	err := s.baseRepo.Transaction(ctx, func(tx *gorm.DB) error {
		category, err := s.resolveCategory(tx, in)
		if err != nil {
			return err
		}
		if category != nil {
			question.CategoryID = &category.ID
			question.Category = category
		}

		if err := s.questionRepo.Create(tx, &question); err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}
		return s.statisticRepo.EnsureExists(tx, question.ID)
	})
	if err != nil {
		return nil, apperror.FromStore(err, "question")
	}

	logger.Infof("Created question %d (category %v)", question.ID, question.CategoryID)
	res := dto.QuestionView(question)
	return &res, nil
}

// resolveCategory returns the category named by in, creating it by name when absent.
// A nil category with nil error means the question is uncategorized.
func (s *questionService) resolveCategory(tx *gorm.DB, in dto.QuestionCreate) (*models.Category, error) {
	switch {
	case in.CategoryID != nil:
		category, err := s.categoryRepo.GetByID(tx, *in.CategoryID)
		if err != nil {
			return nil, apperror.FromStore(err, fmt.Sprintf("category %d", *in.CategoryID))
		}
		return category, nil

	case in.Category != nil:
		name := in.Category.Name
		category, err := s.categoryRepo.GetByName(tx, name)
		if err == nil {
			return category, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		category = &models.Category{Name: name}
		if err := s.categoryRepo.Create(tx, category); err != nil {
			return nil, apperror.FromStore(err, fmt.Sprintf("category %q", name))
		}
		logger.Infof("Created category %d (%s) for new question", category.ID, category.Name)
		return category, nil

	default:
		return nil, nil
	}
}

func (s *questionService) List(ctx context.Context) ([]dto.QuestionResponse, error) {
	questions, err := s.questionRepo.GetAll(s.baseRepo.Conn(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}

	result := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		res, err := dto.NewQuestionResponse(q)
		if err != nil {
			logger.Warnf("Skipping question %d in list: %v", q.ID, err)
			continue
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *questionService) Get(ctx context.Context, id uint) (*dto.QuestionResponse, error) {
	question, err := s.questionRepo.GetByID(s.baseRepo.Conn(ctx), id)
	if err != nil {
		return nil, apperror.FromStore(err, fmt.Sprintf("question with id %d", id))
	}
	res := dto.QuestionView(*question)
	return &res, nil
}

func (s *questionService) UpdateText(ctx context.Context, id uint, in dto.QuestionUpdate) (*models.Question, error) {
	var question *models.Question
	err := s.baseRepo.Transaction(ctx, func(tx *gorm.DB) error {
		var err error
		question, err = s.questionRepo.GetByID(tx, id)
		if err != nil {
			return apperror.FromStore(err, fmt.Sprintf("question with id %d", id))
		}
		if err := in.Normalize(); err != nil {
			return err
		}
		if err := s.questionRepo.UpdateText(tx, id, in.Text()); err != nil {
			return err
		}
		question.Question = in.Text()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("Updated question %d", id)
	return question, nil
}

func (s *questionService) Delete(ctx context.Context, id uint) error {
	var votes int64
	err := s.baseRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if _, err := s.questionRepo.GetByID(tx, id); err != nil {
			return apperror.FromStore(err, fmt.Sprintf("question with id %d", id))
		}
		var err error
		if votes, err = s.responseRepo.CountByQuestionID(tx, id); err != nil {
			return fmt.Errorf("failed to count responses of question %d: %w", id, err)
		}
		if err := s.responseRepo.DeleteByQuestionID(tx, id); err != nil {
			return fmt.Errorf("failed to delete responses of question %d: %w", id, err)
		}
		if err := s.statisticRepo.DeleteByQuestionID(tx, id); err != nil {
			return fmt.Errorf("failed to delete statistic of question %d: %w", id, err)
		}
		return s.questionRepo.Delete(tx, id)
	})
	if err != nil {
		return apperror.FromStore(err, fmt.Sprintf("question with id %d", id))
	}

	s.statsCache.Invalidate(ctx, id)
	logger.Infof("Deleted question %d with %d responses", id, votes)
	return nil
}
