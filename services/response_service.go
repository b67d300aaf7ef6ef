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

// ResponseService records agree/disagree votes and serves the resulting statistics.
type ResponseService interface {
	// Submit stores one vote and bumps the matching counter in the same transaction.
	// Returns ErrNotFound when the question does not exist.
	Submit(ctx context.Context, in dto.ResponseCreate) (*dto.StatisticResponse, error)

	// Statistic returns the counters of one question, zeros when nobody voted yet.
	Statistic(ctx context.Context, questionID uint) (*dto.StatisticResponse, error)

	// ListStatistics returns all statistics rows that fit the public shape.
	ListStatistics(ctx context.Context) ([]dto.StatisticResponse, error)
}

type responseService struct {
	baseRepo      repository.BaseRepository
	questionRepo  repository.QuestionRepository
	statisticRepo repository.StatisticRepository
	responseRepo  repository.ResponseRepository
	statsCache    cache.StatisticCache
}

// NewResponseService creates a response service on db.
func NewResponseService(db *gorm.DB, statsCache cache.StatisticCache) ResponseService {
	return NewResponseServiceWithDeps(
		repository.NewBaseRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewStatisticRepository(db),
		repository.NewResponseRepository(db),
		statsCache,
	)
}

// NewResponseServiceWithDeps creates a service instance with injected dependencies.
func NewResponseServiceWithDeps(
	baseRepo repository.BaseRepository,
	questionRepo repository.QuestionRepository,
	statisticRepo repository.StatisticRepository,
	responseRepo repository.ResponseRepository,
	statsCache cache.StatisticCache,
) ResponseService {
	if statsCache == nil {
		statsCache = cache.NoopCache{}
	}
	return &responseService{
		baseRepo:      baseRepo,
		questionRepo:  questionRepo,
		statisticRepo: statisticRepo,
		responseRepo:  responseRepo,
		statsCache:    statsCache,
	}
}

func (s *responseService) Submit(ctx context.Context, in dto.ResponseCreate) (*dto.StatisticResponse, error) {
	if err := in.Normalize(); err != nil {
		return nil, err
	}
	questionID, agree := *in.QuestionID, *in.IsAgree

	var stat *models.Statistic
	err := s.baseRepo.Transaction(ctx, func(tx *gorm.DB) error {
		exists, err := s.questionRepo.Exists(tx, questionID)
		if err != nil {
			return err
		}
		if !exists {
			return apperror.NotFound("question with id %d", questionID)
		}

		if err := s.responseRepo.Create(tx, &models.Response{QuestionID: questionID, IsAgree: agree}); err != nil {
			return fmt.Errorf("failed to store response: %w", err)
		}
		if err := s.statisticRepo.EnsureExists(tx, questionID); err != nil {
			return fmt.Errorf("failed to prepare statistic: %w", err)
		}
		if err := s.statisticRepo.Increment(tx, questionID, agree); err != nil {
			return fmt.Errorf("failed to update statistic: %w", err)
		}
		stat, err = s.statisticRepo.GetByQuestionID(tx, questionID)
		return err
	})
	if err != nil {
		return nil, apperror.FromStore(err, fmt.Sprintf("question with id %d", questionID))
	}

	s.statsCache.Invalidate(ctx, questionID)
	logger.Debugf("Recorded response for question %d (agree=%t)", questionID, agree)
	return &dto.StatisticResponse{
		QuestionID:    stat.QuestionID,
		AgreeCount:    stat.AgreeCount,
		DisagreeCount: stat.DisagreeCount,
	}, nil
}

func (s *responseService) Statistic(ctx context.Context, questionID uint) (*dto.StatisticResponse, error) {
	if stat, ok := s.statsCache.Get(ctx, questionID); ok {
		res, err := dto.NewStatisticResponse(*stat)
		if err == nil {
			return &res, nil
		}
	}

	conn := s.baseRepo.Conn(ctx)
	stat, err := s.loadStatistic(conn, questionID)
	if err != nil {
		return nil, err
	}

	res, err := dto.NewStatisticResponse(*stat)
	if err != nil {
		return nil, fmt.Errorf("statistic of question %d is invalid: %w", questionID, err)
	}

	// A vote or delete committed between the read and Set has already run its
	// Invalidate, so drop the entry again if the row moved on.
	s.statsCache.Set(ctx, stat)
	if fresh, err := s.loadStatistic(conn, questionID); err != nil || !sameCounters(stat, fresh) {
		s.statsCache.Invalidate(ctx, questionID)
	}
	return &res, nil
}

// loadStatistic reads the counters of a question, zeros when it has no row yet.
func (s *responseService) loadStatistic(conn *gorm.DB, questionID uint) (*models.Statistic, error) {
	stat, err := s.statisticRepo.GetByQuestionID(conn, questionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		exists, qerr := s.questionRepo.Exists(conn, questionID)
		if qerr != nil {
			return nil, qerr
		}
		if !exists {
			return nil, apperror.NotFound("question with id %d", questionID)
		}
		return &models.Statistic{QuestionID: questionID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load statistic of question %d: %w", questionID, err)
	}
	return stat, nil
}

func sameCounters(a, b *models.Statistic) bool {
	return a.AgreeCount == b.AgreeCount && a.DisagreeCount == b.DisagreeCount
}

func (s *responseService) ListStatistics(ctx context.Context) ([]dto.StatisticResponse, error) {
	stats, err := s.statisticRepo.GetAll(s.baseRepo.Conn(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list statistics: %w", err)
	}

	result := make([]dto.StatisticResponse, 0, len(stats))
	for _, st := range stats {
		res, err := dto.NewStatisticResponse(st)
		if err != nil {
			logger.Warnf("Skipping statistic of question %d in list: %v", st.QuestionID, err)
			continue
		}
		result = append(result, res)
	}
	return result, nil
}
