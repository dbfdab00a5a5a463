package service

import (
	"context"
	"database/sql"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/p-virex/stepik-chapter-4/internal/models"
	appErrors "github.com/p-virex/stepik-chapter-4/pkg/errors"
)

const goalsIndexCacheKey = "catalog:goals_index"

type catalogTeacherRepository interface {
	ListAll(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id int64) (*models.Teacher, error)
	ListByGoal(ctx context.Context, goalID int64) ([]models.Teacher, error)
}

type catalogGoalRepository interface {
	ListAll(ctx context.Context) ([]models.Goal, error)
	FindByID(ctx context.Context, id int64) (*models.Goal, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]models.Goal, error)
}

type goalsIndexCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// CatalogService serves the read side of the tutor catalog.
type CatalogService struct {
	teachers catalogTeacherRepository
	goals    catalogGoalRepository
	cache    goalsIndexCache
	cacheTTL time.Duration
	metrics  *MetricsService
	logger   *zap.Logger
}

// NewCatalogService constructs a CatalogService. cache and metrics may be nil.
func NewCatalogService(teachers catalogTeacherRepository, goals catalogGoalRepository, cache goalsIndexCache, cacheTTL time.Duration, metrics *MetricsService, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{
		teachers: teachers,
		goals:    goals,
		cache:    cache,
		cacheTTL: cacheTTL,
		metrics:  metrics,
		logger:   logger,
	}
}

// ListTeachers returns every teacher without any ordering guarantee.
func (s *CatalogService) ListTeachers(ctx context.Context) ([]models.Teacher, error) {
	teachers, err := s.teachers.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	return teachers, nil
}

// RandomSample returns up to n teachers drawn uniformly from the whole
// population. A population smaller than n yields everyone, never an error.
func (s *CatalogService) RandomSample(ctx context.Context, n int) ([]models.Teacher, error) {
	teachers, err := s.ListTeachers(ctx)
	if err != nil {
		return nil, err
	}
	rand.Shuffle(len(teachers), func(i, j int) {
		teachers[i], teachers[j] = teachers[j], teachers[i]
	})
	if n < 0 {
		n = 0
	}
	if n > len(teachers) {
		n = len(teachers)
	}
	return teachers[:n], nil
}

// TeacherProfile returns a teacher with its linked goals.
func (s *CatalogService) TeacherProfile(ctx context.Context, id int64) (*models.Teacher, []models.Goal, error) {
	teacher, err := s.teachers.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}
	goals, err := s.goals.ListByTeacher(ctx, id)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher goals")
	}
	return teacher, goals, nil
}

// TeachersForGoal returns the goal and its linked teachers. An unknown goal
// id is NotFound; an existing goal with no teachers yields an empty slice.
func (s *CatalogService) TeachersForGoal(ctx context.Context, goalID int64) (*models.Goal, []models.Teacher, error) {
	goal, err := s.goals.FindByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, appErrors.Clone(appErrors.ErrNotFound, "goal not found")
		}
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load goal")
	}
	teachers, err := s.teachers.ListByGoal(ctx, goalID)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers for goal")
	}
	return goal, teachers, nil
}

// Goals returns every goal, for navigation and form choices.
func (s *CatalogService) Goals(ctx context.Context) ([]models.Goal, error) {
	goals, err := s.goals.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list goals")
	}
	return goals, nil
}

// GoalsIndex returns a goal id to display text mapping. Goals are immutable
// after import, so the index is cached in Redis with a configurable TTL; a
// cache outage silently degrades to a database scan.
func (s *CatalogService) GoalsIndex(ctx context.Context) (map[int64]string, error) {
	if s.cache != nil {
		start := time.Now()
		var cached map[int64]string
		err := s.cache.Get(ctx, goalsIndexCacheKey, &cached)
		if err == nil {
			s.metrics.RecordCacheOperation(true, time.Since(start))
			return cached, nil
		}
		s.metrics.RecordCacheOperation(false, time.Since(start))
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("goals index cache lookup failed", zap.Error(err))
		}
	}

	goals, err := s.Goals(ctx)
	if err != nil {
		return nil, err
	}
	index := make(map[int64]string, len(goals))
	for _, g := range goals {
		index[g.ID] = g.Goal
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, goalsIndexCacheKey, index, s.cacheTTL); err != nil {
			s.logger.Warn("goals index cache write failed", zap.Error(err))
		}
	}
	return index, nil
}
