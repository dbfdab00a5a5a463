package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/p-virex/stepik-chapter-4/internal/models"
)

type importGoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) error
	FindByTag(ctx context.Context, tag string) (*models.Goal, error)
}

type importTeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	LinkGoal(ctx context.Context, teacherID, goalID int64) error
}

// Dataset is the static goals/tutors payload consumed by the bulk import.
type Dataset struct {
	Goals    map[string]string `json:"goals"`
	Teachers []DatasetTeacher  `json:"teachers"`
}

// DatasetTeacher is one tutor record in the dataset.
type DatasetTeacher struct {
	Name    string          `json:"name"`
	About   string          `json:"about"`
	Rating  int             `json:"rating"`
	Picture string          `json:"picture"`
	Price   int             `json:"price"`
	Goals   []string        `json:"goals"`
	Free    models.Schedule `json:"free"`
}

// ImportSummary counts what an import run inserted.
type ImportSummary struct {
	Goals    int
	Teachers int
	Links    int
}

// ImportService populates teachers, goals and their junction links from a
// static dataset. Not idempotent: re-running duplicates rows, so it must be
// run at most once against an empty store.
type ImportService struct {
	goals    importGoalRepository
	teachers importTeacherRepository
	logger   *zap.Logger
}

// NewImportService constructs an ImportService.
func NewImportService(goals importGoalRepository, teachers importTeacherRepository, logger *zap.Logger) *ImportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ImportService{goals: goals, teachers: teachers, logger: logger}
}

// LoadDataset reads and decodes a dataset file.
func LoadDataset(path string) (Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset %s: %w", path, err)
	}
	var ds Dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return Dataset{}, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return ds, nil
}

// Run imports all goals first, then each teacher with its goal links. A
// teacher referencing a tag absent from the dataset's goal set fails the
// whole run immediately.
func (s *ImportService) Run(ctx context.Context, ds Dataset) (*ImportSummary, error) {
	summary := &ImportSummary{}

	tags := make([]string, 0, len(ds.Goals))
	for tag := range ds.Goals {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	for _, tag := range tags {
		goal := &models.Goal{Goal: ds.Goals[tag], Tag: tag}
		if err := s.goals.Create(ctx, goal); err != nil {
			return nil, fmt.Errorf("import goal %q: %w", tag, err)
		}
		summary.Goals++
	}

	for _, info := range ds.Teachers {
		teacher := &models.Teacher{
			Name:     info.Name,
			About:    info.About,
			Rating:   info.Rating,
			Photo:    info.Picture,
			Price:    info.Price,
			Schedule: info.Free,
		}
		if err := s.teachers.Create(ctx, teacher); err != nil {
			return nil, fmt.Errorf("import teacher %q: %w", info.Name, err)
		}
		summary.Teachers++

		for _, tag := range info.Goals {
			goal, err := s.goals.FindByTag(ctx, tag)
			if err != nil {
				if errors.Is(err, sql.ErrNoRows) {
					return nil, fmt.Errorf("teacher %q references unknown goal tag %q", info.Name, tag)
				}
				return nil, fmt.Errorf("look up goal tag %q: %w", tag, err)
			}
			if err := s.teachers.LinkGoal(ctx, teacher.ID, goal.ID); err != nil {
				return nil, fmt.Errorf("link teacher %q to goal %q: %w", info.Name, tag, err)
			}
			summary.Links++
		}
	}

	s.logger.Info("dataset imported",
		zap.Int("goals", summary.Goals),
		zap.Int("teachers", summary.Teachers),
		zap.Int("links", summary.Links),
	)
	return summary, nil
}
