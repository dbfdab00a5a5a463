package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/p-virex/stepik-chapter-4/internal/models"
	appErrors "github.com/p-virex/stepik-chapter-4/pkg/errors"
)

type requestRepository interface {
	Create(ctx context.Context, request *models.Request) error
}

type requestGoalRepository interface {
	FindByTag(ctx context.Context, tag string) (*models.Goal, error)
}

// SubmitTutoringRequest carries the tutoring request form fields. The goal
// arrives as its tag key; the stored record keeps the display label.
type SubmitTutoringRequest struct {
	GoalTag     string `form:"goal" validate:"required"`
	FreeTime    string `form:"free_time" validate:"required"`
	ClientName  string `form:"name" validate:"required"`
	ClientPhone string `form:"phone" validate:"required"`
}

// RequestService handles the tutoring request write path.
type RequestService struct {
	repo      requestRepository
	goals     requestGoalRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewRequestService constructs a RequestService.
func NewRequestService(repo requestRepository, goals requestGoalRepository, validate *validator.Validate, logger *zap.Logger) *RequestService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestService{repo: repo, goals: goals, validator: validate, logger: logger}
}

// Submit validates the form and inserts exactly one request row. The goal and
// free-time labels are stored as snapshots, never as references.
func (s *RequestService) Submit(ctx context.Context, req SubmitTutoringRequest) (*models.Request, error) {
	fields := map[string]string{}
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate request")
		}
		for _, fe := range verrs {
			fields[formField(fe.StructField())] = msgFieldRequired
		}
	}
	if req.FreeTime != "" && !models.ValidFreeTime(req.FreeTime) {
		fields["free_time"] = msgChooseOption
	}

	var goalLabel string
	if req.GoalTag != "" {
		goal, err := s.goals.FindByTag(ctx, req.GoalTag)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				fields["goal"] = msgChooseOption
			} else {
				return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load goal")
			}
		} else {
			goalLabel = goal.Goal
		}
	}
	if len(fields) > 0 {
		return nil, appErrors.Validation(fields)
	}

	request := &models.Request{
		Goal:        goalLabel,
		FreeTime:    req.FreeTime,
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientPhone: strings.TrimSpace(req.ClientPhone),
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create request")
	}
	s.logger.Info("tutoring request submitted",
		zap.Int64("id", request.ID),
		zap.String("goal", request.Goal),
		zap.String("free_time", request.FreeTime),
	)
	return request, nil
}
