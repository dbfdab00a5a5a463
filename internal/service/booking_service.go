package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/p-virex/stepik-chapter-4/internal/models"
	appErrors "github.com/p-virex/stepik-chapter-4/pkg/errors"
)

type bookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
}

// SubmitBookingRequest carries the booking form fields.
type SubmitBookingRequest struct {
	TeacherName string `form:"client_teacher" validate:"required"`
	Weekday     string `form:"client_weekday" validate:"required"`
	TimeSlot    string `form:"client_time" validate:"required"`
	ClientName  string `form:"name" validate:"required"`
	ClientPhone string `form:"phone" validate:"required"`
}

// BookingService handles the booking write path.
type BookingService struct {
	repo      bookingRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewBookingService constructs a BookingService.
func NewBookingService(repo bookingRepository, validate *validator.Validate, logger *zap.Logger) *BookingService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingService{repo: repo, validator: validate, logger: logger}
}

// Submit validates the form and inserts exactly one booking row. A validation
// failure inserts nothing and returns field-level messages for re-rendering.
// Booking the same teacher/day/slot twice is accepted silently; nothing in
// the schema or this path rejects it.
func (s *BookingService) Submit(ctx context.Context, req SubmitBookingRequest) (*models.Booking, error) {
	fields := map[string]string{}
	if err := s.validator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to validate booking")
		}
		for _, fe := range verrs {
			fields[formField(fe.StructField())] = msgFieldRequired
		}
	}
	if req.Weekday != "" && !models.ValidWeekday(req.Weekday) {
		fields["client_weekday"] = msgChooseOption
	}
	if req.TimeSlot != "" && !models.ValidTimeSlot(req.TimeSlot) {
		fields["client_time"] = msgChooseOption
	}
	if len(fields) > 0 {
		return nil, appErrors.Validation(fields)
	}

	booking := &models.Booking{
		TeacherName: strings.TrimSpace(req.TeacherName),
		Weekday:     req.Weekday,
		TimeSlot:    req.TimeSlot,
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientPhone: strings.TrimSpace(req.ClientPhone),
	}
	if err := s.repo.Create(ctx, booking); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create booking")
	}
	s.logger.Info("booking submitted",
		zap.Int64("id", booking.ID),
		zap.String("teacher", booking.TeacherName),
		zap.String("weekday", booking.Weekday),
		zap.String("time_slot", booking.TimeSlot),
	)
	return booking, nil
}
