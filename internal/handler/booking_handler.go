package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/p-virex/stepik-chapter-4/internal/models"
	"github.com/p-virex/stepik-chapter-4/internal/service"
	appErrors "github.com/p-virex/stepik-chapter-4/pkg/errors"
	"github.com/p-virex/stepik-chapter-4/pkg/response"
)

// BookingHandler serves the booking write path.
type BookingHandler struct {
	bookings *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Submit validates and persists a booking. A validation failure re-renders
// the booking form with field messages and the submitted values; nothing is
// written in that case.
func (h *BookingHandler) Submit(c *gin.Context) {
	var req service.SubmitBookingRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to parse booking form"))
		return
	}

	booking, err := h.bookings.Submit(c.Request.Context(), req)
	if err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Code == appErrors.ErrValidation.Code {
			response.Page(c, http.StatusOK, "booking.html", gin.H{
				"teacher_name": req.TeacherName,
				"weekday":      req.Weekday,
				"day_name":     models.WeekdayNames[req.Weekday],
				"time_slot":    req.TimeSlot,
				"name":         req.ClientName,
				"phone":        req.ClientPhone,
				"errors":       appErr.Fields,
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.Page(c, http.StatusOK, "booking_done.html", gin.H{
		"booking":  booking,
		"day_name": models.WeekdayNames[booking.Weekday],
	})
}
