package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/p-virex/stepik-chapter-4/internal/dto"
	"github.com/p-virex/stepik-chapter-4/internal/models"
	"github.com/p-virex/stepik-chapter-4/internal/service"
	"github.com/p-virex/stepik-chapter-4/pkg/response"
)

// PageHandler serves the read-only catalog pages.
type PageHandler struct {
	catalog    *service.CatalogService
	sampleSize int
}

// NewPageHandler constructs a PageHandler.
func NewPageHandler(catalog *service.CatalogService, sampleSize int) *PageHandler {
	if sampleSize <= 0 {
		sampleSize = 6
	}
	return &PageHandler{catalog: catalog, sampleSize: sampleSize}
}

// Index renders the home page with a random tutor sample and the goal index.
func (h *PageHandler) Index(c *gin.Context) {
	teachers, err := h.catalog.RandomSample(c.Request.Context(), h.sampleSize)
	if err != nil {
		response.Error(c, err)
		return
	}
	goals, err := h.catalog.GoalsIndex(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, http.StatusOK, "index.html", gin.H{
		"teachers": dto.SummaryCards(teachers),
		"goals":    goals,
	})
}

// All renders every tutor without shuffling.
func (h *PageHandler) All(c *gin.Context) {
	teachers, err := h.catalog.ListTeachers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	goals, err := h.catalog.GoalsIndex(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, http.StatusOK, "index.html", gin.H{
		"teachers": dto.SummaryCards(teachers),
		"goals":    goals,
	})
}

// Goal renders tutors filtered by a learning goal.
func (h *PageHandler) Goal(c *gin.Context) {
	goalID, err := strconv.ParseInt(c.Param("goalID"), 10, 64)
	if err != nil {
		response.NotFound(c)
		return
	}
	goal, teachers, err := h.catalog.TeachersForGoal(c.Request.Context(), goalID)
	if err != nil {
		response.Error(c, err)
		return
	}
	goals, err := h.catalog.GoalsIndex(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, http.StatusOK, "goal.html", gin.H{
		"goal":     goal.Goal,
		"goal_id":  goal.ID,
		"goals":    goals,
		"teachers": dto.SummaryCards(teachers),
	})
}

// Profile renders one tutor's profile with schedule and goal tag line.
func (h *PageHandler) Profile(c *gin.Context) {
	teacherID, err := strconv.ParseInt(c.Param("teacherID"), 10, 64)
	if err != nil {
		response.NotFound(c)
		return
	}
	teacher, goals, err := h.catalog.TeacherProfile(c.Request.Context(), teacherID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, http.StatusOK, "profile.html", gin.H{
		"teacher":   dto.ProfileBundle(*teacher),
		"tag_goals": dto.GoalTagLine(goals),
		"days":      models.WeekdayOrder,
		"day_names": models.WeekdayNames,
		"slots":     models.TimeSlots,
	})
}

// BookingForm renders a booking form pre-filled with teacher, day and slot.
func (h *PageHandler) BookingForm(c *gin.Context) {
	teacherID, err := strconv.ParseInt(c.Param("teacherID"), 10, 64)
	if err != nil {
		response.NotFound(c)
		return
	}
	weekday := c.Param("weekday")
	if !models.ValidWeekday(weekday) {
		response.NotFound(c)
		return
	}
	timeSlot := c.Param("timeSlot")
	teacher, _, err := h.catalog.TeacherProfile(c.Request.Context(), teacherID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, http.StatusOK, "booking.html", gin.H{
		"teacher_name": teacher.Name,
		"teacher_id":   teacher.ID,
		"weekday":      weekday,
		"day_name":     models.WeekdayNames[weekday],
		"time_slot":    timeSlot,
		"name":         "",
		"phone":        "",
		"errors":       map[string]string{},
	})
}
