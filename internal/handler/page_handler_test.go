package handler

import (
	"context"
	"database/sql"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/p-virex/stepik-chapter-4/internal/models"
	"github.com/p-virex/stepik-chapter-4/internal/service"
	"github.com/p-virex/stepik-chapter-4/pkg/response"
)

// Stripped-down page bodies, just enough to show which template rendered
// and with what data.
const testTemplates = `
{{define "index.html"}}index teachers={{len .teachers}}{{end}}
{{define "goal.html"}}goal {{.goal}} teachers={{len .teachers}}{{end}}
{{define "profile.html"}}profile {{.teacher.Name}} tags={{.tag_goals}}{{end}}
{{define "booking.html"}}booking {{.teacher_name}} {{.day_name}} {{.time_slot}}{{range $f, $m := .errors}} {{$f}}:{{$m}}{{end}}{{end}}
{{define "booking_done.html"}}booked {{.booking.TeacherName}} {{.booking.ClientName}}{{end}}
{{define "request.html"}}request goals={{len .goals}}{{range $f, $m := .errors}} {{$f}}:{{$m}}{{end}}{{end}}
{{define "request_done.html"}}requested {{.request.Goal}} {{.request.ClientName}}{{end}}
{{define "error.html"}}{{.message}}{{end}}
`

type fakeTeacherRepo struct {
	teachers []models.Teacher
	byGoal   map[int64][]models.Teacher
}

func (f *fakeTeacherRepo) ListAll(ctx context.Context) ([]models.Teacher, error) {
	out := make([]models.Teacher, len(f.teachers))
	copy(out, f.teachers)
	return out, nil
}

func (f *fakeTeacherRepo) FindByID(ctx context.Context, id int64) (*models.Teacher, error) {
	for _, t := range f.teachers {
		if t.ID == id {
			cp := t
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeTeacherRepo) ListByGoal(ctx context.Context, goalID int64) ([]models.Teacher, error) {
	return f.byGoal[goalID], nil
}

type fakeGoalRepo struct {
	goals     []models.Goal
	byTeacher map[int64][]models.Goal
}

func (f *fakeGoalRepo) ListAll(ctx context.Context) ([]models.Goal, error) {
	return f.goals, nil
}

func (f *fakeGoalRepo) FindByID(ctx context.Context, id int64) (*models.Goal, error) {
	for _, g := range f.goals {
		if g.ID == id {
			cp := g
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeGoalRepo) FindByTag(ctx context.Context, tag string) (*models.Goal, error) {
	for _, g := range f.goals {
		if g.Tag == tag {
			cp := g
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeGoalRepo) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Goal, error) {
	return f.byTeacher[teacherID], nil
}

type fakeBookingRepo struct {
	created []models.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	booking.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *booking)
	return nil
}

type fakeRequestRepo struct {
	created []models.Request
}

func (f *fakeRequestRepo) Create(ctx context.Context, request *models.Request) error {
	request.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *request)
	return nil
}

func fixtureCatalog() (*fakeTeacherRepo, *fakeGoalRepo) {
	goals := &fakeGoalRepo{goals: []models.Goal{
		{ID: 1, Goal: "Для путешествий", Tag: "travel"},
		{ID: 2, Goal: "Для учебы", Tag: "study"},
	}}
	teachers := &fakeTeacherRepo{
		teachers: []models.Teacher{
			{ID: 1, Name: "Ann", About: "x", Rating: 5, Price: 20, Schedule: models.Schedule{"mon": {"10:00": true}}},
			{ID: 2, Name: "Mark", About: "y", Rating: 4, Price: 15},
		},
	}
	teachers.byGoal = map[int64][]models.Teacher{1: {teachers.teachers[0]}}
	goals.byTeacher = map[int64][]models.Goal{1: {goals.goals[0]}}
	return teachers, goals
}

func newTestRouter(teachers *fakeTeacherRepo, goals *fakeGoalRepo, bookings *fakeBookingRepo, requests *fakeRequestRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalogSvc := service.NewCatalogService(teachers, goals, nil, 0, nil, zap.NewNop())
	bookingSvc := service.NewBookingService(bookings, validator.New(), zap.NewNop())
	requestSvc := service.NewRequestService(requests, goals, validator.New(), zap.NewNop())

	pages := NewPageHandler(catalogSvc, 6)
	bookingHandler := NewBookingHandler(bookingSvc)
	requestHandler := NewRequestHandler(requestSvc, catalogSvc)

	engine := gin.New()
	engine.SetHTMLTemplate(template.Must(template.New("").Parse(testTemplates)))
	engine.NoRoute(response.NotFound)

	engine.GET("/", pages.Index)
	engine.GET("/all/", pages.All)
	engine.GET("/goals/:goalID/", pages.Goal)
	engine.GET("/profiles/:teacherID/", pages.Profile)
	engine.GET("/booking/:teacherID/:weekday/:timeSlot/", pages.BookingForm)
	engine.GET("/request/", requestHandler.Form)
	engine.GET("/request_done/", requestHandler.Form)
	engine.GET("/booking_done/", requestHandler.Form)
	engine.POST("/request_done/", requestHandler.Submit)
	engine.POST("/booking_done/", bookingHandler.Submit)
	return engine
}

func doGet(engine *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	engine.ServeHTTP(rec, req)
	return rec
}

func doPostForm(engine *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	engine.ServeHTTP(rec, req)
	return rec
}

func TestIndexPage(t *testing.T) {
	teachers, goals := fixtureCatalog()
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, &fakeRequestRepo{})

	rec := doGet(engine, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "index teachers=2")
}

func TestAllPage(t *testing.T) {
	teachers, goals := fixtureCatalog()
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, &fakeRequestRepo{})

	rec := doGet(engine, "/all/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "index teachers=2")
}

func TestGoalPage(t *testing.T) {
	teachers, goals := fixtureCatalog()
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, &fakeRequestRepo{})

	rec := doGet(engine, "/goals/1/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "goal Для путешествий teachers=1")
}

func TestGoalPageUnknownID(t *testing.T) {
	teachers, goals := fixtureCatalog()
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, &fakeRequestRepo{})

	rec := doGet(engine, "/goals/99/")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), response.NotFoundText)
}

func TestGoalPageMalformedID(t *testing.T) {
	teachers, goals := fixtureCatalog()
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, &fakeRequestRepo{})

	rec := doGet(engine, "/goals/abc/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProfilePage(t *testing.T) {
	teachers, goals := fixtureCatalog()
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, &fakeRequestRepo{})

	rec := doGet(engine, "/profiles/1/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "profile Ann")
	assert.Contains(t, rec.Body.String(), "Для путешествий")
}

func TestProfilePageUnknownTeacher(t *testing.T) {
	teachers, goals := fixtureCatalog()
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, &fakeRequestRepo{})

	rec := doGet(engine, "/profiles/42/")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), response.NotFoundText)
}

func TestBookingFormPage(t *testing.T) {
	teachers, goals := fixtureCatalog()
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, &fakeRequestRepo{})

	rec := doGet(engine, "/booking/1/mon/10:00/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking Ann Понедельник 10:00")
}

func TestBookingFormPageUnknownWeekday(t *testing.T) {
	teachers, goals := fixtureCatalog()
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, &fakeRequestRepo{})

	rec := doGet(engine, "/booking/1/someday/10:00/")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	teachers, goals := fixtureCatalog()
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, &fakeRequestRepo{})

	rec := doGet(engine, "/nowhere/")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), response.NotFoundText)
}
