package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBookingValues() url.Values {
	return url.Values{
		"client_teacher": {"Ann"},
		"client_weekday": {"mon"},
		"client_time":    {"10:00"},
		"name":           {"Boris"},
		"phone":          {"+7 900 000-00-00"},
	}
}

func TestBookingSubmit(t *testing.T) {
	teachers, goals := fixtureCatalog()
	bookings := &fakeBookingRepo{}
	engine := newTestRouter(teachers, goals, bookings, &fakeRequestRepo{})

	rec := doPostForm(engine, "/booking_done/", validBookingValues())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "booked Ann Boris")

	require.Len(t, bookings.created, 1)
	booking := bookings.created[0]
	assert.Equal(t, "Ann", booking.TeacherName)
	assert.Equal(t, "mon", booking.Weekday)
	assert.Equal(t, "10:00", booking.TimeSlot)
	assert.Equal(t, "Boris", booking.ClientName)
	assert.Equal(t, "+7 900 000-00-00", booking.ClientPhone)
}

func TestBookingSubmitMissingNameRerendersForm(t *testing.T) {
	teachers, goals := fixtureCatalog()
	bookings := &fakeBookingRepo{}
	engine := newTestRouter(teachers, goals, bookings, &fakeRequestRepo{})

	form := validBookingValues()
	form.Del("name")
	rec := doPostForm(engine, "/booking_done/", form)

	// The form page comes back as a normal response, not an error page.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "booking Ann")
	assert.Contains(t, rec.Body.String(), "name:Заполните поле")
	assert.Empty(t, bookings.created)
}

func TestBookingSubmitForgedWeekdayRerendersForm(t *testing.T) {
	teachers, goals := fixtureCatalog()
	bookings := &fakeBookingRepo{}
	engine := newTestRouter(teachers, goals, bookings, &fakeRequestRepo{})

	form := validBookingValues()
	form.Set("client_weekday", "someday")
	rec := doPostForm(engine, "/booking_done/", form)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "client_weekday:Выберите вариант из списка")
	assert.Empty(t, bookings.created)
}

func TestBookingDoneGetShowsRequestForm(t *testing.T) {
	teachers, goals := fixtureCatalog()
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, &fakeRequestRepo{})

	rec := doGet(engine, "/booking_done/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "request goals=2")
}
