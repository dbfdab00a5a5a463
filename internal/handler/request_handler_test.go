package handler

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequestValues() url.Values {
	return url.Values{
		"goal":      {"travel"},
		"free_time": {"1-2"},
		"name":      {"Vera"},
		"phone":     {"+7 911 111-11-11"},
	}
}

func TestRequestFormPage(t *testing.T) {
	teachers, goals := fixtureCatalog()
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, &fakeRequestRepo{})

	rec := doGet(engine, "/request/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "request goals=2")
}

func TestRequestSubmit(t *testing.T) {
	teachers, goals := fixtureCatalog()
	requests := &fakeRequestRepo{}
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, requests)

	rec := doPostForm(engine, "/request_done/", validRequestValues())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "requested Для путешествий Vera")

	require.Len(t, requests.created, 1)
	request := requests.created[0]
	assert.Equal(t, "Для путешествий", request.Goal)
	assert.Equal(t, "1-2", request.FreeTime)
	assert.Equal(t, "Vera", request.ClientName)
}

func TestRequestSubmitUnknownGoalRerendersForm(t *testing.T) {
	teachers, goals := fixtureCatalog()
	requests := &fakeRequestRepo{}
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, requests)

	form := validRequestValues()
	form.Set("goal", "astronomy")
	rec := doPostForm(engine, "/request_done/", form)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "goal:Выберите вариант из списка")
	assert.Empty(t, requests.created)
}

func TestRequestSubmitMissingPhoneRerendersForm(t *testing.T) {
	teachers, goals := fixtureCatalog()
	requests := &fakeRequestRepo{}
	engine := newTestRouter(teachers, goals, &fakeBookingRepo{}, requests)

	form := validRequestValues()
	form.Del("phone")
	rec := doPostForm(engine, "/request_done/", form)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "phone:Заполните поле")
	assert.Empty(t, requests.created)
}
