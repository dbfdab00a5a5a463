package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/p-virex/stepik-chapter-4/internal/models"
	"github.com/p-virex/stepik-chapter-4/internal/service"
	appErrors "github.com/p-virex/stepik-chapter-4/pkg/errors"
	"github.com/p-virex/stepik-chapter-4/pkg/response"
)

// RequestHandler serves the tutoring request form and write path.
type RequestHandler struct {
	requests *service.RequestService
	catalog  *service.CatalogService
}

// NewRequestHandler constructs a RequestHandler.
func NewRequestHandler(requests *service.RequestService, catalog *service.CatalogService) *RequestHandler {
	return &RequestHandler{requests: requests, catalog: catalog}
}

// Form renders a blank tutoring request form.
func (h *RequestHandler) Form(c *gin.Context) {
	goals, err := h.catalog.Goals(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	h.renderForm(c, goals, service.SubmitTutoringRequest{}, map[string]string{})
}

// Submit validates and persists a tutoring request. A validation failure
// re-renders the form with field messages; nothing is written in that case.
func (h *RequestHandler) Submit(c *gin.Context) {
	var req service.SubmitTutoringRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to parse request form"))
		return
	}

	request, err := h.requests.Submit(c.Request.Context(), req)
	if err != nil {
		appErr := appErrors.FromError(err)
		if appErr.Code == appErrors.ErrValidation.Code {
			goals, goalsErr := h.catalog.Goals(c.Request.Context())
			if goalsErr != nil {
				response.Error(c, goalsErr)
				return
			}
			h.renderForm(c, goals, req, appErr.Fields)
			return
		}
		response.Error(c, err)
		return
	}

	goalsIndex, err := h.catalog.GoalsIndex(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Page(c, http.StatusOK, "request_done.html", gin.H{
		"request": request,
		"goals":   goalsIndex,
	})
}

func (h *RequestHandler) renderForm(c *gin.Context, goals []models.Goal, values service.SubmitTutoringRequest, errors map[string]string) {
	response.Page(c, http.StatusOK, "request.html", gin.H{
		"goals":      goals,
		"free_times": models.FreeTimeChoices,
		"values":     values,
		"errors":     errors,
	})
}
