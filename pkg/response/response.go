package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/p-virex/stepik-chapter-4/pkg/errors"
)

// Visitor-facing texts, kept in the site's language.
const (
	NotFoundText    = "Ничего не нашлось! Вот неудача, отправляйтесь на главную!"
	ServerErrorText = "Что-то не так, но мы все починим"
)

// Page renders an HTML template with the given data.
func Page(c *gin.Context, status int, template string, data gin.H) {
	c.Header("Cache-Control", "no-store")
	c.HTML(status, template, data)
}

// Error maps a domain error onto the apology pages. Validation errors never
// reach this path; write handlers recover them by re-rendering the form.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	switch appErr.Status {
	case http.StatusNotFound:
		NotFound(c)
	default:
		ServerError(c)
	}
}

// NotFound renders the localized not-found page.
func NotFound(c *gin.Context) {
	Page(c, http.StatusNotFound, "error.html", gin.H{"message": NotFoundText})
}

// ServerError renders the localized failure page without exposing internals.
func ServerError(c *gin.Context) {
	Page(c, http.StatusInternalServerError, "error.html", gin.H{"message": ServerErrorText})
}
