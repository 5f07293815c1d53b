package httperr

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autoservicehub/workshop-scheduler/internal/i18n"
)

// ErrorResponse is the uniform failure body for every endpoint.
type ErrorResponse struct {
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Message:   message,
		Status:    status,
		Timestamp: time.Now(),
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Conflict(c *gin.Context, message string) {
	Write(c, http.StatusConflict, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Internal(c *gin.Context, locale string) {
	Write(c, http.StatusInternalServerError, i18n.Message(locale, "error.internal"))
}

func Validation(c *gin.Context, locale string) {
	Write(c, http.StatusBadRequest, i18n.Message(locale, "error.validation"))
}
