package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoservicehub/workshop-scheduler/internal/i18n"
)

// BusinessError carries a message-catalog key as its code, so handlers can
// localize it without inspecting the failure site.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

var statusByCode = map[string]int{
	"appointment.slot.taken": http.StatusConflict,
	"appointment.not_found":  http.StatusNotFound,
	"workshop.not_found":     http.StatusNotFound,
	"user.not_found":         http.StatusNotFound,
	"user.login.invalid":     http.StatusUnauthorized,
}

// Business writes a localized response for a BusinessError and reports
// whether it handled the error. Unknown codes default to 400.
func Business(c *gin.Context, locale string, err error) bool {
	var be BusinessError
	if !errors.As(err, &be) {
		return false
	}

	status, ok := statusByCode[be.Code]
	if !ok {
		status = http.StatusBadRequest
	}

	Write(c, status, i18n.Message(locale, be.Code))
	return true
}
