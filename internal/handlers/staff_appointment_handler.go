package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/autoservicehub/workshop-scheduler/internal/httperr"
	"github.com/autoservicehub/workshop-scheduler/internal/httpresp"
	"github.com/autoservicehub/workshop-scheduler/internal/middleware"
	ucAppointment "github.com/autoservicehub/workshop-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// StaffAppointmentHandler serves the management calendar: day and month
// listings plus the confirm / cancel / complete transitions.
type StaffAppointmentHandler struct {
	confirmUC     *ucAppointment.ConfirmAppointment
	cancelUC      *ucAppointment.CancelAppointment
	completeUC    *ucAppointment.CompleteAppointment
	listByDateUC  *ucAppointment.ListAppointmentsByDate
	listByMonthUC *ucAppointment.ListAppointmentsByMonth
}

func NewStaffAppointmentHandler(
	confirmUC *ucAppointment.ConfirmAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	completeUC *ucAppointment.CompleteAppointment,
	listByDateUC *ucAppointment.ListAppointmentsByDate,
	listByMonthUC *ucAppointment.ListAppointmentsByMonth,
) *StaffAppointmentHandler {
	return &StaffAppointmentHandler{
		confirmUC:     confirmUC,
		cancelUC:      cancelUC,
		completeUC:    completeUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
	}
}

// ======================================================
// LISTINGS
// ======================================================

// GET /api/me/appointments?workshop=<slug>&date=YYYY-MM-DD
func (h *StaffAppointmentHandler) ListByDate(c *gin.Context) {
	locale := middleware.Locale(c)

	slug := c.Query("workshop")
	dateStr := c.Query("date")
	if slug == "" || dateStr == "" {
		httperr.Validation(c, locale)
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		httperr.Business(c, locale, httperr.ErrBusiness("appointment.invalid_date"))
		return
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), slug, date)
	if err != nil {
		if httperr.Business(c, locale, err) {
			return
		}
		httperr.Internal(c, locale)
		return
	}

	httpresp.List(c, out)
}

// GET /api/me/appointments/month?workshop=<slug>&month=YYYY-MM
func (h *StaffAppointmentHandler) ListByMonth(c *gin.Context) {
	locale := middleware.Locale(c)

	slug := c.Query("workshop")
	monthStr := c.Query("month")
	if slug == "" || monthStr == "" {
		httperr.Validation(c, locale)
		return
	}

	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		httperr.Business(c, locale, httperr.ErrBusiness("appointment.invalid_date"))
		return
	}

	out, err := h.listByMonthUC.Execute(
		c.Request.Context(),
		slug,
		month.Year(),
		int(month.Month()),
	)
	if err != nil {
		if httperr.Business(c, locale, err) {
			return
		}
		httperr.Internal(c, locale)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// TRANSITIONS
// ======================================================

type transition func(c *gin.Context, slug string, userID uint, appointmentID uint) error

// PATCH /api/me/appointments/:id/confirm
func (h *StaffAppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, func(c *gin.Context, slug string, userID, appointmentID uint) error {
		ap, err := h.confirmUC.Execute(c.Request.Context(), slug, userID, appointmentID)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, ap)
		return nil
	})
}

// PATCH /api/me/appointments/:id/cancel
func (h *StaffAppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, func(c *gin.Context, slug string, userID, appointmentID uint) error {
		ap, err := h.cancelUC.Execute(c.Request.Context(), slug, userID, appointmentID)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, ap)
		return nil
	})
}

// PATCH /api/me/appointments/:id/complete
func (h *StaffAppointmentHandler) Complete(c *gin.Context) {
	h.transition(c, func(c *gin.Context, slug string, userID, appointmentID uint) error {
		ap, err := h.completeUC.Execute(c.Request.Context(), slug, userID, appointmentID)
		if err != nil {
			return err
		}
		c.JSON(http.StatusOK, ap)
		return nil
	})
}

func (h *StaffAppointmentHandler) transition(c *gin.Context, run transition) {
	locale := middleware.Locale(c)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	slug := c.Query("workshop")
	if slug == "" {
		httperr.Validation(c, locale)
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Validation(c, locale)
		return
	}

	if err := run(c, slug, userID, uint(id)); err != nil {
		if httperr.Business(c, locale, err) {
			return
		}
		httperr.Internal(c, locale)
	}
}
