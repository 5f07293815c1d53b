package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/autoservicehub/workshop-scheduler/internal/domain/appointment"
	"github.com/autoservicehub/workshop-scheduler/internal/dto"
	"github.com/autoservicehub/workshop-scheduler/internal/httperr"
	"github.com/autoservicehub/workshop-scheduler/internal/middleware"
	ucAppointment "github.com/autoservicehub/workshop-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC         *ucAppointment.CreateAppointment
	availableSlotsUC *ucAppointment.GetAvailableSlots
	listUC           *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	availableSlotsUC *ucAppointment.GetAvailableSlots,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:         createUC,
		availableSlotsUC: availableSlotsUC,
		listUC:           listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName      string   `json:"clientName" binding:"required"`
	ClientPhone     string   `json:"clientPhone" binding:"required"`
	VehicleBrand    string   `json:"vehicleBrand" binding:"required"`
	VehicleModel    string   `json:"vehicleModel" binding:"required"`
	VehicleYear     int      `json:"vehicleYear" binding:"required"`
	VehiclePlate    string   `json:"vehiclePlate"`
	ServiceTypes    []string `json:"serviceTypes" binding:"required,min=1"`
	AppointmentDate string   `json:"appointmentDate" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

// POST /api/appointments?workshop=<slug>
func (h *AppointmentHandler) Create(c *gin.Context) {
	locale := middleware.Locale(c)

	slug := c.Query("workshop")
	if slug == "" {
		httperr.Validation(c, locale)
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, locale)
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		WorkshopSlug:    slug,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		VehicleBrand:    req.VehicleBrand,
		VehicleModel:    req.VehicleModel,
		VehicleYear:     req.VehicleYear,
		VehiclePlate:    req.VehiclePlate,
		ServiceTypes:    req.ServiceTypes,
		AppointmentDate: req.AppointmentDate,
	})
	if err != nil {
		if httperr.Business(c, locale, err) {
			return
		}
		httperr.Internal(c, locale)
		return
	}

	c.JSON(http.StatusCreated, dto.AppointmentFromModel(*ap, slug))
}

// ======================================================
// LIST
// ======================================================

// GET /api/appointments?workshop=<slug>
func (h *AppointmentHandler) List(c *gin.Context) {
	locale := middleware.Locale(c)

	slug := c.Query("workshop")
	if slug == "" {
		httperr.Validation(c, locale)
		return
	}

	appointments, err := h.listUC.Execute(c.Request.Context(), slug)
	if err != nil {
		if httperr.Business(c, locale, err) {
			return
		}
		httperr.Internal(c, locale)
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

// GET /api/appointments/available-slots?date=YYYY-MM-DD&workshop=<slug>
func (h *AppointmentHandler) AvailableSlots(c *gin.Context) {
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

	// The slot read is advisory; the slot constraint in the store is what
	// keeps concurrent bookings out of the same slot.
	slots, err := h.availableSlotsUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		WorkshopSlug: slug,
		Date:         date,
	})
	if err != nil {
		if httperr.Business(c, locale, err) {
			return
		}
		httperr.Internal(c, locale)
		return
	}

	c.JSON(http.StatusOK, slots)
}
