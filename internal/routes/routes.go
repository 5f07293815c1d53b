package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/autoservicehub/workshop-scheduler/internal/audit"
	"github.com/autoservicehub/workshop-scheduler/internal/config"
	"github.com/autoservicehub/workshop-scheduler/internal/handlers"
	infraRepo "github.com/autoservicehub/workshop-scheduler/internal/infra/repository"
	"github.com/autoservicehub/workshop-scheduler/internal/middleware"
	ucAppointment "github.com/autoservicehub/workshop-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log zerolog.Logger) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	availableSlotsUC := ucAppointment.NewGetAvailableSlots(appointmentRepo)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(appointmentRepo)
	listByMonthUC := ucAppointment.NewListAppointmentsByMonth(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		availableSlotsUC,
		listAppointmentsUC,
	)

	staffAppointmentHandler := handlers.NewStaffAppointmentHandler(
		confirmAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listByDateUC,
		listByMonthUC,
	)

	userHandler := handlers.NewUserHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	workshopHandler := handlers.NewWorkshopHandler(db, auditDispatcher)
	serviceTypeHandler := handlers.NewServiceTypeHandler(db)
	vehicleCatalogHandler := handlers.NewVehicleCatalogHandler()
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.POST("/appointments", appointmentHandler.Create)
		api.GET("/appointments", appointmentHandler.List)
		api.GET("/appointments/available-slots", appointmentHandler.AvailableSlots)

		api.GET("/service-types/active", serviceTypeHandler.Active)
		api.GET("/vehicle-catalog", vehicleCatalogHandler.Get)

		api.GET("/workshops", workshopHandler.List)
		api.GET("/workshops/:id", workshopHandler.GetBySlug)

		api.POST("/users/register", userHandler.Register)
		api.POST("/users/login", userHandler.Login)
		api.GET("/users", userHandler.List)
		api.GET("/users/email/:email", userHandler.GetByEmail)
		api.GET("/users/:id", userHandler.GetByID)

		// ------------------------------
		// STAFF
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg), middleware.StaffOnly())
		{
			secured.GET("/me", meHandler.GetMe)

			secured.POST("/workshops", workshopHandler.Create)

			secured.GET("/me/appointments", staffAppointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", staffAppointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/confirm", staffAppointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", staffAppointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", staffAppointmentHandler.Complete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
