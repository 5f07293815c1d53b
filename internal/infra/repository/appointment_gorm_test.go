package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	dbpkg "github.com/autoservicehub/workshop-scheduler/internal/db"
	domain "github.com/autoservicehub/workshop-scheduler/internal/domain/appointment"
	"github.com/autoservicehub/workshop-scheduler/internal/httperr"
	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

func newTestRepo(t *testing.T) (*AppointmentGormRepository, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf(
		"file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"),
	)

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, dbpkg.Migrate(gdb))

	return NewAppointmentGormRepository(gdb), gdb
}

func seedWorkshop(t *testing.T, gdb *gorm.DB, slug string) *models.Workshop {
	t.Helper()

	shop := &models.Workshop{
		Name:    "Oficina " + slug,
		Slug:    slug,
		Address: "Rua das Oficinas, 100",
	}
	require.NoError(t, gdb.Create(shop).Error)
	return shop
}

func booking(workshopID uint, at time.Time) *models.Appointment {
	return &models.Appointment{
		Reference:       uuid.NewString(),
		WorkshopID:      workshopID,
		ClientName:      "Maria Souza",
		ClientPhone:     "11999998888",
		VehicleBrand:    "Fiat",
		VehicleModel:    "Argo",
		VehicleYear:     2021,
		ServiceTypes:    datatypes.JSON(`["Freios"]`),
		AppointmentDate: at,
		Status:          string(domain.InitialStatus()),
	}
}

func TestGetWorkshopBySlug(t *testing.T) {
	repo, gdb := newTestRepo(t)
	seedWorkshop(t, gdb, "oficina-centro")

	shop, err := repo.GetWorkshopBySlug(context.Background(), "oficina-centro")
	require.NoError(t, err)
	assert.Equal(t, "oficina-centro", shop.Slug)

	_, err = repo.GetWorkshopBySlug(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "workshop.not_found"))
}

func TestListActiveServiceTypes(t *testing.T) {
	repo, gdb := newTestRepo(t)

	require.NoError(t, gdb.Create(&[]models.ServiceType{
		{Name: "Troca de óleo", IsActive: true},
		{Name: "Freios", IsActive: true},
		{Name: "Lavagem", IsActive: false},
	}).Error)

	types, err := repo.ListActiveServiceTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Freios", types[0].Name)
	assert.Equal(t, "Troca de óleo", types[1].Name)
}

func TestCreateAppointmentSlotConflict(t *testing.T) {
	repo, gdb := newTestRepo(t)
	shop := seedWorkshop(t, gdb, "oficina-centro")

	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateAppointment(context.Background(), booking(shop.ID, at)))

	// Same workshop, same date-time: the partial unique index rejects it.
	err := repo.CreateAppointment(context.Background(), booking(shop.ID, at))
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment.slot.taken"))
}

func TestCreateAppointmentDifferentWorkshopsShareTimes(t *testing.T) {
	repo, gdb := newTestRepo(t)
	centro := seedWorkshop(t, gdb, "oficina-centro")
	zonaSul := seedWorkshop(t, gdb, "oficina-zona-sul")

	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.CreateAppointment(context.Background(), booking(centro.ID, at)))
	require.NoError(t, repo.CreateAppointment(context.Background(), booking(zonaSul.ID, at)))
}

func TestCancelledAppointmentFreesSlot(t *testing.T) {
	repo, gdb := newTestRepo(t)
	shop := seedWorkshop(t, gdb, "oficina-centro")

	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	first := booking(shop.ID, at)
	require.NoError(t, repo.CreateAppointment(context.Background(), first))

	now := time.Now()
	require.NoError(t, domain.Cancel(first, now))
	require.NoError(t, repo.UpdateAppointment(context.Background(), first))

	// The index ignores cancelled rows, so the slot can be rebooked.
	require.NoError(t, repo.CreateAppointment(context.Background(), booking(shop.ID, at)))
}

func TestListAppointmentsForDayExcludesCancelled(t *testing.T) {
	repo, gdb := newTestRepo(t)
	shop := seedWorkshop(t, gdb, "oficina-centro")

	morning := booking(shop.ID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.CreateAppointment(context.Background(), morning))

	afternoon := booking(shop.ID, time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC))
	require.NoError(t, repo.CreateAppointment(context.Background(), afternoon))

	require.NoError(t, domain.Cancel(afternoon, time.Now()))
	require.NoError(t, repo.UpdateAppointment(context.Background(), afternoon))

	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	apps, err := repo.ListAppointmentsForDay(context.Background(), shop.ID, start, start.Add(24*time.Hour))
	require.NoError(t, err)

	require.Len(t, apps, 1)
	assert.Equal(t, morning.ID, apps[0].ID)
}

func TestListAppointmentsForPeriodKeepsCancelled(t *testing.T) {
	repo, gdb := newTestRepo(t)
	shop := seedWorkshop(t, gdb, "oficina-centro")

	ap := booking(shop.ID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))
	require.NoError(t, domain.Cancel(ap, time.Now()))
	require.NoError(t, repo.UpdateAppointment(context.Background(), ap))

	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	apps, err := repo.ListAppointmentsForPeriod(context.Background(), shop.ID, start, start.AddDate(0, 1, 0))
	require.NoError(t, err)

	// Calendar listings still show cancelled bookings.
	require.Len(t, apps, 1)
	assert.Equal(t, string(domain.StatusCancelled), apps[0].Status)
}

func TestGetAppointmentForWorkshop(t *testing.T) {
	repo, gdb := newTestRepo(t)
	centro := seedWorkshop(t, gdb, "oficina-centro")
	zonaSul := seedWorkshop(t, gdb, "oficina-zona-sul")

	ap := booking(centro.ID, time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))

	found, err := repo.GetAppointmentForWorkshop(context.Background(), ap.ID, centro.ID)
	require.NoError(t, err)
	assert.Equal(t, ap.Reference, found.Reference)

	_, err = repo.GetAppointmentForWorkshop(context.Background(), ap.ID, zonaSul.ID)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment.not_found"))
}
