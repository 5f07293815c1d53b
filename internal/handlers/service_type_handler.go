package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoservicehub/workshop-scheduler/internal/httperr"
	"github.com/autoservicehub/workshop-scheduler/internal/middleware"
	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

type ServiceTypeHandler struct {
	db *gorm.DB
}

func NewServiceTypeHandler(db *gorm.DB) *ServiceTypeHandler {
	return &ServiceTypeHandler{db: db}
}

type ServiceTypeDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// GET /api/service-types/active?workshop=<slug>
//
// The workshop parameter is accepted for forward compatibility; for now
// every workshop gets the same list.
func (h *ServiceTypeHandler) Active(c *gin.Context) {
	locale := middleware.Locale(c)

	var types []models.ServiceType
	if err := h.db.
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&types).Error; err != nil {

		httperr.Internal(c, locale)
		return
	}

	out := make([]ServiceTypeDTO, 0, len(types))
	for _, st := range types {
		out = append(out, ServiceTypeDTO{ID: st.ID, Name: st.Name})
	}

	c.JSON(http.StatusOK, out)
}
