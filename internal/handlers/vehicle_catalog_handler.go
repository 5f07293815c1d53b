package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/autoservicehub/workshop-scheduler/internal/catalog"
)

type VehicleCatalogHandler struct{}

func NewVehicleCatalogHandler() *VehicleCatalogHandler {
	return &VehicleCatalogHandler{}
}

// GET /api/vehicle-catalog?workshop=<slug>
//
// Returns the default table for every workshop, known or not.
func (h *VehicleCatalogHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Vehicles())
}
