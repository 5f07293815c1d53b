package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoservicehub/workshop-scheduler/internal/httperr"
	"github.com/autoservicehub/workshop-scheduler/internal/i18n"
	"github.com/autoservicehub/workshop-scheduler/internal/middleware"
	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GET /api/me
func (h *MeHandler) GetMe(c *gin.Context) {
	locale := middleware.Locale(c)

	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, i18n.Message(locale, "user.not_found"))
		return
	}

	c.JSON(http.StatusOK, user)
}
