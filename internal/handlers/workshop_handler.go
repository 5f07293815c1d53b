package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/autoservicehub/workshop-scheduler/internal/audit"
	"github.com/autoservicehub/workshop-scheduler/internal/dto"
	"github.com/autoservicehub/workshop-scheduler/internal/httperr"
	"github.com/autoservicehub/workshop-scheduler/internal/i18n"
	"github.com/autoservicehub/workshop-scheduler/internal/middleware"
	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

type WorkshopHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewWorkshopHandler(db *gorm.DB, dispatcher *audit.Dispatcher) *WorkshopHandler {
	return &WorkshopHandler{db: db, audit: dispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type WorkshopContentRequest struct {
	Description string   `json:"description" binding:"required"`
	Hours       string   `json:"hours" binding:"required"`
	Services    []string `json:"services" binding:"required,min=1"`
}

type CreateWorkshopRequest struct {
	Slug    string  `json:"workshopId" binding:"required"`
	Name    string  `json:"name" binding:"required"`
	Address string  `json:"address" binding:"required"`
	Phone   string  `json:"phone" binding:"required"`
	Rating  float64 `json:"rating"`

	// Locale tag -> localized content; must contain the registration
	// language.
	Content map[string]WorkshopContentRequest `json:"content" binding:"required,min=1"`

	RegistrationLanguage string `json:"registrationLanguage"`
}

// ======================================================
// DIRECTORY
// ======================================================

// GET /api/workshops
func (h *WorkshopHandler) List(c *gin.Context) {
	locale := middleware.Locale(c)

	var workshops []models.Workshop
	if err := h.db.Order("id ASC").Find(&workshops).Error; err != nil {
		httperr.Internal(c, locale)
		return
	}

	out := make([]dto.WorkshopDTO, 0, len(workshops))
	for _, w := range workshops {
		out = append(out, dto.WorkshopFromModel(w, locale))
	}

	c.JSON(http.StatusOK, out)
}

// GET /api/workshops/:id  (id is the public slug)
func (h *WorkshopHandler) GetBySlug(c *gin.Context) {
	locale := middleware.Locale(c)

	slug := c.Param("id")

	var shop models.Workshop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, i18n.Message(locale, "workshop.not_found"))
		return
	}

	c.JSON(http.StatusOK, dto.WorkshopFromModel(shop, locale))
}

// ======================================================
// REGISTRATION (STAFF)
// ======================================================

// POST /api/workshops
func (h *WorkshopHandler) Create(c *gin.Context) {
	locale := middleware.Locale(c)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateWorkshopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, locale)
		return
	}

	slug := strings.ToLower(strings.TrimSpace(req.Slug))

	regLang := req.RegistrationLanguage
	if regLang == "" {
		regLang = locale
	}
	if _, ok := req.Content[regLang]; !ok {
		httperr.Validation(c, locale)
		return
	}

	var count int64
	h.db.Model(&models.Workshop{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, i18n.Message(locale, "workshop.slug.exists"))
		return
	}

	byLocale := make(map[string]models.WorkshopContent, len(req.Content))
	for tag, content := range req.Content {
		byLocale[tag] = models.WorkshopContent{
			Description: content.Description,
			Hours:       content.Hours,
			Services:    content.Services,
		}
	}

	encoded, err := json.Marshal(byLocale)
	if err != nil {
		httperr.Internal(c, locale)
		return
	}

	shop := models.Workshop{
		Name:                 req.Name,
		Slug:                 slug,
		Address:              req.Address,
		Phone:                req.Phone,
		Rating:               req.Rating,
		Content:              encoded,
		RegistrationLanguage: regLang,
	}

	if err := h.db.Create(&shop).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, i18n.Message(locale, "workshop.slug.exists"))
			return
		}
		httperr.Internal(c, locale)
		return
	}

	h.audit.Dispatch(audit.Event{
		WorkshopID: shop.ID,
		UserID:     &userID,
		Action:     "workshop_registered",
		Entity:     "workshop",
		EntityID:   &shop.ID,
	})

	c.JSON(http.StatusCreated, dto.WorkshopFromModel(shop, locale))
}
