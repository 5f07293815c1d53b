package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/autoservicehub/workshop-scheduler/internal/config"
	"github.com/autoservicehub/workshop-scheduler/internal/httperr"
	"github.com/autoservicehub/workshop-scheduler/internal/i18n"
	"github.com/autoservicehub/workshop-scheduler/internal/middleware"
	"github.com/autoservicehub/workshop-scheduler/internal/models"
	"github.com/autoservicehub/workshop-scheduler/internal/validators"
)

type UserHandler struct {
	db     *gorm.DB
	config *config.Config
}

func NewUserHandler(db *gorm.DB, cfg *config.Config) *UserHandler {
	return &UserHandler{db: db, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	UserType string `json:"userType"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	locale := middleware.Locale(c)

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, locale)
		return
	}

	email := validators.NormalizeEmail(req.Email)
	if !validators.IsEmailWellFormed(email) {
		httperr.BadRequest(c, i18n.Message(locale, "user.email.invalid"))
		return
	}

	userType := models.UserType(req.UserType)
	if req.UserType == "" {
		userType = models.UserTypeWorkshop
	}
	if !userType.Valid() {
		httperr.Validation(c, locale)
		return
	}

	// Friendly pre-check; the unique index on email is what actually
	// guarantees uniqueness when two registrations race.
	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, i18n.Message(locale, "user.email.exists"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, locale)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		Phone:        req.Phone,
		PasswordHash: string(hashed),
		UserType:     userType,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.BadRequest(c, i18n.Message(locale, "user.email.exists"))
			return
		}
		httperr.Internal(c, locale)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	locale := middleware.Locale(c)

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, locale)
		return
	}

	email := validators.NormalizeEmail(req.Email)

	// Unknown email and wrong password answer identically so the endpoint
	// cannot be used to enumerate accounts.
	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.Unauthorized(c, i18n.Message(locale, "user.login.invalid"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, i18n.Message(locale, "user.login.invalid"))
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, locale)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":    user,
		"message": i18n.Message(locale, "user.login.success"),
		"token":   token,
	})
}

// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	locale := middleware.Locale(c)

	var users []models.User
	if err := h.db.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, locale)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	locale := middleware.Locale(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Validation(c, locale)
		return
	}

	var user models.User
	if err := h.db.First(&user, uint(id)).Error; err != nil {
		httperr.NotFound(c, i18n.Message(locale, "user.not_found"))
		return
	}

	c.JSON(http.StatusOK, user)
}

// GET /api/users/email/:email
func (h *UserHandler) GetByEmail(c *gin.Context) {
	locale := middleware.Locale(c)

	email := validators.NormalizeEmail(c.Param("email"))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		httperr.NotFound(c, i18n.Message(locale, "user.not_found"))
		return
	}

	c.JSON(http.StatusOK, user)
}

// --------- JWT ---------

func (h *UserHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"userType": string(user.UserType),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
