package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	"github.com/BruksfildServices01/cat-hotel/internal/config"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/httpresp"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
	"github.com/BruksfildServices01/cat-hotel/internal/validators"
)

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, d *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, audit: d}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=3,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"max=20"`
	Address  string `json:"address" binding:"max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	email := validators.NormalizeEmail(req.Email)

	if h.config.CheckEmailDomain && !validators.IsEmailDomainValid(email) {
		httperr.FromError(c, httperr.ErrValidation("invalid_email_domain"))
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.FromError(c, err)
		return
	}
	if count > 0 {
		httperr.FromError(c, httperr.ErrConflict("email_already_exists"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Address:      req.Address,
		Role:         models.RoleCustomer,
	}

	if err := h.db.Create(&user).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.FromError(c, httperr.ErrConflict("email_already_exists"))
			return
		}
		httperr.FromError(c, err)
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &user.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.Created(c, "Registration successful", AuthResponse{User: &user, Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	var user models.User
	if err := h.db.
		Where("email = ?", validators.NormalizeEmail(req.Email)).
		First(&user).Error; err != nil {

		httperr.FromError(c, asInvalidCredentials(err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.FromError(c, httperr.ErrUnauthorized("invalid_credentials"))
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Updated(c, "Login successful", AuthResponse{User: &user, Token: token})
}

func asInvalidCredentials(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrUnauthorized("invalid_credentials")
	}
	return err
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  user.Role,
		"exp":   now.Add(h.config.JWTTTL).Unix(),
		"iat":   now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
