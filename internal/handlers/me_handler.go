package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/httpresp"
	"github.com/BruksfildServices01/cat-hotel/internal/middleware"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

// MeHandler serves the signed-in user's own profile.
type MeHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewMeHandler(db *gorm.DB, d *audit.Dispatcher) *MeHandler {
	return &MeHandler{db: db, audit: d}
}

type UpdateProfileRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,min=3,max=100"`
	Phone   *string `json:"phone,omitempty" binding:"omitempty,max=20"`
	Address *string `json:"address,omitempty" binding:"omitempty,max=255"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func (h *MeHandler) current(c *gin.Context) (*models.User, bool) {
	var user models.User
	if err := h.db.First(&user, middleware.UserID(c)).Error; err != nil {
		httperr.FromError(c, notFound(err, "user_not_found"))
		return nil, false
	}
	return &user, true
}

func (h *MeHandler) GetMe(c *gin.Context) {
	user, ok := h.current(c)
	if !ok {
		return
	}
	httpresp.OK(c, user)
}

func (h *MeHandler) UpdateMe(c *gin.Context) {
	var req UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	user, ok := h.current(c)
	if !ok {
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Address != nil {
		user.Address = *req.Address
	}

	if err := h.db.Save(user).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "profile_updated", "user", user.ID, nil)
	httpresp.Updated(c, "Profile updated", user)
}

func (h *MeHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	user, ok := h.current(c)
	if !ok {
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		httperr.FromError(c, httperr.ErrUnauthorized("invalid_credentials"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.db.Model(user).Update("password_hash", string(hashed)).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "password_changed", "user", user.ID, nil)
	httpresp.Message(c, "Password changed")
}
