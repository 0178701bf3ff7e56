package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/httpresp"
	"github.com/BruksfildServices01/cat-hotel/internal/middleware"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
	"github.com/BruksfildServices01/cat-hotel/internal/timezone"
)

type CatHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCatHandler(db *gorm.DB, d *audit.Dispatcher) *CatHandler {
	return &CatHandler{db: db, audit: d}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateCatRequest struct {
	Name      string   `json:"name" binding:"required,max=100"`
	Breed     string   `json:"breed" binding:"max=100"`
	Weight    *float64 `json:"weight" binding:"omitempty,gte=0.1"`
	BirthDate string   `json:"birth_date" binding:"omitempty,isodate" copier:"-"`
	Gender    string   `json:"gender" binding:"omitempty,catgender"`
	Notes     string   `json:"notes"`
}

// UpdateCatRequest leaves fields sent empty untouched.
type UpdateCatRequest struct {
	Name      string   `json:"name" binding:"max=100"`
	Breed     string   `json:"breed" binding:"max=100"`
	Weight    *float64 `json:"weight" binding:"omitempty,gte=0.1"`
	BirthDate string   `json:"birth_date" binding:"omitempty,isodate" copier:"-"`
	Gender    string   `json:"gender" binding:"omitempty,catgender"`
	Notes     string   `json:"notes"`
}

func birthDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := timezone.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ======================================================
// HANDLERS
// ======================================================

// List returns the caller's cats; admins see every cat.
func (h *CatHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Cat{})
	if !middleware.IsAdmin(c) {
		q = q.Where("user_id = ?", middleware.UserID(c))
	}

	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(breed) LIKE ?", like, like)
	}

	var cats []models.Cat
	if err := q.Order("id ASC").Find(&cats).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, cats, int64(len(cats)))
}

func (h *CatHandler) Get(c *gin.Context) {
	cat, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, cat)
}

func (h *CatHandler) Create(c *gin.Context) {
	var req CreateCatRequest
	if !bindJSON(c, &req) {
		return
	}

	var cat models.Cat
	if err := copier.Copy(&cat, &req); err != nil {
		httperr.FromError(c, err)
		return
	}

	bd, err := birthDate(req.BirthDate)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	cat.BirthDate = bd
	cat.UserID = middleware.UserID(c)
	if cat.Gender == "" {
		cat.Gender = "unknown"
	}

	if err := h.db.Create(&cat).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "cat_created", "cat", cat.ID, nil)
	httpresp.Created(c, "Cat created", cat)
}

func (h *CatHandler) Update(c *gin.Context) {
	cat, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdateCatRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := copier.CopyWithOption(cat, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		httperr.FromError(c, err)
		return
	}
	if req.BirthDate != "" {
		bd, err := birthDate(req.BirthDate)
		if err != nil {
			httperr.FromError(c, err)
			return
		}
		cat.BirthDate = bd
	}

	if err := h.db.Omit("Owner").Save(cat).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "cat_updated", "cat", cat.ID, nil)
	httpresp.Updated(c, "Cat updated", cat)
}

func (h *CatHandler) Delete(c *gin.Context) {
	cat, ok := h.load(c)
	if !ok {
		return
	}

	var bookings int64
	if err := h.db.Model(&models.Booking{}).Where("cat_id = ?", cat.ID).Count(&bookings).Error; err != nil {
		httperr.FromError(c, err)
		return
	}
	if bookings > 0 {
		httperr.FromError(c, httperr.ErrConflict("cat_has_bookings"))
		return
	}

	if err := h.db.Delete(cat).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "cat_deleted", "cat", cat.ID, map[string]any{"name": cat.Name})
	httpresp.Message(c, "Cat deleted")
}

// load fetches the :id cat and checks the caller may touch it.
func (h *CatHandler) load(c *gin.Context) (*models.Cat, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		return nil, false
	}

	var cat models.Cat
	if err := h.db.First(&cat, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "cat_not_found"))
		return nil, false
	}

	if cat.UserID != middleware.UserID(c) && !middleware.IsAdmin(c) {
		httperr.FromError(c, httperr.ErrForbidden("forbidden"))
		return nil, false
	}
	return &cat, true
}
