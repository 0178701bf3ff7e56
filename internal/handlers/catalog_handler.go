package handlers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/httpresp"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
	"github.com/BruksfildServices01/cat-hotel/internal/storage"
	ucCatalog "github.com/BruksfildServices01/cat-hotel/internal/usecase/catalog"
)

// CatalogHandler serves the per-day extras: services and foods.
type CatalogHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	uploader *storage.Uploader

	deleteService *ucCatalog.DeleteService
	deleteFood    *ucCatalog.DeleteFood
}

func NewCatalogHandler(
	db *gorm.DB,
	d *audit.Dispatcher,
	uploader *storage.Uploader,
	deleteService *ucCatalog.DeleteService,
	deleteFood *ucCatalog.DeleteFood,
) *CatalogHandler {
	return &CatalogHandler{
		db:            db,
		audit:         d,
		uploader:      uploader,
		deleteService: deleteService,
		deleteFood:    deleteFood,
	}
}

// --------- Requests ---------

type CreateCatalogItemRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type UpdateCatalogItemRequest struct {
	Name        *string  `json:"name,omitempty" binding:"omitempty,max=100"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty" binding:"omitempty,gt=0"`
}

func searchByName(q *gorm.DB, c *gin.Context) *gorm.DB {
	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	return q
}

// --------- Services ---------

func (h *CatalogHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := searchByName(h.db, c).Order("name ASC").Find(&services).Error; err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, services, int64(len(services)))
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var s models.Service
	if err := h.db.First(&s, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "service_not_found"))
		return
	}
	httpresp.OK(c, s)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateCatalogItemRequest
	if !bindJSON(c, &req) {
		return
	}

	s := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := h.db.Create(&s).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "service_created", "service", s.ID, nil)
	httpresp.Created(c, "Service created", s)
}

// UpdateService changes the catalog price only; bookings keep the price
// they were made with.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateCatalogItemRequest
	if !bindJSON(c, &req) {
		return
	}

	var s models.Service
	if err := h.db.First(&s, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "service_not_found"))
		return
	}

	if req.Name != nil {
		s.Name = *req.Name
	}
	if req.Description != nil {
		s.Description = *req.Description
	}
	if req.Price != nil {
		s.Price = *req.Price
	}

	if err := h.db.Save(&s).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "service_updated", "service", s.ID, nil)
	httpresp.Updated(c, "Service updated", s)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	s, err := h.deleteService.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "service_deleted", "service", s.ID, map[string]any{"name": s.Name})
	httpresp.Message(c, "Service deleted")
}

// --------- Foods ---------

func (h *CatalogHandler) ListFoods(c *gin.Context) {
	var foods []models.Food
	if err := searchByName(h.db, c).Order("name ASC").Find(&foods).Error; err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, foods, int64(len(foods)))
}

func (h *CatalogHandler) GetFood(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var f models.Food
	if err := h.db.First(&f, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "food_not_found"))
		return
	}
	httpresp.OK(c, f)
}

func (h *CatalogHandler) CreateFood(c *gin.Context) {
	var req CreateCatalogItemRequest
	if !bindJSON(c, &req) {
		return
	}

	f := models.Food{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}
	if err := h.db.Create(&f).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "food_created", "food", f.ID, nil)
	httpresp.Created(c, "Food created", f)
}

func (h *CatalogHandler) UpdateFood(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateCatalogItemRequest
	if !bindJSON(c, &req) {
		return
	}

	var f models.Food
	if err := h.db.First(&f, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "food_not_found"))
		return
	}

	if req.Name != nil {
		f.Name = *req.Name
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.Price != nil {
		f.Price = *req.Price
	}

	if err := h.db.Save(&f).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "food_updated", "food", f.ID, nil)
	httpresp.Updated(c, "Food updated", f)
}

// UploadFoodImage replaces the food's picture with the multipart "image".
func (h *CatalogHandler) UploadFoodImage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var f models.Food
	if err := h.db.First(&f, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "food_not_found"))
		return
	}

	url, key, ok := uploadFormImage(c, h.uploader, fmt.Sprintf("foods/%d", f.ID))
	if !ok {
		return
	}

	oldKey := f.ImageKey
	if err := h.db.Model(&f).Updates(map[string]any{
		"image_url": url,
		"image_key": key,
	}).Error; err != nil {
		removeObject(c, h.uploader, key)
		httperr.FromError(c, err)
		return
	}
	f.ImageURL, f.ImageKey = url, key
	removeObject(c, h.uploader, oldKey)

	record(h.audit, c, "food_image_uploaded", "food", f.ID, nil)
	httpresp.Updated(c, "Image uploaded", f)
}

func (h *CatalogHandler) DeleteFood(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	f, err := h.deleteFood.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	removeObject(c, h.uploader, f.ImageKey)

	record(h.audit, c, "food_deleted", "food", f.ID, map[string]any{"name": f.Name})
	httpresp.Message(c, "Food deleted")
}
