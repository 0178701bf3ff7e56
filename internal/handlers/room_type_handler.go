package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/httpresp"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
	"github.com/BruksfildServices01/cat-hotel/internal/storage"
)

type RoomTypeHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	uploader *storage.Uploader
}

func NewRoomTypeHandler(db *gorm.DB, d *audit.Dispatcher, uploader *storage.Uploader) *RoomTypeHandler {
	return &RoomTypeHandler{db: db, audit: d, uploader: uploader}
}

type CreateRoomTypeRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"price_per_day" binding:"required,gt=0"`
	Capacity    int     `json:"capacity" binding:"omitempty,min=1"`
}

// UpdateRoomTypeRequest leaves zero-valued fields untouched.
type UpdateRoomTypeRequest struct {
	Name        string  `json:"name" binding:"max=100"`
	Description string  `json:"description"`
	PricePerDay float64 `json:"price_per_day" binding:"omitempty,gt=0"`
	Capacity    int     `json:"capacity" binding:"omitempty,min=1"`
}

// images are listed primary first, then in upload order
func withImages(db *gorm.DB) *gorm.DB {
	return db.Order("is_primary DESC, id ASC")
}

func (h *RoomTypeHandler) List(c *gin.Context) {
	var types []models.RoomType
	if err := h.db.
		Preload("Images", withImages).
		Order("price_per_day ASC, id ASC").
		Find(&types).Error; err != nil {

		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, types, int64(len(types)))
}

func (h *RoomTypeHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var rt models.RoomType
	if err := h.db.Preload("Images", withImages).First(&rt, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "room_type_not_found"))
		return
	}

	httpresp.OK(c, rt)
}

func (h *RoomTypeHandler) Create(c *gin.Context) {
	var req CreateRoomTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	var rt models.RoomType
	if err := copier.Copy(&rt, &req); err != nil {
		httperr.FromError(c, err)
		return
	}
	if rt.Capacity == 0 {
		rt.Capacity = 1
	}

	if err := h.db.Create(&rt).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "room_type_created", "room_type", rt.ID, nil)
	httpresp.Created(c, "Room type created", rt)
}

func (h *RoomTypeHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateRoomTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	var rt models.RoomType
	if err := h.db.First(&rt, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "room_type_not_found"))
		return
	}

	if err := copier.CopyWithOption(&rt, &req, copier.Option{IgnoreEmpty: true}); err != nil {
		httperr.FromError(c, err)
		return
	}

	if err := h.db.Omit("Images").Save(&rt).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "room_type_updated", "room_type", rt.ID, nil)
	httpresp.Updated(c, "Room type updated", rt)
}

func (h *RoomTypeHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var rt models.RoomType
	if err := h.db.First(&rt, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "room_type_not_found"))
		return
	}

	var rooms int64
	if err := h.db.Model(&models.Room{}).Where("room_type_id = ?", rt.ID).Count(&rooms).Error; err != nil {
		httperr.FromError(c, err)
		return
	}
	if rooms > 0 {
		httperr.FromError(c, httperr.ErrConflict("room_type_in_use"))
		return
	}

	var images []models.RoomImage
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_type_id = ?", rt.ID).Find(&images).Error; err != nil {
			return err
		}
		if err := tx.Where("room_type_id = ?", rt.ID).Delete(&models.RoomImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&rt).Error
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	for _, img := range images {
		removeObject(c, h.uploader, img.StorageKey)
	}

	record(h.audit, c, "room_type_deleted", "room_type", rt.ID, map[string]any{"name": rt.Name})
	httpresp.Message(c, "Room type deleted")
}
