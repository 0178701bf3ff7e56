package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/httpresp"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
	"github.com/BruksfildServices01/cat-hotel/internal/storage"
	ucCatalog "github.com/BruksfildServices01/cat-hotel/internal/usecase/catalog"
)

const maxUploadBytes = 10 << 20

type RoomImageHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	uploader *storage.Uploader

	add        *ucCatalog.AddRoomImage
	remove     *ucCatalog.RemoveRoomImage
	setPrimary *ucCatalog.SetPrimaryImage
}

func NewRoomImageHandler(
	db *gorm.DB,
	d *audit.Dispatcher,
	uploader *storage.Uploader,
	add *ucCatalog.AddRoomImage,
	remove *ucCatalog.RemoveRoomImage,
	setPrimary *ucCatalog.SetPrimaryImage,
) *RoomImageHandler {
	return &RoomImageHandler{
		db:         db,
		audit:      d,
		uploader:   uploader,
		add:        add,
		remove:     remove,
		setPrimary: setPrimary,
	}
}

// Upload stores the multipart "image" file for room type :id. The first
// image of a type, or one sent with is_primary=true, becomes primary.
func (h *RoomImageHandler) Upload(c *gin.Context) {
	typeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var rt models.RoomType
	if err := h.db.First(&rt, typeID).Error; err != nil {
		httperr.FromError(c, notFound(err, "room_type_not_found"))
		return
	}

	url, key, ok := uploadFormImage(c, h.uploader, fmt.Sprintf("room-types/%d", rt.ID))
	if !ok {
		return
	}

	wantPrimary, _ := strconv.ParseBool(c.PostForm("is_primary"))

	img, err := h.add.Execute(c.Request.Context(), ucCatalog.AddRoomImageInput{
		RoomTypeID: rt.ID,
		ImageURL:   url,
		StorageKey: key,
		Primary:    wantPrimary,
	})
	if err != nil {
		removeObject(c, h.uploader, key)
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "room_image_uploaded", "room_image", img.ID, map[string]any{
		"room_type_id": rt.ID,
		"is_primary":   img.IsPrimary,
	})
	httpresp.Created(c, "Image uploaded", img)
}

func (h *RoomImageHandler) List(c *gin.Context) {
	typeID, ok := paramID(c, "id")
	if !ok {
		return
	}

	var images []models.RoomImage
	if err := withImages(h.db).
		Where("room_type_id = ?", typeID).
		Find(&images).Error; err != nil {

		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, images, int64(len(images)))
}

// Delete removes an image. When it was the primary one, the oldest
// remaining image of the type takes over.
func (h *RoomImageHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	img, err := h.remove.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	removeObject(c, h.uploader, img.StorageKey)

	record(h.audit, c, "room_image_deleted", "room_image", img.ID, map[string]any{"room_type_id": img.RoomTypeID})
	httpresp.Message(c, "Image deleted")
}

func (h *RoomImageHandler) SetPrimary(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	img, err := h.setPrimary.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "room_image_primary_set", "room_image", img.ID, map[string]any{"room_type_id": img.RoomTypeID})
	httpresp.Updated(c, "Primary image updated", img)
}

// uploadFormImage reads the "image" form file, converts and stores it.
func uploadFormImage(c *gin.Context, up *storage.Uploader, folder string) (url, key string, ok bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fh, err := c.FormFile("image")
	if err != nil {
		httperr.FromError(c, httperr.ErrValidation("image_required"))
		return "", "", false
	}

	f, err := fh.Open()
	if err != nil {
		httperr.FromError(c, err)
		return "", "", false
	}
	defer f.Close()

	url, key, err = up.Upload(c.Request.Context(), folder, f)
	if err != nil {
		httperr.FromError(c, err)
		return "", "", false
	}
	return url, key, true
}

// removeObject deletes a stored object; failures only get logged, the
// database row is already gone.
func removeObject(c *gin.Context, up *storage.Uploader, key string) {
	if err := up.Remove(c.Request.Context(), key); err != nil {
		_ = c.Error(fmt.Errorf("remove %s: %w", key, err)).SetType(gin.ErrorTypePrivate)
	}
}
