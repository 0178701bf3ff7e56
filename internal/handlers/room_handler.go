package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/booking"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/httpresp"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
	ucbooking "github.com/BruksfildServices01/cat-hotel/internal/usecase/booking"
)

type RoomHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher

	available *ucbooking.ListAvailableRooms
	check     *ucbooking.CheckRoomAvailability
}

func NewRoomHandler(
	db *gorm.DB,
	d *audit.Dispatcher,
	available *ucbooking.ListAvailableRooms,
	check *ucbooking.CheckRoomAvailability,
) *RoomHandler {
	return &RoomHandler{
		db:        db,
		audit:     d,
		available: available,
		check:     check,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRoomRequest struct {
	RoomNumber  string `json:"room_number" binding:"required,max=20"`
	RoomTypeID  uint   `json:"room_type_id" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=available occupied maintenance"`
	Description string `json:"description"`
}

type UpdateRoomRequest struct {
	RoomNumber  *string `json:"room_number,omitempty" binding:"omitempty,max=20"`
	RoomTypeID  *uint   `json:"room_type_id,omitempty"`
	Description *string `json:"description,omitempty"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *RoomHandler) List(c *gin.Context) {
	q := h.db.Preload("RoomType")
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var rooms []models.Room
	if err := q.Order("room_number ASC").Find(&rooms).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rooms, int64(len(rooms)))
}

// Available lists bookable rooms for ?check_in=&check_out=, cheapest first.
func (h *RoomHandler) Available(c *gin.Context) {
	rooms, err := h.available.Execute(
		c.Request.Context(),
		c.Query("check_in"),
		c.Query("check_out"),
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, rooms, int64(len(rooms)))
}

func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var room models.Room
	if err := h.db.Preload("RoomType").First(&room, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "room_not_found"))
		return
	}

	httpresp.OK(c, room)
}

func (h *RoomHandler) Availability(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	res, err := h.check.Execute(
		c.Request.Context(),
		id,
		c.Query("check_in"),
		c.Query("check_out"),
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// ADMIN
// ======================================================

func (h *RoomHandler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.roomTypeExists(req.RoomTypeID); err != nil {
		httperr.FromError(c, err)
		return
	}

	room := models.Room{
		RoomNumber:  req.RoomNumber,
		RoomTypeID:  req.RoomTypeID,
		Status:      req.Status,
		Description: req.Description,
	}
	if room.Status == "" {
		room.Status = string(domain.RoomAvailable)
	}

	if err := h.db.Create(&room).Error; err != nil {
		httperr.FromError(c, roomWriteError(err))
		return
	}

	record(h.audit, c, "room_created", "room", room.ID, map[string]any{"room_number": room.RoomNumber})
	httpresp.Created(c, "Room created", room)
}

func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	var room models.Room
	if err := h.db.First(&room, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "room_not_found"))
		return
	}

	if req.RoomNumber != nil {
		room.RoomNumber = *req.RoomNumber
	}
	if req.RoomTypeID != nil {
		if err := h.roomTypeExists(*req.RoomTypeID); err != nil {
			httperr.FromError(c, err)
			return
		}
		room.RoomTypeID = *req.RoomTypeID
	}
	if req.Description != nil {
		room.Description = *req.Description
	}

	if err := h.db.Omit("RoomType").Save(&room).Error; err != nil {
		httperr.FromError(c, roomWriteError(err))
		return
	}

	record(h.audit, c, "room_updated", "room", room.ID, nil)
	httpresp.Updated(c, "Room updated", room)
}

// UpdateStatus sets the room status by hand, e.g. back to available once
// cleaning after a checkout is done.
func (h *RoomHandler) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateRoomStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	status, err := domain.ParseRoomStatus(req.Status)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	var room models.Room
	if err := h.db.First(&room, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "room_not_found"))
		return
	}

	from := room.Status
	if err := h.db.Model(&room).Update("status", string(status)).Error; err != nil {
		httperr.FromError(c, err)
		return
	}
	room.Status = string(status)

	record(h.audit, c, "room_status_changed", "room", room.ID, map[string]any{
		"from":   from,
		"status": status,
	})
	httpresp.Updated(c, "Room status updated", room)
}

func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var room models.Room
	if err := h.db.First(&room, id).Error; err != nil {
		httperr.FromError(c, notFound(err, "room_not_found"))
		return
	}

	var bookings int64
	if err := h.db.Model(&models.Booking{}).Where("room_id = ?", room.ID).Count(&bookings).Error; err != nil {
		httperr.FromError(c, err)
		return
	}
	if bookings > 0 {
		httperr.FromError(c, httperr.ErrConflict("room_has_bookings"))
		return
	}

	if err := h.db.Delete(&room).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	record(h.audit, c, "room_deleted", "room", room.ID, map[string]any{"room_number": room.RoomNumber})
	httpresp.Message(c, "Room deleted")
}

func (h *RoomHandler) roomTypeExists(id uint) error {
	var rt models.RoomType
	if err := h.db.Select("id").First(&rt, id).Error; err != nil {
		return notFound(err, "room_type_not_found")
	}
	return nil
}

func roomWriteError(err error) error {
	if httperr.IsUniqueViolation(err) {
		return httperr.ErrConflict("room_number_exists")
	}
	return err
}
