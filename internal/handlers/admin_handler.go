package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/cat-hotel/internal/dto"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/httpresp"
	"github.com/BruksfildServices01/cat-hotel/internal/middleware"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
	ucbooking "github.com/BruksfildServices01/cat-hotel/internal/usecase/booking"
)

// AdminHandler serves staff views over every customer's data and drives
// the booking lifecycle.
type AdminHandler struct {
	db *gorm.DB

	listBookings    *ucbooking.ListBookings
	updateStatus    *ucbooking.UpdateBookingStatus
	recordCatStatus *ucbooking.RecordCatStatus
	listCatStatuses *ucbooking.ListCatStatuses
}

func NewAdminHandler(
	db *gorm.DB,
	listBookings *ucbooking.ListBookings,
	updateStatus *ucbooking.UpdateBookingStatus,
	recordCatStatus *ucbooking.RecordCatStatus,
	listCatStatuses *ucbooking.ListCatStatuses,
) *AdminHandler {
	return &AdminHandler{
		db:              db,
		listBookings:    listBookings,
		updateStatus:    updateStatus,
		recordCatStatus: recordCatStatus,
		listCatStatuses: listCatStatuses,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RecordCatStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	limit, offset := pageParams(c)

	q := h.db.Model(&models.User{})
	if role := c.Query("role"); role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.FromError(c, err)
		return
	}

	var users []models.User
	if err := q.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error; err != nil {

		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, users, total)
}

func (h *AdminHandler) ListBookings(c *gin.Context) {
	limit, offset := pageParams(c)

	bookings, total, err := h.listBookings.Execute(
		c.Request.Context(),
		ucbooking.ListBookingsInput{
			Status: c.Query("status"),
			Limit:  limit,
			Offset: offset,
		},
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, dto.NewBookingList(bookings), total)
}

func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.updateStatus.Execute(
		c.Request.Context(),
		ucbooking.UpdateBookingStatusInput{
			BookingID: id,
			Status:    req.Status,
			ActorID:   middleware.UserID(c),
		},
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Updated(c, "Booking status updated", b)
}

func (h *AdminHandler) RecordCatStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req RecordCatStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	entry, err := h.recordCatStatus.Execute(
		c.Request.Context(),
		ucbooking.RecordCatStatusInput{
			BookingID: id,
			Status:    req.Status,
			Notes:     req.Notes,
			ActorID:   middleware.UserID(c),
		},
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, "Cat status recorded", entry)
}

func (h *AdminHandler) ListCatStatuses(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	history, err := h.listCatStatuses.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, history, int64(len(history)))
}
