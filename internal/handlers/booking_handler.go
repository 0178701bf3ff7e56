package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/httpresp"
	"github.com/BruksfildServices01/cat-hotel/internal/middleware"
	ucbooking "github.com/BruksfildServices01/cat-hotel/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	create *ucbooking.CreateBooking
	cancel *ucbooking.CancelBooking
	get    *ucbooking.GetBooking
	list   *ucbooking.ListBookings
}

func NewBookingHandler(
	create *ucbooking.CreateBooking,
	cancel *ucbooking.CancelBooking,
	get *ucbooking.GetBooking,
	list *ucbooking.ListBookings,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		cancel: cancel,
		get:    get,
		list:   list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	RoomID       uint   `json:"room_id" binding:"required"`
	CatID        uint   `json:"cat_id" binding:"required"`
	CheckInDate  string `json:"check_in_date" binding:"required"`  // YYYY-MM-DD
	CheckOutDate string `json:"check_out_date" binding:"required"` // YYYY-MM-DD

	SpecialRequests string `json:"special_requests"`

	// repeated ids raise the quantity of that line
	SelectedServices []uint `json:"selected_services"`
	SelectedFoods    []uint `json:"selected_foods"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}

	b, err := h.create.Execute(
		c.Request.Context(),
		ucbooking.CreateBookingInput{
			UserID:          middleware.UserID(c),
			RoomID:          req.RoomID,
			CatID:           req.CatID,
			CheckInDate:     req.CheckInDate,
			CheckOutDate:    req.CheckOutDate,
			SpecialRequests: req.SpecialRequests,
			ServiceIDs:      req.SelectedServices,
			FoodIDs:         req.SelectedFoods,
		},
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, "Booking created", b)
}

// ======================================================
// LIST (own bookings, newest first)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID := middleware.UserID(c)
	limit, offset := pageParams(c)

	bookings, total, err := h.list.Execute(
		c.Request.Context(),
		ucbooking.ListBookingsInput{
			UserID: &userID,
			Status: c.Query("status"),
			Limit:  limit,
			Offset: offset,
		},
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, bookings, total)
}

// ======================================================
// DETAIL
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	detail, err := h.get.Execute(
		c.Request.Context(),
		ucbooking.GetBookingInput{
			BookingID: id,
			UserID:    middleware.UserID(c),
			IsAdmin:   middleware.IsAdmin(c),
		},
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, detail)
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	b, err := h.cancel.Execute(
		c.Request.Context(),
		ucbooking.CancelBookingInput{
			BookingID: id,
			UserID:    middleware.UserID(c),
			IsAdmin:   middleware.IsAdmin(c),
		},
	)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Updated(c, "Booking cancelled", b)
}
