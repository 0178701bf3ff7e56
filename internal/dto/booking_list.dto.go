package dto

import (
	"github.com/BruksfildServices01/cat-hotel/internal/models"
	"github.com/BruksfildServices01/cat-hotel/internal/timezone"
)

// BookingListDTO is the row shown in the staff booking table.
type BookingListDTO struct {
	ID           uint    `json:"id"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Status       string  `json:"status"`
	TotalPrice   float64 `json:"total_price"`
	RoomNumber   string  `json:"room_number"`
	CatName      string  `json:"cat_name"`
	OwnerName    string  `json:"owner_name"`
	OwnerEmail   string  `json:"owner_email"`
}

func NewBookingList(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		row := BookingListDTO{
			ID:           b.ID,
			CheckInDate:  timezone.FormatDate(b.CheckInDate),
			CheckOutDate: timezone.FormatDate(b.CheckOutDate),
			Status:       b.Status,
			TotalPrice:   b.TotalPrice,
		}
		if b.Room != nil {
			row.RoomNumber = b.Room.RoomNumber
		}
		if b.Cat != nil {
			row.CatName = b.Cat.Name
		}
		if b.User != nil {
			row.OwnerName = b.User.Name
			row.OwnerEmail = b.User.Email
		}
		out = append(out, row)
	}
	return out
}
