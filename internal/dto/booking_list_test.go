package dto

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

func TestNewBookingList(t *testing.T) {
	in := []models.Booking{
		{
			ID:           4,
			CheckInDate:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
			Status:       "confirmed",
			TotalPrice:   360,
			Room:         &models.Room{RoomNumber: "A105"},
			Cat:          &models.Cat{Name: "Miso"},
			User:         &models.User{Name: "Linh", Email: "linh@example.com"},
		},
		{ID: 5, Status: "pending"},
	}

	got := NewBookingList(in)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}

	want := BookingListDTO{
		ID:           4,
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-04",
		Status:       "confirmed",
		TotalPrice:   360,
		RoomNumber:   "A105",
		CatName:      "Miso",
		OwnerName:    "Linh",
		OwnerEmail:   "linh@example.com",
	}
	if got[0] != want {
		t.Errorf("row = %+v, want %+v", got[0], want)
	}
	if got[1].RoomNumber != "" || got[1].CatName != "" {
		t.Errorf("row without relations = %+v", got[1])
	}

	if empty := NewBookingList(nil); empty == nil || len(empty) != 0 {
		t.Errorf("NewBookingList(nil) = %#v, want empty slice", empty)
	}
}
