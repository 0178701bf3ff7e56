package booking

import (
	"context"

	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/booking"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type ListAvailableRooms struct {
	repo domain.Repository
}

func NewListAvailableRooms(repo domain.Repository) *ListAvailableRooms {
	return &ListAvailableRooms{repo: repo}
}

// Execute lists rooms in service with no active booking overlapping the
// stay, cheapest first.
func (uc *ListAvailableRooms) Execute(
	ctx context.Context,
	checkIn string,
	checkOut string,
) ([]models.Room, error) {

	stay, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	rooms, err := uc.repo.ListAvailableRooms(ctx, stay)
	if err != nil {
		return nil, err
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms, nil
}

type RoomAvailability struct {
	RoomID     uint   `json:"room_id"`
	RoomStatus string `json:"room_status"`
	Available  bool   `json:"available"`
	Nights     int    `json:"nights"`
}

type CheckRoomAvailability struct {
	repo domain.Repository
}

func NewCheckRoomAvailability(repo domain.Repository) *CheckRoomAvailability {
	return &CheckRoomAvailability{repo: repo}
}

// Execute reports whether no active booking overlaps the stay. The room's
// own status is returned alongside but does not affect Available.
func (uc *CheckRoomAvailability) Execute(
	ctx context.Context,
	roomID uint,
	checkIn string,
	checkOut string,
) (*RoomAvailability, error) {

	stay, err := parseStay(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	room, err := uc.repo.GetRoom(ctx, roomID)
	if err != nil {
		return nil, notFoundAs(err, "room_not_found")
	}

	busy, err := uc.repo.HasOverlappingBooking(ctx, roomID, stay)
	if err != nil {
		return nil, err
	}

	return &RoomAvailability{
		RoomID:     room.ID,
		RoomStatus: room.Status,
		Available:  !busy,
		Nights:     stay.Nights(),
	}, nil
}
