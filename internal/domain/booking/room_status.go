package booking

import "github.com/BruksfildServices01/cat-hotel/internal/httperr"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

func ParseRoomStatus(s string) (RoomStatus, error) {
	switch st := RoomStatus(s); st {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return st, nil
	}
	return "", httperr.ErrValidation("invalid_status")
}

func (s RoomStatus) String() string {
	return string(s)
}
