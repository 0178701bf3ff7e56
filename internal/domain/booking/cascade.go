package booking

// Cascade describes the room and pet-status writes that accompany a
// booking status change.
type Cascade struct {
	Room      RoomStatus
	PetStatus PetStatus
}

func (c Cascade) IsZero() bool {
	return c.Room == "" && c.PetStatus == ""
}

// CascadeFor returns the side effects of moving a booking into next.
func CascadeFor(next Status) Cascade {
	switch next {
	case StatusCheckedIn:
		return Cascade{Room: RoomOccupied, PetStatus: PetCheckedIn}
	case StatusCheckedOut:
		return Cascade{Room: RoomMaintenance, PetStatus: PetCheckedOut}
	}
	return Cascade{}
}
