package booking

import "github.com/BruksfildServices01/cat-hotel/internal/httperr"

// PetStatus is one entry of a cat's in-stay timeline.
type PetStatus string

const (
	PetCheckedIn  PetStatus = "checked_in"
	PetInCare     PetStatus = "in_care"
	PetResting    PetStatus = "resting"
	PetPlaying    PetStatus = "playing"
	PetEating     PetStatus = "eating"
	PetCheckedOut PetStatus = "checked_out"
)

const (
	NoteCheckedIn  = "Cat checked in to the hotel"
	NoteCheckedOut = "Cat left the hotel"
)

func ParsePetStatus(s string) (PetStatus, error) {
	switch st := PetStatus(s); st {
	case PetCheckedIn, PetInCare, PetResting, PetPlaying, PetEating, PetCheckedOut:
		return st, nil
	}
	return "", httperr.ErrValidation("invalid_status")
}

func (s PetStatus) String() string {
	return string(s)
}

// DefaultNote is the note used when an entry is recorded without one.
func (s PetStatus) DefaultNote() string {
	switch s {
	case PetCheckedIn:
		return NoteCheckedIn
	case PetCheckedOut:
		return NoteCheckedOut
	}
	return ""
}

// CanRecordPetStatus checks a timeline entry against the booking status.
// A checked_out entry closes the stay even if the booking itself lags
// behind, but never for a booking that was not yet confirmed or was
// cancelled.
func CanRecordPetStatus(current Status, next PetStatus) error {
	if next == PetCheckedOut {
		switch current {
		case StatusConfirmed, StatusCheckedIn, StatusCheckedOut:
			return nil
		}
		return httperr.ErrConflict("invalid_transition")
	}

	if current != StatusCheckedIn {
		return httperr.ErrConflict("booking_not_checked_in")
	}
	return nil
}
