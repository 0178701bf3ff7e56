package booking

import "github.com/BruksfildServices01/cat-hotel/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

// validTransitions is the only place booking moves are defined.
// checked_out -> checked_out re-applies the checkout cascade.
var validTransitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {StatusCheckedOut},
	StatusCancelled:  {},
}

// activeStatuses block a room for the dates they cover.
var activeStatuses = []Status{StatusPending, StatusConfirmed, StatusCheckedIn}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", httperr.ErrValidation("invalid_status")
	}
	return st, nil
}

func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

func (s Status) String() string {
	return string(s)
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return s == StatusCheckedOut || s == StatusCancelled
}

// IsActive reports whether a booking in this status holds its room.
func (s Status) IsActive() bool {
	for _, a := range activeStatuses {
		if a == s {
			return true
		}
	}
	return false
}

func ActiveStatuses() []Status {
	out := make([]Status, len(activeStatuses))
	copy(out, activeStatuses)
	return out
}

// ===============================
// Validations
// ===============================

func InitialStatus() Status {
	return StatusPending
}

// CanTransition rejects any move missing from the transition table.
func CanTransition(current, next Status) error {
	if !current.CanTransitionTo(next) {
		return httperr.ErrConflict("invalid_transition")
	}
	return nil
}

// CanCancel allows cancellation from pending or confirmed only.
func CanCancel(current Status) error {
	if !current.CanTransitionTo(StatusCancelled) {
		return httperr.ErrConflict("booking_not_cancellable")
	}
	return nil
}
