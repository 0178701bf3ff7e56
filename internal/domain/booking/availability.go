package booking

import (
	"time"

	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
)

type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange truncates both ends to calendar dates and requires
// check-out to be strictly after check-in.
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	r := DateRange{CheckIn: dateOf(checkIn), CheckOut: dateOf(checkOut)}
	if !r.CheckOut.After(r.CheckIn) {
		return DateRange{}, httperr.ErrValidation("invalid_date_range")
	}
	return r, nil
}

// Overlaps is the half-open interval test: [a.in, a.out) and [b.in, b.out)
// intersect unless one ends on or before the other starts.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.CheckIn.Before(other.CheckOut) && r.CheckOut.After(other.CheckIn)
}

// Blocks reports whether an existing booking prevents a new stay in r.
func Blocks(existingStatus Status, existing DateRange, r DateRange) bool {
	return existingStatus.IsActive() && existing.Overlaps(r)
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
