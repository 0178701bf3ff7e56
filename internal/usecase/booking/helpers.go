package booking

import (
	"errors"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/booking"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
	"github.com/BruksfildServices01/cat-hotel/internal/timezone"
)

// notFoundAs turns a repository miss into a 404 business error with code.
func notFoundAs(err error, code string) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

func parseStay(checkIn, checkOut string) (domain.DateRange, error) {
	in, err := timezone.ParseDate(checkIn)
	if err != nil {
		return domain.DateRange{}, err
	}
	out, err := timezone.ParseDate(checkOut)
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.NewDateRange(in, out)
}

// selection groups repeated ids into quantities, keeping first-seen order.
type selection struct {
	ids []uint
	qty map[uint]int
}

func selectIDs(ids []uint) selection {
	s := selection{qty: map[uint]int{}}
	for _, id := range ids {
		if s.qty[id] == 0 {
			s.ids = append(s.ids, id)
		}
		s.qty[id]++
	}
	return s
}

func canAccess(b *models.Booking, userID uint, isAdmin bool) error {
	if isAdmin || b.UserID == userID {
		return nil
	}
	return httperr.ErrForbidden("forbidden")
}

func bookingMeta(b *models.Booking, from domain.Status) audit.BookingMeta {
	meta := audit.BookingMeta{
		BookingID:  b.ID,
		CheckIn:    timezone.FormatDate(b.CheckInDate),
		CheckOut:   timezone.FormatDate(b.CheckOutDate),
		From:       string(from),
		Status:     b.Status,
		TotalPrice: b.TotalPrice,
	}
	if b.Room != nil {
		meta.RoomNumber = b.Room.RoomNumber
	}
	if b.Cat != nil {
		meta.CatName = b.Cat.Name
	}
	return meta
}

func bookingEvent(b *models.Booking, actorID uint, action string, from domain.Status) audit.Event {
	ev := audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: bookingMeta(b, from),
	}
	if b.User != nil {
		ev.Recipient = b.User.Email
	}
	return ev
}

func statusAction(s domain.Status) string {
	return "booking_" + string(s)
}
