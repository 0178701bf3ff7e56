package booking

import (
	"context"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/booking"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type CancelBookingInput struct {
	BookingID uint
	UserID    uint
	IsAdmin   bool
}

type CancelBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelBooking {
	return &CancelBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels a pending or confirmed booking. The room is untouched:
// it was never marked occupied for a stay that did not start.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	in CancelBookingInput,
) (*models.Booking, error) {

	var from domain.Status
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		b, err := tx.LockBooking(ctx, in.BookingID)
		if err != nil {
			return notFoundAs(err, "booking_not_found")
		}
		if err := canAccess(b, in.UserID, in.IsAdmin); err != nil {
			return err
		}

		from = domain.Status(b.Status)
		if err := domain.CanCancel(from); err != nil {
			return err
		}

		return tx.UpdateBookingStatus(ctx, b.ID, domain.StatusCancelled)
	})
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(bookingEvent(b, in.UserID, "booking_cancelled", from))

	return b, nil
}
