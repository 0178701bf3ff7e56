package booking

import (
	"context"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/booking"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type UpdateBookingStatusInput struct {
	BookingID uint
	Status    string
	ActorID   uint
}

type UpdateBookingStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBookingStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBookingStatus {
	return &UpdateBookingStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute moves a booking along the transition table. The status write and
// its room / cat-status cascade commit together.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	in UpdateBookingStatusInput,
) (*models.Booking, error) {

	next, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	var from domain.Status
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		b, err := tx.LockBooking(ctx, in.BookingID)
		if err != nil {
			return notFoundAs(err, "booking_not_found")
		}

		from = domain.Status(b.Status)
		if err := domain.CanTransition(from, next); err != nil {
			return err
		}

		return applyTransition(ctx, tx, b, from, next)
	})
	if err != nil {
		return nil, err
	}

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(bookingEvent(b, in.ActorID, statusAction(next), from))

	return b, nil
}

// applyTransition writes the new status and its cascade inside tx.
func applyTransition(
	ctx context.Context,
	tx domain.Repository,
	b *models.Booking,
	from domain.Status,
	next domain.Status,
) error {

	if err := tx.UpdateBookingStatus(ctx, b.ID, next); err != nil {
		return err
	}

	cascade := domain.CascadeFor(next)
	if cascade.Room != "" {
		if err := tx.UpdateRoomStatus(ctx, b.RoomID, cascade.Room); err != nil {
			return notFoundAs(err, "room_not_found")
		}
	}

	if cascade.PetStatus == "" {
		return nil
	}

	// re-applying checkout keeps a single terminal entry
	if from == next {
		history, err := tx.ListCatStatuses(ctx, b.ID)
		if err != nil {
			return err
		}
		if len(history) > 0 && history[0].Status == string(cascade.PetStatus) {
			return nil
		}
	}

	return tx.AppendCatStatus(ctx, &models.CatStatus{
		BookingID: b.ID,
		Status:    string(cascade.PetStatus),
		Notes:     cascade.PetStatus.DefaultNote(),
	})
}
