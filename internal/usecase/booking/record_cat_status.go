package booking

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/booking"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type RecordCatStatusInput struct {
	BookingID uint
	Status    string
	Notes     string
	ActorID   uint
}

type RecordCatStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRecordCatStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RecordCatStatus {
	return &RecordCatStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute appends a timeline entry. A checked_out entry also closes the
// stay: booking -> checked_out and room -> maintenance, in the same
// transaction as the entry. Closing an already closed stay whose latest
// entry is checked_out returns that entry instead of adding another.
func (uc *RecordCatStatus) Execute(
	ctx context.Context,
	in RecordCatStatusInput,
) (*models.CatStatus, error) {

	status, err := domain.ParsePetStatus(in.Status)
	if err != nil {
		return nil, err
	}

	notes := strings.TrimSpace(in.Notes)
	if notes == "" {
		notes = status.DefaultNote()
	}

	var (
		entry    *models.CatStatus
		from     domain.Status
		appended bool
	)
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		b, err := tx.LockBooking(ctx, in.BookingID)
		if err != nil {
			return notFoundAs(err, "booking_not_found")
		}

		from = domain.Status(b.Status)
		if err := domain.CanRecordPetStatus(from, status); err != nil {
			return err
		}

		if status == domain.PetCheckedOut {
			if err := tx.UpdateBookingStatus(ctx, b.ID, domain.StatusCheckedOut); err != nil {
				return err
			}
			if err := tx.UpdateRoomStatus(ctx, b.RoomID, domain.RoomMaintenance); err != nil {
				return notFoundAs(err, "room_not_found")
			}
		}

		if status == domain.PetCheckedOut && from == domain.StatusCheckedOut {
			history, err := tx.ListCatStatuses(ctx, b.ID)
			if err != nil {
				return err
			}
			if len(history) > 0 && history[0].Status == string(domain.PetCheckedOut) {
				entry = &history[0]
				return nil
			}
		}

		appended = true
		entry = &models.CatStatus{
			BookingID: b.ID,
			Status:    string(status),
			Notes:     notes,
		}
		return tx.AppendCatStatus(ctx, entry)
	})
	if err != nil {
		return nil, err
	}

	if !appended {
		return entry, nil
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "cat_status_recorded",
		Entity:   "cat_status",
		EntityID: &entry.ID,
		Metadata: map[string]any{
			"booking_id": in.BookingID,
			"status":     entry.Status,
		},
	})

	if status == domain.PetCheckedOut && from != domain.StatusCheckedOut {
		if b, err := uc.repo.GetBooking(ctx, in.BookingID); err == nil {
			uc.audit.Dispatch(bookingEvent(b, in.ActorID, statusAction(domain.StatusCheckedOut), from))
		}
	}

	return entry, nil
}
