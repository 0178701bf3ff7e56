package booking

import (
	"context"

	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/booking"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type GetBookingInput struct {
	BookingID uint
	UserID    uint
	IsAdmin   bool
}

type BookingDetail struct {
	Booking       *models.Booking    `json:"booking"`
	CatStatuses   []models.CatStatus `json:"cat_statuses"`
	CurrentStatus *models.CatStatus  `json:"current_status"`
}

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	in GetBookingInput,
) (*BookingDetail, error) {

	b, err := uc.repo.GetBooking(ctx, in.BookingID)
	if err != nil {
		return nil, notFoundAs(err, "booking_not_found")
	}
	if err := canAccess(b, in.UserID, in.IsAdmin); err != nil {
		return nil, err
	}

	history, err := uc.repo.ListCatStatuses(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.CatStatus{}
	}

	detail := &BookingDetail{
		Booking:     b,
		CatStatuses: history,
	}
	if len(history) > 0 {
		detail.CurrentStatus = &history[0]
	}
	return detail, nil
}

// ListCatStatuses returns a booking's timeline, newest first.
type ListCatStatuses struct {
	repo domain.Repository
}

func NewListCatStatuses(repo domain.Repository) *ListCatStatuses {
	return &ListCatStatuses{repo: repo}
}

func (uc *ListCatStatuses) Execute(
	ctx context.Context,
	bookingID uint,
) ([]models.CatStatus, error) {

	if _, err := uc.repo.GetBooking(ctx, bookingID); err != nil {
		return nil, notFoundAs(err, "booking_not_found")
	}
	return uc.repo.ListCatStatuses(ctx, bookingID)
}
