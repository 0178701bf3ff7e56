package booking

import (
	"context"

	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/booking"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

const maxPageSize = 200

type ListBookingsInput struct {
	// UserID restricts the list to one customer; nil lists everyone's.
	UserID *uint
	Status string
	Limit  int
	Offset int
}

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	in ListBookingsInput,
) ([]models.Booking, int64, error) {

	filter := domain.ListFilter{
		UserID: in.UserID,
		Limit:  in.Limit,
		Offset: in.Offset,
	}

	if in.Status != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, 0, err
		}
		filter.Status = &st
	}

	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	return uc.repo.ListBookings(ctx, filter)
}
