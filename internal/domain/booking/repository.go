package booking

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

// ErrRecordNotFound is returned by repositories for missing rows.
var ErrRecordNotFound = errors.New("record not found")

type ListFilter struct {
	UserID *uint
	Status *Status
	Limit  int
	Offset int
}

type Repository interface {
	// Transaction runs fn against a repository bound to one transaction.
	// Returning an error from fn rolls everything back.
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Cat --------
	GetCat(
		ctx context.Context,
		id uint,
	) (*models.Cat, error)

	// -------- Room --------
	GetRoom(
		ctx context.Context,
		id uint,
	) (*models.Room, error)

	// LockRoom loads the room and its type, holding a row lock on the room
	// until the surrounding transaction ends.
	LockRoom(
		ctx context.Context,
		id uint,
	) (*models.Room, error)

	UpdateRoomStatus(
		ctx context.Context,
		id uint,
		status RoomStatus,
	) error

	// -------- Availability --------
	HasOverlappingBooking(
		ctx context.Context,
		roomID uint,
		r DateRange,
	) (bool, error)

	ListAvailableRooms(
		ctx context.Context,
		r DateRange,
	) ([]models.Room, error)

	// -------- Catalog --------
	FindServices(
		ctx context.Context,
		ids []uint,
	) ([]models.Service, error)

	FindFoods(
		ctx context.Context,
		ids []uint,
	) ([]models.Food, error)

	// -------- Booking --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	CreateBookingServices(
		ctx context.Context,
		items []models.BookingService,
	) error

	CreateBookingFoods(
		ctx context.Context,
		items []models.BookingFood,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// LockBooking loads the bare booking row under a row lock.
	LockBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Booking, int64, error)

	UpdateBookingStatus(
		ctx context.Context,
		id uint,
		status Status,
	) error

	// -------- Cat status --------
	AppendCatStatus(
		ctx context.Context,
		entry *models.CatStatus,
	) error

	// ListCatStatuses returns the timeline newest first.
	ListCatStatuses(
		ctx context.Context,
		bookingID uint,
	) ([]models.CatStatus, error)
}
