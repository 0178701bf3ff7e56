package catalog

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

// ErrRecordNotFound is returned by repositories for missing rows.
var ErrRecordNotFound = errors.New("record not found")

// Repository covers the catalog writes guarded by cross-table rules:
// extras referenced by bookings and the single primary image per room type.
type Repository interface {
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error

	// -------- Services --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// CountServiceUsage counts booking line items referencing the service.
	CountServiceUsage(
		ctx context.Context,
		id uint,
	) (int64, error)

	DeleteService(
		ctx context.Context,
		id uint,
	) error

	// -------- Foods --------
	GetFood(
		ctx context.Context,
		id uint,
	) (*models.Food, error)

	CountFoodUsage(
		ctx context.Context,
		id uint,
	) (int64, error)

	DeleteFood(
		ctx context.Context,
		id uint,
	) error

	// -------- Room images --------

	// LockRoomType loads the room type holding a row lock until the
	// surrounding transaction ends. Every primary-image change takes it.
	LockRoomType(
		ctx context.Context,
		id uint,
	) (*models.RoomType, error)

	CountRoomImages(
		ctx context.Context,
		roomTypeID uint,
	) (int64, error)

	CreateRoomImage(
		ctx context.Context,
		img *models.RoomImage,
	) error

	GetRoomImage(
		ctx context.Context,
		id uint,
	) (*models.RoomImage, error)

	DeleteRoomImage(
		ctx context.Context,
		id uint,
	) error

	// OldestRoomImage returns the lowest-id image of the type.
	OldestRoomImage(
		ctx context.Context,
		roomTypeID uint,
	) (*models.RoomImage, error)

	// SetPrimaryImage flags id and unflags every other image of the type.
	SetPrimaryImage(
		ctx context.Context,
		roomTypeID uint,
		id uint,
	) error

	SetRoomTypeImageURL(
		ctx context.Context,
		roomTypeID uint,
		url string,
	) error
}
