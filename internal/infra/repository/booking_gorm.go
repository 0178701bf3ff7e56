package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/booking"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

func (r *BookingGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&BookingGormRepository{db: tx})
	})
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrRecordNotFound
	}
	return err
}

func activeStatuses() []string {
	active := domain.ActiveStatuses()
	out := make([]string, len(active))
	for i, s := range active {
		out[i] = string(s)
	}
	return out
}

// --------------------------------------------------
// Cat
// --------------------------------------------------

func (r *BookingGormRepository) GetCat(
	ctx context.Context,
	id uint,
) (*models.Cat, error) {

	var cat models.Cat
	if err := r.db.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &cat, nil
}

// --------------------------------------------------
// Room
// --------------------------------------------------

func (r *BookingGormRepository) GetRoom(
	ctx context.Context,
	id uint,
) (*models.Room, error) {

	var room models.Room
	if err := r.db.WithContext(ctx).
		Preload("RoomType").
		First(&room, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &room, nil
}

func (r *BookingGormRepository) LockRoom(
	ctx context.Context,
	id uint,
) (*models.Room, error) {

	var room models.Room
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&room, id).Error; err != nil {
		return nil, notFound(err)
	}

	var rt models.RoomType
	if err := r.db.WithContext(ctx).First(&rt, room.RoomTypeID).Error; err != nil {
		return nil, fmt.Errorf("load room type %d: %w", room.RoomTypeID, err)
	}
	room.RoomType = &rt

	return &room, nil
}

func (r *BookingGormRepository) UpdateRoomStatus(
	ctx context.Context,
	id uint,
	status domain.RoomStatus,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Room{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return fmt.Errorf("update room %d status: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) HasOverlappingBooking(
	ctx context.Context,
	roomID uint,
	dr domain.DateRange,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"room_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
			roomID,
			activeStatuses(),
			dr.CheckOut,
			dr.CheckIn,
		).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count overlapping bookings: %w", err)
	}

	return count > 0, nil
}

func (r *BookingGormRepository) ListAvailableRooms(
	ctx context.Context,
	dr domain.DateRange,
) ([]models.Room, error) {

	busy := r.db.
		Model(&models.Booking{}).
		Select("room_id").
		Where(
			"status IN ? AND check_in_date < ? AND check_out_date > ?",
			activeStatuses(),
			dr.CheckOut,
			dr.CheckIn,
		)

	var rooms []models.Room
	if err := r.db.WithContext(ctx).
		Joins("RoomType").
		Where("rooms.status = ?", string(domain.RoomAvailable)).
		Where("rooms.id NOT IN (?)", busy).
		Order(`"RoomType".price_per_day ASC`).
		Order("rooms.room_number ASC").
		Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("list available rooms: %w", err)
	}

	return rooms, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) FindServices(
	ctx context.Context,
	ids []uint,
) ([]models.Service, error) {

	var services []models.Service
	if len(ids) == 0 {
		return services, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&services).Error; err != nil {
		return nil, fmt.Errorf("find services: %w", err)
	}
	return services, nil
}

func (r *BookingGormRepository) FindFoods(
	ctx context.Context,
	ids []uint,
) ([]models.Food, error) {

	var foods []models.Food
	if len(ids) == 0 {
		return foods, nil
	}
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("find foods: %w", err)
	}
	return foods, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(b).Error
	if httperr.IsExclusionConflict(err) {
		return httperr.ErrConflict("room_not_available")
	}
	if err != nil {
		return fmt.Errorf("create booking: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) CreateBookingServices(
	ctx context.Context,
	items []models.BookingService,
) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&items).Error; err != nil {
		return fmt.Errorf("create booking services: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) CreateBookingFoods(
	ctx context.Context,
	items []models.BookingFood,
) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(&items).Error; err != nil {
		return fmt.Errorf("create booking foods: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Room.RoomType").
		Preload("Cat").
		Preload("Services.Service").
		Preload("Foods.Food").
		First(&b, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) LockBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&b, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Booking, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.Booking{})

	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Status != nil {
		q = q.Where("status = ?", string(*f.Status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	var bookings []models.Booking
	q = q.
		Preload("User").
		Preload("Room.RoomType").
		Preload("Cat").
		Order("created_at DESC").
		Order("id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	if err := q.Find(&bookings).Error; err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}

	return bookings, total, nil
}

func (r *BookingGormRepository) UpdateBookingStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", string(status))
	if httperr.IsExclusionConflict(res.Error) {
		return httperr.ErrConflict("room_not_available")
	}
	if res.Error != nil {
		return fmt.Errorf("update booking %d status: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Cat status
// --------------------------------------------------

func (r *BookingGormRepository) AppendCatStatus(
	ctx context.Context,
	entry *models.CatStatus,
) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("append cat status: %w", err)
	}
	return nil
}

func (r *BookingGormRepository) ListCatStatuses(
	ctx context.Context,
	bookingID uint,
) ([]models.CatStatus, error) {

	var entries []models.CatStatus
	if err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list cat statuses: %w", err)
	}
	return entries, nil
}

var _ domain.Repository = (*BookingGormRepository)(nil)
