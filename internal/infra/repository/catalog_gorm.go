package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	catalog "github.com/BruksfildServices01/cat-hotel/internal/domain/catalog"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

func (r *CatalogGormRepository) Transaction(
	ctx context.Context,
	fn func(tx catalog.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CatalogGormRepository{db: tx})
	})
}

func catalogNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalog.ErrRecordNotFound
	}
	return err
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *CatalogGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var s models.Service
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, catalogNotFound(err)
	}
	return &s, nil
}

func (r *CatalogGormRepository) CountServiceUsage(
	ctx context.Context,
	id uint,
) (int64, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.BookingService{}).
		Where("service_id = ?", id).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count service %d usage: %w", id, err)
	}
	return n, nil
}

func (r *CatalogGormRepository) DeleteService(
	ctx context.Context,
	id uint,
) error {
	if err := r.db.WithContext(ctx).Delete(&models.Service{}, id).Error; err != nil {
		return fmt.Errorf("delete service %d: %w", id, err)
	}
	return nil
}

// --------------------------------------------------
// Foods
// --------------------------------------------------

func (r *CatalogGormRepository) GetFood(
	ctx context.Context,
	id uint,
) (*models.Food, error) {

	var f models.Food
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, catalogNotFound(err)
	}
	return &f, nil
}

func (r *CatalogGormRepository) CountFoodUsage(
	ctx context.Context,
	id uint,
) (int64, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.BookingFood{}).
		Where("food_id = ?", id).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count food %d usage: %w", id, err)
	}
	return n, nil
}

func (r *CatalogGormRepository) DeleteFood(
	ctx context.Context,
	id uint,
) error {
	if err := r.db.WithContext(ctx).Delete(&models.Food{}, id).Error; err != nil {
		return fmt.Errorf("delete food %d: %w", id, err)
	}
	return nil
}

// --------------------------------------------------
// Room images
// --------------------------------------------------

func (r *CatalogGormRepository) LockRoomType(
	ctx context.Context,
	id uint,
) (*models.RoomType, error) {

	var rt models.RoomType
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&rt, id).Error; err != nil {
		return nil, catalogNotFound(err)
	}
	return &rt, nil
}

func (r *CatalogGormRepository) CountRoomImages(
	ctx context.Context,
	roomTypeID uint,
) (int64, error) {

	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.RoomImage{}).
		Where("room_type_id = ?", roomTypeID).
		Count(&n).Error; err != nil {
		return 0, fmt.Errorf("count room images: %w", err)
	}
	return n, nil
}

func (r *CatalogGormRepository) CreateRoomImage(
	ctx context.Context,
	img *models.RoomImage,
) error {
	if err := r.db.WithContext(ctx).Create(img).Error; err != nil {
		return fmt.Errorf("create room image: %w", err)
	}
	return nil
}

func (r *CatalogGormRepository) GetRoomImage(
	ctx context.Context,
	id uint,
) (*models.RoomImage, error) {

	var img models.RoomImage
	if err := r.db.WithContext(ctx).First(&img, id).Error; err != nil {
		return nil, catalogNotFound(err)
	}
	return &img, nil
}

func (r *CatalogGormRepository) DeleteRoomImage(
	ctx context.Context,
	id uint,
) error {
	if err := r.db.WithContext(ctx).Delete(&models.RoomImage{}, id).Error; err != nil {
		return fmt.Errorf("delete room image %d: %w", id, err)
	}
	return nil
}

func (r *CatalogGormRepository) OldestRoomImage(
	ctx context.Context,
	roomTypeID uint,
) (*models.RoomImage, error) {

	var img models.RoomImage
	if err := r.db.WithContext(ctx).
		Where("room_type_id = ?", roomTypeID).
		Order("id ASC").
		First(&img).Error; err != nil {
		return nil, catalogNotFound(err)
	}
	return &img, nil
}

// SetPrimaryImage clears the other flags before setting id, so the partial
// unique index on primary images never sees two.
func (r *CatalogGormRepository) SetPrimaryImage(
	ctx context.Context,
	roomTypeID uint,
	id uint,
) error {
	db := r.db.WithContext(ctx)

	if err := db.Model(&models.RoomImage{}).
		Where("room_type_id = ? AND id <> ? AND is_primary", roomTypeID, id).
		Update("is_primary", false).Error; err != nil {
		return fmt.Errorf("clear primary images: %w", err)
	}

	res := db.Model(&models.RoomImage{}).
		Where("id = ? AND room_type_id = ?", id, roomTypeID).
		Update("is_primary", true)
	if res.Error != nil {
		return fmt.Errorf("set primary image %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return catalog.ErrRecordNotFound
	}
	return nil
}

func (r *CatalogGormRepository) SetRoomTypeImageURL(
	ctx context.Context,
	roomTypeID uint,
	url string,
) error {
	if err := r.db.WithContext(ctx).
		Model(&models.RoomType{}).
		Where("id = ?", roomTypeID).
		Update("image_url", url).Error; err != nil {
		return fmt.Errorf("set room type %d image: %w", roomTypeID, err)
	}
	return nil
}

var _ catalog.Repository = (*CatalogGormRepository)(nil)
