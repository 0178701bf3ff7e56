package catalog

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/catalog"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type AddRoomImageInput struct {
	RoomTypeID uint
	ImageURL   string
	StorageKey string
	Primary    bool
}

type AddRoomImage struct {
	repo domain.Repository
}

func NewAddRoomImage(repo domain.Repository) *AddRoomImage {
	return &AddRoomImage{repo: repo}
}

// Execute stores an already uploaded image. The first image of a type, or
// one asked to be primary, becomes the primary one.
func (uc *AddRoomImage) Execute(ctx context.Context, in AddRoomImageInput) (*models.RoomImage, error) {
	img := &models.RoomImage{
		RoomTypeID: in.RoomTypeID,
		ImageURL:   in.ImageURL,
		StorageKey: in.StorageKey,
	}

	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		if _, err := tx.LockRoomType(ctx, in.RoomTypeID); err != nil {
			return notFoundAs(err, "room_type_not_found")
		}

		existing, err := tx.CountRoomImages(ctx, in.RoomTypeID)
		if err != nil {
			return err
		}

		primary := in.Primary || existing == 0
		if err := tx.CreateRoomImage(ctx, img); err != nil {
			return err
		}
		if primary {
			return makePrimary(ctx, tx, img)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

type RemoveRoomImage struct {
	repo domain.Repository
}

func NewRemoveRoomImage(repo domain.Repository) *RemoveRoomImage {
	return &RemoveRoomImage{repo: repo}
}

// Execute deletes the image row and returns it so the caller can drop the
// stored object. A deleted primary hands over to the oldest remaining
// image, or clears the room type's image url when none is left.
func (uc *RemoveRoomImage) Execute(ctx context.Context, id uint) (*models.RoomImage, error) {
	var img *models.RoomImage
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		if img, err = lockedImage(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.DeleteRoomImage(ctx, img.ID); err != nil {
			return err
		}
		if !img.IsPrimary {
			return nil
		}

		next, err := tx.OldestRoomImage(ctx, img.RoomTypeID)
		if errors.Is(err, domain.ErrRecordNotFound) {
			return tx.SetRoomTypeImageURL(ctx, img.RoomTypeID, "")
		}
		if err != nil {
			return err
		}
		return makePrimary(ctx, tx, next)
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

type SetPrimaryImage struct {
	repo domain.Repository
}

func NewSetPrimaryImage(repo domain.Repository) *SetPrimaryImage {
	return &SetPrimaryImage{repo: repo}
}

func (uc *SetPrimaryImage) Execute(ctx context.Context, id uint) (*models.RoomImage, error) {
	var img *models.RoomImage
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		if img, err = lockedImage(ctx, tx, id); err != nil {
			return err
		}
		return makePrimary(ctx, tx, img)
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// lockedImage takes the room type lock first and reloads the image under
// it, so a concurrent change of the same type is seen.
func lockedImage(ctx context.Context, tx domain.Repository, id uint) (*models.RoomImage, error) {
	img, err := tx.GetRoomImage(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "room_image_not_found")
	}
	if _, err := tx.LockRoomType(ctx, img.RoomTypeID); err != nil {
		return nil, notFoundAs(err, "room_type_not_found")
	}
	img, err = tx.GetRoomImage(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "room_image_not_found")
	}
	return img, nil
}
