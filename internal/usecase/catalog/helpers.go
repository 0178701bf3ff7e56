package catalog

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/catalog"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

func notFoundAs(err error, code string) error {
	if errors.Is(err, domain.ErrRecordNotFound) {
		return httperr.ErrNotFound(code)
	}
	return err
}

// makePrimary flags img as the only primary image of its type and mirrors
// its url onto the room type. The caller holds the room type lock.
func makePrimary(ctx context.Context, tx domain.Repository, img *models.RoomImage) error {
	if err := tx.SetPrimaryImage(ctx, img.RoomTypeID, img.ID); err != nil {
		return err
	}
	img.IsPrimary = true
	return tx.SetRoomTypeImageURL(ctx, img.RoomTypeID, img.ImageURL)
}
