package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/catalog"
	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type DeleteService struct {
	repo domain.Repository
}

func NewDeleteService(repo domain.Repository) *DeleteService {
	return &DeleteService{repo: repo}
}

// Execute removes a service nobody has booked. Booked lines keep their
// captured price, so a referenced service cannot go away.
func (uc *DeleteService) Execute(ctx context.Context, id uint) (*models.Service, error) {
	var s *models.Service
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		s, err = tx.GetService(ctx, id)
		if err != nil {
			return notFoundAs(err, "service_not_found")
		}

		used, err := tx.CountServiceUsage(ctx, id)
		if err != nil {
			return err
		}
		if used > 0 {
			return httperr.ErrConflict("service_in_use")
		}

		return tx.DeleteService(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

type DeleteFood struct {
	repo domain.Repository
}

func NewDeleteFood(repo domain.Repository) *DeleteFood {
	return &DeleteFood{repo: repo}
}

func (uc *DeleteFood) Execute(ctx context.Context, id uint) (*models.Food, error) {
	var f *models.Food
	err := uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		var err error
		f, err = tx.GetFood(ctx, id)
		if err != nil {
			return notFoundAs(err, "food_not_found")
		}

		used, err := tx.CountFoodUsage(ctx, id)
		if err != nil {
			return err
		}
		if used > 0 {
			return httperr.ErrConflict("food_in_use")
		}

		return tx.DeleteFood(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}
