package memory

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/catalog"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type CatalogRepository struct {
	store *Store
	inTx  bool
}

func NewCatalogRepository(store *Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

func (r *CatalogRepository) with(op string, fn func(s *state) error) error {
	return r.store.do(r.inTx, op, fn)
}

func (r *CatalogRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	if r.inTx {
		return fn(r)
	}
	return r.store.begin(func() error {
		return fn(&CatalogRepository{store: r.store, inTx: true})
	})
}

// -------- Services --------

func (r *CatalogRepository) GetService(ctx context.Context, id uint) (*models.Service, error) {
	var out *models.Service
	err := r.with("GetService", func(s *state) error {
		sv, ok := s.services[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		out = &sv
		return nil
	})
	return out, err
}

func (r *CatalogRepository) CountServiceUsage(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.with("CountServiceUsage", func(s *state) error {
		for _, item := range s.bookingServices {
			if item.ServiceID == id {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *CatalogRepository) DeleteService(ctx context.Context, id uint) error {
	return r.with("DeleteService", func(s *state) error {
		if _, ok := s.services[id]; !ok {
			return domain.ErrRecordNotFound
		}
		delete(s.services, id)
		return nil
	})
}

// -------- Foods --------

func (r *CatalogRepository) GetFood(ctx context.Context, id uint) (*models.Food, error) {
	var out *models.Food
	err := r.with("GetFood", func(s *state) error {
		f, ok := s.foods[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		out = &f
		return nil
	})
	return out, err
}

func (r *CatalogRepository) CountFoodUsage(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.with("CountFoodUsage", func(s *state) error {
		for _, item := range s.bookingFoods {
			if item.FoodID == id {
				n++
			}
		}
		return nil
	})
	return n, err
}

func (r *CatalogRepository) DeleteFood(ctx context.Context, id uint) error {
	return r.with("DeleteFood", func(s *state) error {
		if _, ok := s.foods[id]; !ok {
			return domain.ErrRecordNotFound
		}
		delete(s.foods, id)
		return nil
	})
}

// -------- Room images --------

// LockRoomType only loads the row: transactions already run one at a time.
func (r *CatalogRepository) LockRoomType(ctx context.Context, id uint) (*models.RoomType, error) {
	var out *models.RoomType
	err := r.with("LockRoomType", func(s *state) error {
		rt, ok := s.roomTypes[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		out = &rt
		return nil
	})
	return out, err
}

func (r *CatalogRepository) CountRoomImages(ctx context.Context, roomTypeID uint) (int64, error) {
	var n int64
	err := r.with("CountRoomImages", func(s *state) error {
		n = int64(len(imagesOf(s, roomTypeID)))
		return nil
	})
	return n, err
}

func (r *CatalogRepository) CreateRoomImage(ctx context.Context, img *models.RoomImage) error {
	return r.with("CreateRoomImage", func(s *state) error {
		img.ID = s.id()
		if img.CreatedAt.IsZero() {
			img.CreatedAt = r.store.clock()
		}
		s.images[img.ID] = *img
		return nil
	})
}

func (r *CatalogRepository) GetRoomImage(ctx context.Context, id uint) (*models.RoomImage, error) {
	var out *models.RoomImage
	err := r.with("GetRoomImage", func(s *state) error {
		img, ok := s.images[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		out = &img
		return nil
	})
	return out, err
}

func (r *CatalogRepository) DeleteRoomImage(ctx context.Context, id uint) error {
	return r.with("DeleteRoomImage", func(s *state) error {
		if _, ok := s.images[id]; !ok {
			return domain.ErrRecordNotFound
		}
		delete(s.images, id)
		return nil
	})
}

func (r *CatalogRepository) OldestRoomImage(ctx context.Context, roomTypeID uint) (*models.RoomImage, error) {
	var out *models.RoomImage
	err := r.with("OldestRoomImage", func(s *state) error {
		images := imagesOf(s, roomTypeID)
		if len(images) == 0 {
			return domain.ErrRecordNotFound
		}
		out = &images[0]
		return nil
	})
	return out, err
}

func (r *CatalogRepository) SetPrimaryImage(ctx context.Context, roomTypeID, id uint) error {
	return r.with("SetPrimaryImage", func(s *state) error {
		if img, ok := s.images[id]; !ok || img.RoomTypeID != roomTypeID {
			return domain.ErrRecordNotFound
		}
		for k, img := range s.images {
			if img.RoomTypeID != roomTypeID {
				continue
			}
			img.IsPrimary = k == id
			s.images[k] = img
		}
		return nil
	})
}

func (r *CatalogRepository) SetRoomTypeImageURL(ctx context.Context, roomTypeID uint, url string) error {
	return r.with("SetRoomTypeImageURL", func(s *state) error {
		rt, ok := s.roomTypes[roomTypeID]
		if !ok {
			return domain.ErrRecordNotFound
		}
		rt.ImageURL = url
		s.roomTypes[roomTypeID] = rt
		return nil
	})
}

func imagesOf(s *state, roomTypeID uint) []models.RoomImage {
	var out []models.RoomImage
	for _, img := range s.images {
		if img.RoomTypeID == roomTypeID {
			out = append(out, img)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var _ domain.Repository = (*CatalogRepository)(nil)
