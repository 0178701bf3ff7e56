package memory

import (
	"context"
	"sort"

	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/booking"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type BookingRepository struct {
	store *Store
	inTx  bool
}

func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

func (r *BookingRepository) with(op string, fn func(s *state) error) error {
	return r.store.do(r.inTx, op, fn)
}

func (r *BookingRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	if r.inTx {
		return fn(r)
	}
	return r.store.begin(func() error {
		return fn(&BookingRepository{store: r.store, inTx: true})
	})
}

func (r *BookingRepository) GetCat(ctx context.Context, id uint) (*models.Cat, error) {
	var out *models.Cat
	err := r.with("GetCat", func(s *state) error {
		c, ok := s.cats[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		out = &c
		return nil
	})
	return out, err
}

func (r *BookingRepository) GetRoom(ctx context.Context, id uint) (*models.Room, error) {
	var out *models.Room
	err := r.with("GetRoom", func(s *state) error {
		room, ok := s.rooms[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		out = withType(s, room)
		return nil
	})
	return out, err
}

func (r *BookingRepository) LockRoom(ctx context.Context, id uint) (*models.Room, error) {
	var out *models.Room
	err := r.with("LockRoom", func(s *state) error {
		room, ok := s.rooms[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		out = withType(s, room)
		return nil
	})
	return out, err
}

func (r *BookingRepository) UpdateRoomStatus(ctx context.Context, id uint, status domain.RoomStatus) error {
	return r.with("UpdateRoomStatus", func(s *state) error {
		room, ok := s.rooms[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		room.Status = string(status)
		s.rooms[id] = room
		return nil
	})
}

func (r *BookingRepository) HasOverlappingBooking(ctx context.Context, roomID uint, dr domain.DateRange) (bool, error) {
	var found bool
	err := r.with("HasOverlappingBooking", func(s *state) error {
		found = roomBusy(s, roomID, dr)
		return nil
	})
	return found, err
}

func (r *BookingRepository) ListAvailableRooms(ctx context.Context, dr domain.DateRange) ([]models.Room, error) {
	var out []models.Room
	err := r.with("ListAvailableRooms", func(s *state) error {
		for _, room := range s.rooms {
			if room.Status != string(domain.RoomAvailable) || roomBusy(s, room.ID, dr) {
				continue
			}
			out = append(out, *withType(s, room))
		}
		sort.Slice(out, func(i, j int) bool {
			pi, pj := out[i].RoomType.PricePerDay, out[j].RoomType.PricePerDay
			if pi != pj {
				return pi < pj
			}
			return out[i].RoomNumber < out[j].RoomNumber
		})
		return nil
	})
	return out, err
}

func (r *BookingRepository) FindServices(ctx context.Context, ids []uint) ([]models.Service, error) {
	var out []models.Service
	err := r.with("FindServices", func(s *state) error {
		for _, id := range ids {
			if sv, ok := s.services[id]; ok {
				out = append(out, sv)
			}
		}
		return nil
	})
	return out, err
}

func (r *BookingRepository) FindFoods(ctx context.Context, ids []uint) ([]models.Food, error) {
	var out []models.Food
	err := r.with("FindFoods", func(s *state) error {
		for _, id := range ids {
			if f, ok := s.foods[id]; ok {
				out = append(out, f)
			}
		}
		return nil
	})
	return out, err
}

func (r *BookingRepository) CreateBooking(ctx context.Context, b *models.Booking) error {
	return r.with("CreateBooking", func(s *state) error {
		b.ID = s.id()
		now := r.store.clock()
		b.CreatedAt, b.UpdatedAt = now, now

		stored := *b
		stored.User, stored.Room, stored.Cat, stored.Services, stored.Foods = nil, nil, nil, nil, nil
		s.bookings[b.ID] = stored
		return nil
	})
}

func (r *BookingRepository) CreateBookingServices(ctx context.Context, items []models.BookingService) error {
	if len(items) == 0 {
		return nil
	}
	return r.with("CreateBookingServices", func(s *state) error {
		for i := range items {
			items[i].ID = s.id()
			stored := items[i]
			stored.Service = nil
			s.bookingServices = append(s.bookingServices, stored)
		}
		return nil
	})
}

func (r *BookingRepository) CreateBookingFoods(ctx context.Context, items []models.BookingFood) error {
	if len(items) == 0 {
		return nil
	}
	return r.with("CreateBookingFoods", func(s *state) error {
		for i := range items {
			items[i].ID = s.id()
			stored := items[i]
			stored.Food = nil
			s.bookingFoods = append(s.bookingFoods, stored)
		}
		return nil
	})
}

func (r *BookingRepository) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var out *models.Booking
	err := r.with("GetBooking", func(s *state) error {
		b, ok := s.bookings[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		out = hydrate(s, b)
		return nil
	})
	return out, err
}

func (r *BookingRepository) LockBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var out *models.Booking
	err := r.with("LockBooking", func(s *state) error {
		b, ok := s.bookings[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		out = &b
		return nil
	})
	return out, err
}

func (r *BookingRepository) ListBookings(ctx context.Context, f domain.ListFilter) ([]models.Booking, int64, error) {
	var out []models.Booking
	var total int64
	err := r.with("ListBookings", func(s *state) error {
		var matched []models.Booking
		for _, b := range s.bookings {
			if f.UserID != nil && b.UserID != *f.UserID {
				continue
			}
			if f.Status != nil && b.Status != string(*f.Status) {
				continue
			}
			matched = append(matched, b)
		}
		sort.Slice(matched, func(i, j int) bool {
			if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
				return matched[i].CreatedAt.After(matched[j].CreatedAt)
			}
			return matched[i].ID > matched[j].ID
		})

		total = int64(len(matched))
		if f.Limit > 0 {
			start := min(f.Offset, len(matched))
			end := min(start+f.Limit, len(matched))
			matched = matched[start:end]
		}
		for _, b := range matched {
			out = append(out, *hydrate(s, b))
		}
		return nil
	})
	return out, total, err
}

func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, id uint, status domain.Status) error {
	return r.with("UpdateBookingStatus", func(s *state) error {
		b, ok := s.bookings[id]
		if !ok {
			return domain.ErrRecordNotFound
		}
		b.Status = string(status)
		b.UpdatedAt = r.store.clock()
		s.bookings[id] = b
		return nil
	})
}

func (r *BookingRepository) AppendCatStatus(ctx context.Context, entry *models.CatStatus) error {
	return r.with("AppendCatStatus", func(s *state) error {
		entry.ID = s.id()
		if entry.CreatedAt.IsZero() {
			entry.CreatedAt = r.store.clock()
		}
		s.catStatuses = append(s.catStatuses, *entry)
		return nil
	})
}

func (r *BookingRepository) ListCatStatuses(ctx context.Context, bookingID uint) ([]models.CatStatus, error) {
	var out []models.CatStatus
	err := r.with("ListCatStatuses", func(s *state) error {
		out = catStatusesOf(s, bookingID)
		return nil
	})
	return out, err
}

// -------- helpers --------

func roomBusy(s *state, roomID uint, dr domain.DateRange) bool {
	for _, b := range s.bookings {
		if b.RoomID != roomID {
			continue
		}
		existing := domain.DateRange{CheckIn: b.CheckInDate, CheckOut: b.CheckOutDate}
		if domain.Blocks(domain.Status(b.Status), existing, dr) {
			return true
		}
	}
	return false
}

func withType(s *state, room models.Room) *models.Room {
	if rt, ok := s.roomTypes[room.RoomTypeID]; ok {
		room.RoomType = &rt
	}
	return &room
}

func hydrate(s *state, b models.Booking) *models.Booking {
	if u, ok := s.users[b.UserID]; ok {
		b.User = &u
	}
	if room, ok := s.rooms[b.RoomID]; ok {
		b.Room = withType(s, room)
	}
	if c, ok := s.cats[b.CatID]; ok {
		b.Cat = &c
	}

	b.Services = nil
	for _, item := range s.bookingServices {
		if item.BookingID != b.ID {
			continue
		}
		if sv, ok := s.services[item.ServiceID]; ok {
			item.Service = &sv
		}
		b.Services = append(b.Services, item)
	}

	b.Foods = nil
	for _, item := range s.bookingFoods {
		if item.BookingID != b.ID {
			continue
		}
		if f, ok := s.foods[item.FoodID]; ok {
			item.Food = &f
		}
		b.Foods = append(b.Foods, item)
	}

	return &b
}

func catStatusesOf(s *state, bookingID uint) []models.CatStatus {
	var out []models.CatStatus
	for _, cs := range s.catStatuses {
		if cs.BookingID == bookingID {
			out = append(out, cs)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

var _ domain.Repository = (*BookingRepository)(nil)
