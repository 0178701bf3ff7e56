// Package memory is an in-process implementation of the booking and catalog
// repositories.
// Transactions are serialized and roll back by restoring a snapshot.
package memory

import (
	"sync"
	"time"

	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type state struct {
	nextID uint

	users     map[uint]models.User
	cats      map[uint]models.Cat
	roomTypes map[uint]models.RoomType
	images    map[uint]models.RoomImage
	rooms     map[uint]models.Room
	services  map[uint]models.Service
	foods     map[uint]models.Food
	bookings  map[uint]models.Booking

	bookingServices []models.BookingService
	bookingFoods    []models.BookingFood
	catStatuses     []models.CatStatus
}

func newState() *state {
	return &state{
		users:     map[uint]models.User{},
		cats:      map[uint]models.Cat{},
		roomTypes: map[uint]models.RoomType{},
		images:    map[uint]models.RoomImage{},
		rooms:     map[uint]models.Room{},
		services:  map[uint]models.Service{},
		foods:     map[uint]models.Food{},
		bookings:  map[uint]models.Booking{},
	}
}

func (s *state) id() uint {
	s.nextID++
	return s.nextID
}

// claim returns id, or a fresh one when id is zero, keeping later ids unique.
func (s *state) claim(id uint) uint {
	if id == 0 {
		return s.id()
	}
	if id > s.nextID {
		s.nextID = id
	}
	return id
}

func (s *state) clone() *state {
	c := newState()
	c.nextID = s.nextID
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.cats {
		c.cats[k] = v
	}
	for k, v := range s.roomTypes {
		c.roomTypes[k] = v
	}
	for k, v := range s.images {
		c.images[k] = v
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.services {
		c.services[k] = v
	}
	for k, v := range s.foods {
		c.foods[k] = v
	}
	for k, v := range s.bookings {
		c.bookings[k] = v
	}
	c.bookingServices = append([]models.BookingService(nil), s.bookingServices...)
	c.bookingFoods = append([]models.BookingFood(nil), s.bookingFoods...)
	c.catStatuses = append([]models.CatStatus(nil), s.catStatuses...)
	return c
}

// Store holds the data shared by every repository built on it.
type Store struct {
	mu    sync.Mutex
	data  *state
	fail  map[string]error
	clock func() time.Time
}

func NewStore() *Store {
	return &Store{
		data:  newState(),
		fail:  map[string]error{},
		clock: time.Now,
	}
}

// do runs fn on the current data, taking the store lock unless the caller
// already holds it inside a transaction.
func (s *Store) do(held bool, op string, fn func(d *state) error) error {
	if !held {
		s.mu.Lock()
		defer s.mu.Unlock()
	}
	if err := s.fail[op]; err != nil {
		return err
	}
	return fn(s.data)
}

// begin runs fn holding the store lock and restores the data taken before
// it when fn fails.
func (s *Store) begin(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fail["Transaction"]; err != nil {
		return err
	}

	snapshot := s.data.clone()
	if err := fn(); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

// FailOn makes the named repository operation return err until cleared
// with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.fail, op)
		return
	}
	s.fail[op] = err
}

func (s *Store) SetClock(clock func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
}

// -------- Seeding --------

func (s *Store) AddUser(u models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u.ID = s.data.claim(u.ID)
	s.data.users[u.ID] = u
	return u
}

func (s *Store) AddCat(c models.Cat) models.Cat {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.data.claim(c.ID)
	s.data.cats[c.ID] = c
	return c
}

func (s *Store) AddRoomType(rt models.RoomType) models.RoomType {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt.ID = s.data.claim(rt.ID)
	s.data.roomTypes[rt.ID] = rt
	return rt
}

func (s *Store) AddRoomImage(img models.RoomImage) models.RoomImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	img.ID = s.data.claim(img.ID)
	s.data.images[img.ID] = img
	return img
}

func (s *Store) AddRoom(r models.Room) models.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.data.claim(r.ID)
	if r.Status == "" {
		r.Status = "available"
	}
	r.RoomType = nil
	s.data.rooms[r.ID] = r
	return r
}

func (s *Store) AddService(sv models.Service) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv.ID = s.data.claim(sv.ID)
	s.data.services[sv.ID] = sv
	return sv
}

func (s *Store) AddFood(f models.Food) models.Food {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = s.data.claim(f.ID)
	s.data.foods[f.ID] = f
	return f
}

// AddBooking stores a booking as-is, bypassing every rule.
func (s *Store) AddBooking(b models.Booking) models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.data.claim(b.ID)
	if b.CreatedAt.IsZero() {
		b.CreatedAt = s.clock()
	}
	b.User, b.Room, b.Cat, b.Services, b.Foods = nil, nil, nil, nil, nil
	s.data.bookings[b.ID] = b
	return b
}

func (s *Store) AddBookingService(item models.BookingService) models.BookingService {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.data.claim(item.ID)
	item.Service = nil
	s.data.bookingServices = append(s.data.bookingServices, item)
	return item
}

func (s *Store) AddBookingFood(item models.BookingFood) models.BookingFood {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.data.claim(item.ID)
	item.Food = nil
	s.data.bookingFoods = append(s.data.bookingFoods, item)
	return item
}

// -------- Inspection --------

func (s *Store) RoomType(id uint) (models.RoomType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt, ok := s.data.roomTypes[id]
	return rt, ok
}

// RoomImages returns the images of a room type ordered by id.
func (s *Store) RoomImages(roomTypeID uint) []models.RoomImage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return imagesOf(s.data, roomTypeID)
}

func (s *Store) HasService(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data.services[id]
	return ok
}

func (s *Store) HasFood(id uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data.foods[id]
	return ok
}

func (s *Store) Room(id uint) (models.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.data.rooms[id]
	return r, ok
}

func (s *Store) Booking(id uint) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data.bookings[id]
	return b, ok
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.bookings)
}

func (s *Store) LineItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data.bookingServices) + len(s.data.bookingFoods)
}

func (s *Store) CatStatusCount(bookingID uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, cs := range s.data.catStatuses {
		if cs.BookingID == bookingID {
			n++
		}
	}
	return n
}

func (s *Store) UpdateServicePrice(id uint, price float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sv := s.data.services[id]
	sv.Price = price
	s.data.services[id] = sv
}
