package booking

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/cat-hotel/internal/audit"
	"github.com/BruksfildServices01/cat-hotel/internal/infra/repository/memory"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

type recordingSink struct {
	mu      sync.Mutex
	actions []string
}

func (s *recordingSink) Name() string { return "recording" }

func (s *recordingSink) Handle(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, ev.Action)
	return nil
}

type fixture struct {
	store *memory.Store
	repo  *memory.BookingRepository
	audit *audit.Dispatcher
	sink  *recordingSink

	owner    models.User
	stranger models.User
	admin    models.User
	cat      models.Cat
	room     models.Room
	grooming models.Service
	salmon   models.Food
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store := memory.NewStore()
	sink := &recordingSink{}
	f := &fixture{
		store: store,
		repo:  memory.NewBookingRepository(store),
		sink:  sink,
		audit: audit.NewDispatcher(log, sink),
	}
	t.Cleanup(f.audit.Close)

	f.owner = store.AddUser(models.User{ID: 1, Name: "Linh", Email: "linh@example.com", Role: models.RoleCustomer})
	f.stranger = store.AddUser(models.User{ID: 2, Name: "Bao", Email: "bao@example.com", Role: models.RoleCustomer})
	f.admin = store.AddUser(models.User{ID: 3, Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin})

	f.cat = store.AddCat(models.Cat{ID: 10, UserID: f.owner.ID, Name: "Miso"})

	rt := store.AddRoomType(models.RoomType{ID: 20, Name: "Deluxe", PricePerDay: 100, Capacity: 1})
	f.room = store.AddRoom(models.Room{ID: 5, RoomNumber: "A105", RoomTypeID: rt.ID, Status: "available"})

	f.grooming = store.AddService(models.Service{ID: 30, Name: "Grooming", Price: 20})
	f.salmon = store.AddFood(models.Food{ID: 40, Name: "Salmon", Price: 10})

	return f
}

// actions drains the dispatcher and returns the dispatched actions.
func (f *fixture) actions() []string {
	f.audit.Close()
	f.sink.mu.Lock()
	defer f.sink.mu.Unlock()
	return append([]string(nil), f.sink.actions...)
}

func (f *fixture) seedBooking(status string, in, out string) models.Booking {
	return f.store.AddBooking(models.Booking{
		UserID:       f.owner.ID,
		RoomID:       f.room.ID,
		CatID:        f.cat.ID,
		CheckInDate:  mustDate(in),
		CheckOutDate: mustDate(out),
		Status:       status,
		TotalPrice:   300,
	})
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}
