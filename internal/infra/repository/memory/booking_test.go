package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/cat-hotel/internal/domain/booking"
	"github.com/BruksfildServices01/cat-hotel/internal/models"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestTransactionRollsBack(t *testing.T) {
	store := NewStore()
	repo := NewBookingRepository(store)
	ctx := context.Background()

	boom := errors.New("boom")
	err := repo.Transaction(ctx, func(tx domain.Repository) error {
		if err := tx.CreateBooking(ctx, &models.Booking{RoomID: 1, Status: "pending"}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Transaction() error = %v, want %v", err, boom)
	}
	if n := store.BookingCount(); n != 0 {
		t.Errorf("BookingCount() = %d after rollback, want 0", n)
	}

	err = repo.Transaction(ctx, func(tx domain.Repository) error {
		return tx.CreateBooking(ctx, &models.Booking{RoomID: 1, Status: "pending"})
	})
	if err != nil {
		t.Fatalf("Transaction() error = %v", err)
	}
	if n := store.BookingCount(); n != 1 {
		t.Errorf("BookingCount() = %d after commit, want 1", n)
	}
}

func TestListAvailableRooms(t *testing.T) {
	store := NewStore()
	repo := NewBookingRepository(store)

	cheap := store.AddRoomType(models.RoomType{Name: "Standard", PricePerDay: 50})
	suite := store.AddRoomType(models.RoomType{Name: "Suite", PricePerDay: 120})

	r1 := store.AddRoom(models.Room{RoomNumber: "S1", RoomTypeID: suite.ID})
	r2 := store.AddRoom(models.Room{RoomNumber: "C1", RoomTypeID: cheap.ID})
	r3 := store.AddRoom(models.Room{RoomNumber: "C2", RoomTypeID: cheap.ID})
	store.AddRoom(models.Room{RoomNumber: "C3", RoomTypeID: cheap.ID, Status: "maintenance"})

	store.AddBooking(models.Booking{RoomID: r3.ID, Status: "confirmed", CheckInDate: date("2024-01-01"), CheckOutDate: date("2024-01-04")})
	store.AddBooking(models.Booking{RoomID: r2.ID, Status: "cancelled", CheckInDate: date("2024-01-01"), CheckOutDate: date("2024-01-04")})

	dr, _ := domain.NewDateRange(date("2024-01-02"), date("2024-01-03"))
	rooms, err := repo.ListAvailableRooms(context.Background(), dr)
	if err != nil {
		t.Fatalf("ListAvailableRooms() error = %v", err)
	}

	if len(rooms) != 2 {
		t.Fatalf("ListAvailableRooms() returned %d rooms, want 2", len(rooms))
	}
	if rooms[0].ID != r2.ID || rooms[1].ID != r1.ID {
		t.Errorf("rooms = [%s %s], want [C1 S1]", rooms[0].RoomNumber, rooms[1].RoomNumber)
	}
	if rooms[0].RoomType == nil || rooms[0].RoomType.PricePerDay != 50 {
		t.Error("room type not attached")
	}
}

func TestListCatStatusesNewestFirst(t *testing.T) {
	store := NewStore()
	repo := NewBookingRepository(store)
	ctx := context.Background()

	base := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	for i, st := range []string{"checked_in", "eating", "resting"} {
		entry := &models.CatStatus{BookingID: 9, Status: st, CreatedAt: base.Add(time.Duration(i) * time.Hour)}
		if err := repo.AppendCatStatus(ctx, entry); err != nil {
			t.Fatalf("AppendCatStatus() error = %v", err)
		}
	}

	entries, err := repo.ListCatStatuses(ctx, 9)
	if err != nil {
		t.Fatalf("ListCatStatuses() error = %v", err)
	}
	if len(entries) != 3 || entries[0].Status != "resting" || entries[2].Status != "checked_in" {
		t.Errorf("ListCatStatuses() = %+v, want newest first", entries)
	}
}

func TestFailOn(t *testing.T) {
	store := NewStore()
	repo := NewBookingRepository(store)
	boom := errors.New("disk full")

	store.FailOn("GetCat", boom)
	if _, err := repo.GetCat(context.Background(), 1); !errors.Is(err, boom) {
		t.Errorf("GetCat() error = %v, want %v", err, boom)
	}

	store.FailOn("GetCat", nil)
	if _, err := repo.GetCat(context.Background(), 1); !errors.Is(err, domain.ErrRecordNotFound) {
		t.Errorf("GetCat() error = %v, want ErrRecordNotFound", err)
	}
}
