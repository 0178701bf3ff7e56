package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
)

func TestCancelBooking(t *testing.T) {
	tests := []struct {
		status string
		code   string
	}{
		{"pending", ""},
		{"confirmed", ""},
		{"checked_in", "booking_not_cancellable"},
		{"checked_out", "booking_not_cancellable"},
		{"cancelled", "booking_not_cancellable"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			f := newFixture(t)
			_ = f.repo.UpdateRoomStatus(context.Background(), f.room.ID, "occupied")
			seeded := f.seedBooking(tt.status, "2024-01-01", "2024-01-04")

			b, err := NewCancelBooking(f.repo, f.audit).Execute(context.Background(), CancelBookingInput{
				BookingID: seeded.ID,
				UserID:    f.owner.ID,
			})

			stored, _ := f.store.Booking(seeded.ID)
			room, _ := f.store.Room(f.room.ID)
			if room.Status != "occupied" {
				t.Errorf("room status = %q, want unchanged", room.Status)
			}

			if tt.code != "" {
				if !httperr.IsBusiness(err, tt.code) {
					t.Fatalf("Execute() error = %v, want %s", err, tt.code)
				}
				if kind, _ := httperr.KindOf(err); kind != httperr.KindConflict {
					t.Errorf("kind = %v, want conflict", kind)
				}
				if stored.Status != tt.status {
					t.Errorf("stored status = %q, want %q", stored.Status, tt.status)
				}
				return
			}

			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if b.Status != "cancelled" || stored.Status != "cancelled" {
				t.Errorf("status = %q / %q, want cancelled", b.Status, stored.Status)
			}
		})
	}
}

func TestCancelBookingAccess(t *testing.T) {
	f := newFixture(t)
	seeded := f.seedBooking("pending", "2024-01-01", "2024-01-04")
	uc := NewCancelBooking(f.repo, f.audit)

	_, err := uc.Execute(context.Background(), CancelBookingInput{BookingID: seeded.ID, UserID: f.stranger.ID})
	if !httperr.IsBusiness(err, "forbidden") {
		t.Fatalf("stranger cancel error = %v, want forbidden", err)
	}

	_, err = uc.Execute(context.Background(), CancelBookingInput{BookingID: 999, UserID: f.owner.ID})
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("missing booking error = %v, want booking_not_found", err)
	}

	if _, err := uc.Execute(context.Background(), CancelBookingInput{BookingID: seeded.ID, UserID: f.admin.ID, IsAdmin: true}); err != nil {
		t.Fatalf("admin cancel error = %v", err)
	}
}

func TestUpdateBookingStatusCascades(t *testing.T) {
	f := newFixture(t)
	seeded := f.seedBooking("pending", "2024-01-01", "2024-01-04")
	uc := NewUpdateBookingStatus(f.repo, f.audit)
	ctx := context.Background()

	steps := []struct {
		status      string
		room        string
		catStatuses int
	}{
		{"confirmed", "available", 0},
		{"checked_in", "occupied", 1},
		{"checked_out", "maintenance", 2},
		// re-applying checkout keeps the terminal values without a duplicate entry
		{"checked_out", "maintenance", 2},
	}

	for _, step := range steps {
		b, err := uc.Execute(ctx, UpdateBookingStatusInput{BookingID: seeded.ID, Status: step.status, ActorID: f.admin.ID})
		if err != nil {
			t.Fatalf("-> %s: error = %v", step.status, err)
		}
		if b.Status != step.status {
			t.Errorf("-> %s: booking status = %q", step.status, b.Status)
		}
		room, _ := f.store.Room(f.room.ID)
		if room.Status != step.room {
			t.Errorf("-> %s: room status = %q, want %q", step.status, room.Status, step.room)
		}
		if n := f.store.CatStatusCount(seeded.ID); n != step.catStatuses {
			t.Errorf("-> %s: cat statuses = %d, want %d", step.status, n, step.catStatuses)
		}
	}

	history, _ := f.repo.ListCatStatuses(ctx, seeded.ID)
	if history[0].Status != "checked_out" || history[0].Notes != "Cat left the hotel" {
		t.Errorf("latest entry = %+v, want checkout note", history[0])
	}
	if history[1].Status != "checked_in" || history[1].Notes != "Cat checked in to the hotel" {
		t.Errorf("first entry = %+v, want check-in note", history[1])
	}

	want := []string{"booking_confirmed", "booking_checked_in", "booking_checked_out", "booking_checked_out"}
	got := f.actions()
	if len(got) != len(want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("actions[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestUpdateBookingStatusRejectsIllegalMoves(t *testing.T) {
	tests := []struct {
		from, to string
		code     string
	}{
		{"pending", "checked_in", "invalid_transition"},
		{"pending", "checked_out", "invalid_transition"},
		{"confirmed", "pending", "invalid_transition"},
		{"checked_in", "cancelled", "invalid_transition"},
		{"cancelled", "confirmed", "invalid_transition"},
		{"checked_out", "available", "invalid_status"},
		{"pending", "", "invalid_status"},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			f := newFixture(t)
			seeded := f.seedBooking(tt.from, "2024-01-01", "2024-01-04")

			_, err := NewUpdateBookingStatus(f.repo, f.audit).Execute(context.Background(), UpdateBookingStatusInput{
				BookingID: seeded.ID,
				Status:    tt.to,
				ActorID:   f.admin.ID,
			})
			if !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("Execute() error = %v, want %s", err, tt.code)
			}

			stored, _ := f.store.Booking(seeded.ID)
			room, _ := f.store.Room(f.room.ID)
			if stored.Status != tt.from || room.Status != "available" {
				t.Errorf("state changed: booking %q room %q", stored.Status, room.Status)
			}
		})
	}
}

func TestUpdateBookingStatusRollsBackCascade(t *testing.T) {
	f := newFixture(t)
	seeded := f.seedBooking("confirmed", "2024-01-01", "2024-01-04")
	boom := errors.New("insert cat_statuses: timeout")
	f.store.FailOn("AppendCatStatus", boom)

	_, err := NewUpdateBookingStatus(f.repo, f.audit).Execute(context.Background(), UpdateBookingStatusInput{
		BookingID: seeded.ID,
		Status:    "checked_in",
		ActorID:   f.admin.ID,
	})
	if !errors.Is(err, boom) {
		t.Fatalf("Execute() error = %v, want %v", err, boom)
	}

	stored, _ := f.store.Booking(seeded.ID)
	room, _ := f.store.Room(f.room.ID)
	if stored.Status != "confirmed" {
		t.Errorf("booking status = %q, want confirmed after rollback", stored.Status)
	}
	if room.Status != "available" {
		t.Errorf("room status = %q, want available after rollback", room.Status)
	}
}
