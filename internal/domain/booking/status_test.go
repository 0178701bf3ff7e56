package booking

import (
	"testing"

	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    Status
		wantErr bool
	}{
		{"pending", StatusPending, false},
		{"confirmed", StatusConfirmed, false},
		{"checked_in", StatusCheckedIn, false},
		{"checked_out", StatusCheckedOut, false},
		{"cancelled", StatusCancelled, false},
		{"CHECKED_IN", "", true},
		{"", "", true},
		{"completed", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseStatus(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if tt.wantErr && !httperr.IsBusiness(err, "invalid_status") {
				t.Errorf("ParseStatus(%q) error = %v, want invalid_status", tt.in, err)
			}
		})
	}
}

func TestCanTransition(t *testing.T) {
	all := []Status{StatusPending, StatusConfirmed, StatusCheckedIn, StatusCheckedOut, StatusCancelled}

	allowed := map[[2]Status]bool{
		{StatusPending, StatusConfirmed}:     true,
		{StatusPending, StatusCancelled}:     true,
		{StatusConfirmed, StatusCheckedIn}:   true,
		{StatusConfirmed, StatusCancelled}:   true,
		{StatusCheckedIn, StatusCheckedOut}:  true,
		{StatusCheckedOut, StatusCheckedOut}: true,
	}

	for _, from := range all {
		for _, to := range all {
			err := CanTransition(from, to)
			want := allowed[[2]Status{from, to}]
			if (err == nil) != want {
				t.Errorf("CanTransition(%s, %s) error = %v, want allowed %v", from, to, err, want)
			}
			if err != nil {
				if kind, _ := httperr.KindOf(err); kind != httperr.KindConflict {
					t.Errorf("CanTransition(%s, %s) kind = %v, want conflict", from, to, kind)
				}
			}
		}
	}
}

func TestCanCancel(t *testing.T) {
	tests := []struct {
		status Status
		ok     bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCheckedIn, false},
		{StatusCheckedOut, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		err := CanCancel(tt.status)
		if (err == nil) != tt.ok {
			t.Errorf("CanCancel(%s) error = %v, want ok %v", tt.status, err, tt.ok)
		}
		if err != nil && !httperr.IsBusiness(err, "booking_not_cancellable") {
			t.Errorf("CanCancel(%s) error = %v, want booking_not_cancellable", tt.status, err)
		}
	}
}

func TestStatusIsActive(t *testing.T) {
	tests := map[Status]bool{
		StatusPending:    true,
		StatusConfirmed:  true,
		StatusCheckedIn:  true,
		StatusCheckedOut: false,
		StatusCancelled:  false,
	}
	for s, want := range tests {
		if got := s.IsActive(); got != want {
			t.Errorf("%s.IsActive() = %v, want %v", s, got, want)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if !StatusCheckedOut.IsTerminal() || !StatusCancelled.IsTerminal() {
		t.Error("checked_out and cancelled must be terminal")
	}
	if StatusPending.IsTerminal() || StatusConfirmed.IsTerminal() || StatusCheckedIn.IsTerminal() {
		t.Error("pending, confirmed and checked_in must not be terminal")
	}
}

func TestCanRecordPetStatus(t *testing.T) {
	tests := []struct {
		name    string
		current Status
		next    PetStatus
		code    string
	}{
		{"playing while checked in", StatusCheckedIn, PetPlaying, ""},
		{"eating before check-in", StatusConfirmed, PetEating, "booking_not_checked_in"},
		{"resting after checkout", StatusCheckedOut, PetResting, "booking_not_checked_in"},
		{"checkout from checked in", StatusCheckedIn, PetCheckedOut, ""},
		{"checkout with lagging booking", StatusConfirmed, PetCheckedOut, ""},
		{"checkout twice", StatusCheckedOut, PetCheckedOut, ""},
		{"checkout of pending", StatusPending, PetCheckedOut, "invalid_transition"},
		{"checkout of cancelled", StatusCancelled, PetCheckedOut, "invalid_transition"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanRecordPetStatus(tt.current, tt.next)
			if tt.code == "" {
				if err != nil {
					t.Fatalf("CanRecordPetStatus() error = %v, want nil", err)
				}
				return
			}
			if !httperr.IsBusiness(err, tt.code) {
				t.Errorf("CanRecordPetStatus() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestCascadeFor(t *testing.T) {
	tests := []struct {
		next Status
		want Cascade
	}{
		{StatusConfirmed, Cascade{}},
		{StatusCancelled, Cascade{}},
		{StatusCheckedIn, Cascade{Room: RoomOccupied, PetStatus: PetCheckedIn}},
		{StatusCheckedOut, Cascade{Room: RoomMaintenance, PetStatus: PetCheckedOut}},
	}
	for _, tt := range tests {
		if got := CascadeFor(tt.next); got != tt.want {
			t.Errorf("CascadeFor(%s) = %+v, want %+v", tt.next, got, tt.want)
		}
	}
}
