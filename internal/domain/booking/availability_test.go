package booking

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mustRange(t *testing.T, in, out string) DateRange {
	t.Helper()
	r, err := NewDateRange(day(in), day(out))
	if err != nil {
		t.Fatalf("NewDateRange(%s, %s) error = %v", in, out, err)
	}
	return r
}

func TestNewDateRange(t *testing.T) {
	tests := []struct {
		in, out string
		wantErr bool
	}{
		{"2024-01-01", "2024-01-04", false},
		{"2024-01-01", "2024-01-02", false},
		{"2024-01-01", "2024-01-01", true},
		{"2024-01-04", "2024-01-01", true},
	}
	for _, tt := range tests {
		_, err := NewDateRange(day(tt.in), day(tt.out))
		if (err != nil) != tt.wantErr {
			t.Errorf("NewDateRange(%s, %s) error = %v, wantErr %v", tt.in, tt.out, err, tt.wantErr)
		}
	}
}

func TestNewDateRangeIgnoresTimeOfDay(t *testing.T) {
	in := time.Date(2024, 1, 1, 23, 30, 0, 0, time.UTC)
	out := time.Date(2024, 1, 2, 0, 15, 0, 0, time.UTC)

	r, err := NewDateRange(in, out)
	if err != nil {
		t.Fatalf("NewDateRange() error = %v", err)
	}
	if got := r.Nights(); got != 1 {
		t.Errorf("Nights() = %d, want 1", got)
	}
}

func TestOverlaps(t *testing.T) {
	existing := mustRange(t, "2024-01-01", "2024-01-04")

	tests := []struct {
		name    string
		in, out string
		want    bool
	}{
		{"inside", "2024-01-02", "2024-01-03", true},
		{"tail overlap", "2024-01-03", "2024-01-05", true},
		{"head overlap", "2023-12-30", "2024-01-02", true},
		{"covers", "2023-12-30", "2024-01-10", true},
		{"same range", "2024-01-01", "2024-01-04", true},
		{"adjacent after", "2024-01-04", "2024-01-06", false},
		{"adjacent before", "2023-12-29", "2024-01-01", false},
		{"far after", "2024-02-01", "2024-02-03", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mustRange(t, tt.in, tt.out)
			if got := existing.Overlaps(req); got != tt.want {
				t.Errorf("Overlaps(%s..%s) = %v, want %v", tt.in, tt.out, got, tt.want)
			}
			if got := req.Overlaps(existing); got != tt.want {
				t.Errorf("reverse Overlaps(%s..%s) = %v, want %v", tt.in, tt.out, got, tt.want)
			}
		})
	}
}

func TestBlocks(t *testing.T) {
	existing := mustRange(t, "2024-01-01", "2024-01-04")
	req := mustRange(t, "2024-01-03", "2024-01-05")

	tests := map[Status]bool{
		StatusPending:    true,
		StatusConfirmed:  true,
		StatusCheckedIn:  true,
		StatusCheckedOut: false,
		StatusCancelled:  false,
	}
	for s, want := range tests {
		if got := Blocks(s, existing, req); got != want {
			t.Errorf("Blocks(%s) = %v, want %v", s, got, want)
		}
	}
}
