package timezone

import (
	"time"

	"github.com/BruksfildServices01/cat-hotel/internal/httperr"
)

const DefaultTimezone = "Asia/Ho_Chi_Minh"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// ParseDate reads a YYYY-MM-DD string as a calendar date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date")
	}
	return d, nil
}

// StartOfDayIn reads a YYYY-MM-DD string as midnight in tz, for filtering
// timestamps by the hotel's calendar day.
func StartOfDayIn(s, tz string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, s, Location(tz))
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_date")
	}
	return d, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
