package booking

import "math"

// LineItem is a selected service or food: a daily price and how many of it.
type LineItem struct {
	Price    float64
	Quantity int
}

type Quote struct {
	Nights   int
	Room     float64
	Services float64
	Foods    float64
	Total    float64
}

const secondsPerDay = 24 * 60 * 60

// Nights counts calendar days between the two dates, rounding up. It works
// on unix seconds so ranges beyond time.Duration's 292 years stay exact.
func (r DateRange) Nights() int {
	secs := r.CheckOut.Unix() - r.CheckIn.Unix()
	return int((secs + secondsPerDay - 1) / secondsPerDay)
}

// Price charges the room and every extra once per night of the stay.
func Price(r DateRange, roomRate float64, services, foods []LineItem) Quote {
	n := r.Nights()
	nights := float64(n)

	q := Quote{
		Nights:   n,
		Room:     roundCents(roomRate * nights),
		Services: roundCents(sumPerNight(services, nights)),
		Foods:    roundCents(sumPerNight(foods, nights)),
	}
	q.Total = roundCents(q.Room + q.Services + q.Foods)
	return q
}

func sumPerNight(items []LineItem, nights float64) float64 {
	var total float64
	for _, it := range items {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		total += it.Price * float64(qty) * nights
	}
	return total
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
