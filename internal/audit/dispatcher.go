package audit

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any

	// Recipient is the customer email to notify, if any.
	Recipient  string
	OccurredAt time.Time
}

// BookingMeta is the metadata attached to booking events.
type BookingMeta struct {
	BookingID  uint    `json:"booking_id"`
	RoomNumber string  `json:"room_number,omitempty"`
	CatName    string  `json:"cat_name,omitempty"`
	CheckIn    string  `json:"check_in_date"`
	CheckOut   string  `json:"check_out_date"`
	From       string  `json:"from,omitempty"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
}

// Sink receives every dispatched event. Sink errors are logged only.
type Sink interface {
	Name() string
	Handle(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	log   *logrus.Logger
	sinks []Sink
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(log *logrus.Logger, sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		log:   log,
		sinks: sinks,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := s.Handle(ctx, ev); err != nil {
				d.log.WithError(err).
					WithFields(logrus.Fields{"sink": s.Name(), "action": ev.Action}).
					Warn("event sink failed")
			}
			cancel()
		}
	}
}

// Dispatch never blocks the caller; events are dropped when the queue is full.
func (d *Dispatcher) Dispatch(ev Event) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.WithField("action", ev.Action).Warn("event queue full, dropping event")
	}
}

// Close stops accepting events and waits until queued ones are handled.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}
