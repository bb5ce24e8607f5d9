package audit

import (
	"context"
	"log"
	"sync"
	"time"
)

const (
	ActionAppointmentCreated = "appointment_created"
	ActionAppointmentDeleted = "appointment_deleted"
	ActionPaymentFinalized   = "payment_finalized"
	ActionRoleChanged        = "role_changed"
	ActionRoleDenied         = "role_change_denied"
	ActionUserUpserted       = "user_upserted"
)

type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher records events on a background worker so audit never blocks or
// fails a request.
type Dispatcher struct {
	sink  Sink
	queue chan Event
	wg    sync.WaitGroup
	once  sync.Once
}

func NewDispatcher(sink Sink, size int) *Dispatcher {
	if size <= 0 {
		size = 100
	}
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, size),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.sink.Record(ctx, ev); err != nil {
			log.Println("audit error:", err)
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event", ev.Action)
	}
}

// Close drains queued events. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}
