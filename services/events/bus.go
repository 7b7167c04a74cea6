package events

import (
	"time"

	"chef-catering/logger"

	"github.com/google/uuid"
)

// Domain event names. Payloads carry only ids; subscribers re-fetch state.
const (
	ChefEventRequested   = "chef-event.requested"
	ChefEventAccepted    = "chef-event.accepted"
	ChefEventRejected    = "chef-event.rejected"
	ChefEventEmailResend = "chef-event.email-resend"
	ChefEventReceipt     = "chef-event.receipt"
)

// Event is one domain event on the in-process bus.
type Event struct {
	ID          string
	Name        string
	ChefEventID uint
	ProductID   *uint
	OccurredAt  time.Time
}

// Handler consumes one event. Errors are the handler's own problem: it must
// log and swallow, never panic the consumer goroutine.
type Handler func(Event)

// Bus is an asynchronous in-process publish/subscribe channel. Publishing
// never blocks the caller; dispatch happens on the Process goroutine.
type Bus struct {
	channel  chan Event
	handlers []Handler
}

func NewBus() *Bus {
	return &Bus{
		channel: make(chan Event, 100), // Buffered channel to hold pending events
	}
}

// Subscribe registers a handler. Call before Process starts.
func (b *Bus) Subscribe(h Handler) {
	b.handlers = append(b.handlers, h)
}

// Publish queues an event for asynchronous dispatch. If the buffer is full
// the event is dropped with a warning rather than stalling a workflow commit.
func (b *Bus) Publish(name string, chefEventID uint, productID *uint) {
	ev := Event{
		ID:          uuid.NewString(),
		Name:        name,
		ChefEventID: chefEventID,
		ProductID:   productID,
		OccurredAt:  time.Now(),
	}
	select {
	case b.channel <- ev:
	default:
		logger.Warning("Event bus buffer full, dropping event " + name)
	}
}

// Process dispatches queued events to every subscriber. Run it on its own
// goroutine; it exits when Close is called.
func (b *Bus) Process() {
	logger.Info("Starting domain event bus...")
	for ev := range b.channel {
		for _, h := range b.handlers {
			func() {
				defer func() {
					if r := recover(); r != nil {
						logger.Warning("Event handler panicked, event dropped: " + ev.Name)
					}
				}()
				h(ev)
			}()
		}
	}
}

// Close stops the Process loop after draining queued events.
func (b *Bus) Close() {
	close(b.channel)
}
