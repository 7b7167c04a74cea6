package events

import (
	"sync"
	"testing"
	"time"
)

func TestBusDeliversToSubscribers(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var got []Event
	done := make(chan struct{})

	bus.Subscribe(func(ev Event) {
		mu.Lock()
		got = append(got, ev)
		if len(got) == 2 {
			close(done)
		}
		mu.Unlock()
	})
	go bus.Process()
	defer bus.Close()

	bus.Publish(ChefEventRequested, 7, nil)
	pid := uint(99)
	bus.Publish(ChefEventAccepted, 7, &pid)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("events were not delivered")
	}

	mu.Lock()
	defer mu.Unlock()
	if got[0].Name != ChefEventRequested || got[0].ChefEventID != 7 {
		t.Fatalf("unexpected first event: %+v", got[0])
	}
	if got[1].Name != ChefEventAccepted || got[1].ProductID == nil || *got[1].ProductID != 99 {
		t.Fatalf("unexpected second event: %+v", got[1])
	}
	if got[0].ID == got[1].ID {
		t.Fatal("event ids must be unique")
	}
}

func TestBusSurvivesPanickingHandler(t *testing.T) {
	bus := NewBus()

	delivered := make(chan Event, 1)
	bus.Subscribe(func(ev Event) {
		panic("boom")
	})
	bus.Subscribe(func(ev Event) {
		delivered <- ev
	})
	go bus.Process()
	defer bus.Close()

	bus.Publish(ChefEventRejected, 3, nil)

	select {
	case ev := <-delivered:
		if ev.Name != ChefEventRejected {
			t.Fatalf("unexpected event: %+v", ev)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("second handler never ran after first panicked")
	}
}
