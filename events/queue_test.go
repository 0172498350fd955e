package events

import (
	"sync"
	"testing"

	"github.com/lixenwraith/balance/constants"
)

func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 10; i++ {
		q.Push(GameEvent{Type: EventScoreTick, Amount: i})
	}
	if q.Len() != 10 {
		t.Fatalf("Expected 10 pending, got %d", q.Len())
	}

	evs := q.Consume()
	if len(evs) != 10 {
		t.Fatalf("Expected 10 events, got %d", len(evs))
	}
	for i, ev := range evs {
		if ev.Amount != i {
			t.Errorf("Expected event %d in order, got %d", i, ev.Amount)
		}
	}
	if q.Consume() != nil {
		t.Error("Expected nil after drain")
	}
}

func TestQueueOverflowKeepsNewest(t *testing.T) {
	q := NewEventQueue()
	total := constants.EventQueueSize + 44
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Amount: i})
	}

	evs := q.Consume()
	if len(evs) != constants.EventQueueSize {
		t.Fatalf("Expected %d events, got %d", constants.EventQueueSize, len(evs))
	}
	if evs[0].Amount != 44 || evs[len(evs)-1].Amount != total-1 {
		t.Errorf("Expected events 44..%d, got %d..%d", total-1, evs[0].Amount, evs[len(evs)-1].Amount)
	}
	if q.Overwritten() != 44 {
		t.Errorf("Expected 44 overwritten, got %d", q.Overwritten())
	}
}

func TestConsumeIntoReusesBuffer(t *testing.T) {
	q := NewEventQueue()
	buf := make([]GameEvent, 0, 8)

	q.Push(GameEvent{Type: EventLaneChange})
	q.Push(GameEvent{Type: EventBlockHit})
	buf = q.ConsumeInto(buf[:0])
	if len(buf) != 2 || buf[1].Type != EventBlockHit {
		t.Fatalf("Expected two events, got %+v", buf)
	}

	buf = q.ConsumeInto(buf[:0])
	if len(buf) != 0 {
		t.Errorf("Expected empty drain, got %d", len(buf))
	}
	if cap(buf) != 8 {
		t.Errorf("Expected buffer reuse, got cap %d", cap(buf))
	}
}

func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers, each = 4, 50

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(side uint8) {
			defer wg.Done()
			for i := 0; i < each; i++ {
				q.Push(GameEvent{Type: EventGesture, Side: side, Amount: i})
			}
		}(uint8(p))
	}
	wg.Wait()

	evs := q.Consume()
	if len(evs) != producers*each {
		t.Fatalf("Expected %d events, got %d", producers*each, len(evs))
	}
	// Each producer's own events stay ordered
	last := map[uint8]int{}
	for _, ev := range evs {
		if prev, ok := last[ev.Side]; ok && ev.Amount <= prev {
			t.Errorf("Expected increasing amounts for producer %d, got %d after %d", ev.Side, ev.Amount, prev)
		}
		last[ev.Side] = ev.Amount
	}
}

func TestEventTypeString(t *testing.T) {
	if EventGameOver.String() != "game_over" {
		t.Errorf("Expected game_over, got %s", EventGameOver.String())
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", EventType(99).String())
	}
}
