package events

import (
	"sync/atomic"

	"github.com/lixenwraith/balance/constants"
)

// EventQueue is a bounded multi-producer, single-consumer ring of game events.
// Producers (game loop, gesture clients) claim a slot by CAS on the write cursor
// and mark it ready once the event is stored. The single reader drains ready slots
// in order. When the ring is full the oldest unread events are overwritten
type EventQueue struct {
	slots [constants.EventQueueSize]GameEvent
	ready [constants.EventQueueSize]atomic.Bool

	read  atomic.Uint64
	write atomic.Uint64

	overwritten atomic.Uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push stores ev. Safe from any goroutine
func (q *EventQueue) Push(ev GameEvent) {
	var pos uint64
	for {
		pos = q.write.Load()
		if q.write.CompareAndSwap(pos, pos+1) {
			break
		}
	}

	i := pos & constants.EventBufferMask
	q.slots[i] = ev
	q.ready[i].Store(true)

	// Slide the reader forward past anything we lapped
	end := pos + 1
	if r := q.read.Load(); end-r > constants.EventQueueSize {
		if q.read.CompareAndSwap(r, end-constants.EventQueueSize) {
			q.overwritten.Add(end - constants.EventQueueSize - r)
		}
	}
}

// Consume returns pending events oldest first, nil when empty
func (q *EventQueue) Consume() []GameEvent {
	out := q.ConsumeInto(nil)
	if len(out) == 0 {
		return nil
	}
	return out
}

// ConsumeInto appends pending events to buf and returns it. Single consumer only
func (q *EventQueue) ConsumeInto(buf []GameEvent) []GameEvent {
	for {
		r := q.read.Load()
		w := q.write.Load()
		if r == w {
			return buf
		}
		if w-r > constants.EventQueueSize {
			r = w - constants.EventQueueSize
		}

		start := len(buf)
		for pos := r; pos < w; pos++ {
			i := pos & constants.EventBufferMask
			// Claimed but not yet stored; stop and leave it for the next drain
			if !q.ready[i].Load() {
				break
			}
			buf = append(buf, q.slots[i])
		}
		n := uint64(len(buf) - start)

		if q.read.CompareAndSwap(r, r+n) {
			for pos := r; pos < r+n; pos++ {
				q.ready[pos&constants.EventBufferMask].Store(false)
			}
			return buf
		}
		// A producer lapped us mid-drain; retry from the new read cursor
		buf = buf[:start]
	}
}

// Len returns the approximate number of pending events
func (q *EventQueue) Len() int {
	n := q.write.Load() - q.read.Load()
	if n > constants.EventQueueSize {
		return constants.EventQueueSize
	}
	return int(n)
}

// Overwritten returns how many unread events were lost to overflow
func (q *EventQueue) Overwritten() uint64 {
	return q.overwritten.Load()
}
