package event

import (
	"sync"

	"github.com/lixenwraith/metro-sim/parameter"
)

// Queue buffers events between producers and the scheduler's dispatch step
// Any goroutine may Push; the scheduler is the only consumer
// When full the oldest event is overwritten and counted as dropped
type Queue struct {
	mu      sync.Mutex
	ring    [parameter.EventQueueSize]Event
	start   int
	size    int
	dropped uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends ev, overwriting the oldest pending event when full
func (q *Queue) Push(ev Event) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.size == len(q.ring) {
		q.ring[q.start] = ev
		q.start = (q.start + 1) % len(q.ring)
		q.dropped++
		return
	}
	q.ring[(q.start+q.size)%len(q.ring)] = ev
	q.size++
}

// Consume drains pending events in push order, nil when empty
func (q *Queue) Consume() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.size == 0 {
		return nil
	}
	out := make([]Event, q.size)
	for i := range out {
		slot := (q.start + i) % len(q.ring)
		out[i] = q.ring[slot]
		q.ring[slot] = Event{}
	}
	q.start, q.size = 0, 0
	return out
}

// Dropped returns how many events were overwritten before dispatch
func (q *Queue) Dropped() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.dropped
}
