package input

// Queue buffers events between platform callbacks and the engine's per-frame drain.
// It is not safe for concurrent use; windows push from callbacks that run on the
// same thread that later calls Drain.
type Queue struct {
	events []Event
}

// Push appends an event to the queue.
//
// Parameters:
//   - ev: the event to enqueue
func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of queued events.
//
// Returns:
//   - int: pending event count
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain removes and returns all queued events in arrival order.
// Returns nil when the queue is empty.
//
// Returns:
//   - []Event: the pending events, oldest first
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = nil
	return out
}
