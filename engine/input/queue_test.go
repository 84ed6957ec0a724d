package input

import "testing"

func TestQueueDrainPreservesOrder(t *testing.T) {
	var q Queue
	q.Push(EventResize{Width: 800, Height: 600})
	q.Push(EventKey{Key: 87, Action: ActionPress})
	q.Push(EventClose{})

	if q.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", q.Len())
	}

	got := q.Drain()
	if len(got) != 3 {
		t.Fatalf("Drain() returned %d events, want 3", len(got))
	}
	if r, ok := got[0].(EventResize); !ok || r.Width != 800 || r.Height != 600 {
		t.Errorf("event 0 = %#v, want EventResize{800, 600}", got[0])
	}
	if _, ok := got[2].(EventClose); !ok {
		t.Errorf("event 2 = %#v, want EventClose", got[2])
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d, want 0", q.Len())
	}
}

func TestQueueDrainEmpty(t *testing.T) {
	var q Queue
	if got := q.Drain(); got != nil {
		t.Errorf("Drain() on empty queue = %v, want nil", got)
	}
}

func TestQueuePushAfterDrain(t *testing.T) {
	var q Queue
	q.Push(EventMouseScroll{DY: 1})
	first := q.Drain()
	q.Push(EventMouseScroll{DY: 2})

	if s := first[0].(EventMouseScroll); s.DY != 1 {
		t.Errorf("drained slice mutated by later Push: %v", first)
	}
	if got := q.Drain(); len(got) != 1 || got[0].(EventMouseScroll).DY != 2 {
		t.Errorf("second Drain() = %v, want one scroll event with DY 2", got)
	}
}

func TestActionDown(t *testing.T) {
	tests := []struct {
		a    Action
		want bool
	}{
		{ActionPress, true},
		{ActionRepeat, true},
		{ActionRelease, false},
	}
	for _, tt := range tests {
		if got := tt.a.Down(); got != tt.want {
			t.Errorf("Action(%d).Down() = %v, want %v", tt.a, got, tt.want)
		}
	}
}
