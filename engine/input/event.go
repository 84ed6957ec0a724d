// Package input defines the platform-neutral window and input events consumed by the engine.
// Windows translate native callbacks into these values and queue them until the engine drains them.
package input

// Event is a single window or input event. The set of implementations is closed.
type Event interface{ isEvent() }

// EventClose is emitted when the user asks the window to close.
type EventClose struct{}

func (EventClose) isEvent() {}

// EventResize is emitted when the framebuffer changes size. Dimensions are in pixels
// and may be zero while the window is minimised.
type EventResize struct {
	Width  int
	Height int
}

func (EventResize) isEvent() {}

// EventKey is emitted for key presses, repeats and releases.
type EventKey struct {
	Key    Key
	Action Action
}

func (EventKey) isEvent() {}

// EventMouseMotion carries raw pointer deltas since the previous motion event.
// DY grows downward, matching screen coordinates.
type EventMouseMotion struct {
	DX float32
	DY float32
}

func (EventMouseMotion) isEvent() {}

// EventMouseScroll carries a vertical scroll delta in wheel ticks (positive = away from the user).
type EventMouseScroll struct {
	DY float32
}

func (EventMouseScroll) isEvent() {}

// Key is a virtual key code. Values match the codes in the common package (GLFW numbering).
type Key uint32

// Action is the state transition reported with a key event.
type Action int

const (
	ActionRelease Action = iota
	ActionPress
	ActionRepeat
)

// Down reports whether the action leaves the key held (press or auto-repeat).
func (a Action) Down() bool {
	return a == ActionPress || a == ActionRepeat
}
