package window

import (
	"fmt"
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/input"
	"github.com/cogentcore/webgpu/wgpu"
)

const defaultTitle = "oxy viewport"

// Window provides platform windowing and input event handling.
// Native callbacks are translated into input.Event values and queued until PollEvents drains them.
type Window interface {
	// PollEvents pumps the platform event loop without blocking and returns every event queued
	// since the previous call, oldest first.
	//
	// Returns:
	//   - []input.Event: the drained events, nil if none
	PollEvents() []input.Event

	// WaitEvents blocks until the platform delivers an event or timeout elapses. Events that
	// arrive are queued for the next PollEvents.
	//
	// Parameters:
	//   - timeout: the longest time to block
	WaitEvents(timeout time.Duration)

	// SurfaceDescriptor returns a wgpu.SurfaceDescriptor suitable for creating a WebGPU surface.
	// The descriptor is platform-appropriate (Windows HWND, X11 Xlib, Wayland, macOS Metal, etc.)
	// and is created by the wgpuglfw bridge from the underlying GLFW window.
	//
	// Returns:
	//   - *wgpu.SurfaceDescriptor: the platform-specific surface descriptor, or nil if window is not initialized
	SurfaceDescriptor() *wgpu.SurfaceDescriptor

	// SetCursorCaptured hides and locks the cursor for mouse-look, or releases it.
	// Motion deltas restart from zero after every change.
	//
	// Parameters:
	//   - captured: true to capture the cursor
	SetCursorCaptured(captured bool)

	// Title returns the window title.
	Title() string

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// Width returns the current framebuffer width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current framebuffer height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state and the pending event queue.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// maxWidth is the maximum allowed window width during resize (0 = unbounded).
	maxWidth int

	// maxHeight is the maximum allowed window height during resize (0 = unbounded).
	maxHeight int

	// minWidth is the minimum allowed window width during resize.
	minWidth int

	// minHeight is the minimum allowed window height during resize.
	minHeight int

	// width is the current framebuffer width in pixels.
	width int

	// height is the current framebuffer height in pixels.
	height int

	// cursorCaptured is the requested cursor mode.
	cursorCaptured bool

	// events holds translated events until the next PollEvents.
	events input.Queue

	// cursor turns absolute cursor positions into motion deltas.
	cursor cursorTracker

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any
}

var _ Window = &engineWindow{}

// NewWindow creates and shows a new Window with the specified options.
// Applies default values first, then each option in order.
// Must be called from the goroutine that will drive the render loop: the OS thread is locked.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the created window
//   - error: error if the platform window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		return nil, fmt.Errorf("create platform window: %w", err)
	}
	common.Logger().Info("window created", "title", w.title, "width", w.width, "height", w.height)
	return w, nil
}

// newEngineWindow applies defaults and options without touching the platform.
func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		minWidth:  200,
		minHeight: 150,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	w.title = common.Coalesce(w.title, defaultTitle)
	return w
}

func (w *engineWindow) PollEvents() []input.Event {
	platformPollEvents(w)
	return w.events.Drain()
}

func (w *engineWindow) WaitEvents(timeout time.Duration) {
	platformWaitEvents(w, timeout)
}

func (w *engineWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return platformGetSurfaceDescriptor(w)
}

func (w *engineWindow) SetCursorCaptured(captured bool) {
	w.cursorCaptured = captured
	w.cursor.reset()
	platformSetCursorCaptured(w, captured)
}

func (w *engineWindow) Title() string {
	return w.title
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

// handleClose queues a close request.
func (w *engineWindow) handleClose() {
	w.events.Push(input.EventClose{})
}

// handleFramebufferSize records the new size and queues a resize, including zero-area ones.
func (w *engineWindow) handleFramebufferSize(width, height int) {
	w.width = width
	w.height = height
	w.events.Push(input.EventResize{Width: width, Height: height})
}

// handleKey queues a key event.
func (w *engineWindow) handleKey(key int, action input.Action) {
	if key < 0 {
		return
	}
	w.events.Push(input.EventKey{Key: input.Key(key), Action: action})
}

// handleCursorPos converts an absolute cursor position into a motion event.
// The first position after a reset only sets the baseline.
func (w *engineWindow) handleCursorPos(x, y float64) {
	dx, dy, ok := w.cursor.move(x, y)
	if !ok || (dx == 0 && dy == 0) {
		return
	}
	w.events.Push(input.EventMouseMotion{DX: dx, DY: dy})
}

// handleScroll queues a vertical scroll event. Horizontal scrolling is ignored.
func (w *engineWindow) handleScroll(yoff float64) {
	if yoff == 0 {
		return
	}
	w.events.Push(input.EventMouseScroll{DY: float32(yoff)})
}

// cursorTracker remembers the last cursor position.
type cursorTracker struct {
	x, y  float64
	valid bool
}

// move returns the delta from the previous position. ok is false for the first sample.
func (c *cursorTracker) move(x, y float64) (dx, dy float32, ok bool) {
	if c.valid {
		dx, dy, ok = float32(x-c.x), float32(y-c.y), true
	}
	c.x, c.y, c.valid = x, y, true
	return dx, dy, ok
}

func (c *cursorTracker) reset() {
	c.valid = false
}
