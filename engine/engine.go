package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewport/engine/gpu"
	"github.com/Carmen-Shannon/oxy-viewport/engine/input"
	"github.com/Carmen-Shannon/oxy-viewport/engine/light"
	"github.com/Carmen-Shannon/oxy-viewport/engine/profiler"
)

var (
	// ErrNoWindow is returned by NewEngine when no window was supplied.
	ErrNoWindow = errors.New("engine: no window")
	// ErrNoDevice is returned by NewEngine when no GPU device was supplied.
	ErrNoDevice = errors.New("engine: no device")
	// ErrZeroSurface is returned by NewEngine when the window reports a zero-area framebuffer.
	ErrZeroSurface = errors.New("engine: zero-area surface")
	// ErrNotRunning is returned by Frame outside StateRunning.
	ErrNotRunning = errors.New("engine: not running")
	// ErrSurfaceUnrecoverable is returned when the surface stays outdated after a rebuild.
	ErrSurfaceUnrecoverable = errors.New("engine: surface unrecoverable")
	// ErrTargetMismatch is returned when an acquired frame and the depth attachment differ in size.
	ErrTargetMismatch = errors.New("engine: frame and depth target sizes differ")
)

// EventSource is the window collaborator: a non-blocking event drain plus the framebuffer size.
type EventSource interface {
	// PollEvents returns every event queued since the previous call, oldest first. Never blocks.
	PollEvents() []input.Event
	// WaitEvents blocks until an event arrives or timeout elapses. Used while the window is minimised.
	WaitEvents(timeout time.Duration)
	// Width returns the current framebuffer width in pixels.
	Width() int
	// Height returns the current framebuffer height in pixels.
	Height() int
	// Close destroys the window.
	Close() error
}

// suspendedWait bounds how long a minimised engine blocks waiting for window events per iteration.
const suspendedWait = 100 * time.Millisecond

// keyBindings maps movement keys to camera movements.
var keyBindings = map[input.Key]camera.Movement{
	common.KeyW:     camera.MoveForward,
	common.KeyUp:    camera.MoveForward,
	common.KeyS:     camera.MoveBackward,
	common.KeyDown:  camera.MoveBackward,
	common.KeyA:     camera.StrafeLeft,
	common.KeyLeft:  camera.StrafeLeft,
	common.KeyD:     camera.StrafeRight,
	common.KeyRight: camera.StrafeRight,
}

// engine implements the Engine interface.
// Owns the camera and the surface/depth pair and drives one frame per Frame call on the caller's goroutine.
type engine struct {
	state State

	window EventSource
	device gpu.Device

	cameraDesc    camera.CameraDescriptor
	cameraOptions []camera.CameraControllerOption
	camera        camera.CameraController
	light         light.Light

	targets       viewportTargets
	pendingResize *input.EventResize
	suspended     bool // framebuffer is zero-area, nothing is rendered

	updateCallback  func(deltaTime float32)
	releaseCallback func()

	profiler         *profiler.Profiler
	profilingEnabled bool

	released bool
}

// Engine is the viewport runtime.
// It consumes window events, keeps the camera and the render targets consistent and renders one frame per iteration.
type Engine interface {
	// State returns the current lifecycle state.
	State() State

	// Camera returns the camera controller driven by input.
	Camera() camera.CameraController

	// Light returns the attached point light, or nil.
	Light() light.Light

	// TargetSize returns the size of the current surface and depth pair.
	//
	// Returns:
	//   - int: width in pixels
	//   - int: height in pixels
	TargetSize() (int, int)

	// Frame runs one iteration of the render loop: drain events, repair targets, upload uniforms,
	// acquire, record, submit and present. Returns nil without rendering when the engine moved
	// to StateTerminating or the window is minimised.
	//
	// Parameters:
	//   - dt: seconds elapsed since the previous iteration
	//
	// Returns:
	//   - error: ErrNotRunning outside StateRunning, otherwise a fatal error (the engine is then terminating)
	Frame(dt float32) error

	// Run loops Frame with wall-clock delta time until the engine terminates, then releases the
	// depth target and the device and closes the window.
	//
	// Returns:
	//   - error: the first fatal error joined with any shutdown error
	Run() error

	// Quit requests termination. The current iteration finishes and no further frame is rendered.
	Quit()

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()
}

var _ Engine = &engine{}

// NewEngine performs initialization: configures the surface at the window's framebuffer size,
// creates the depth target and builds the camera. WithWindow and WithDevice are required.
//
// Parameters:
//   - options: functional options for engine configuration
//
// Returns:
//   - Engine: the running engine
//   - error: a fatal initialization error
func NewEngine(options ...EngineBuilderOption) (Engine, error) {
	e := &engine{
		state:      StateInitializing,
		cameraDesc: camera.DefaultCameraDescriptor(),
		profiler:   profiler.NewProfiler(),
	}
	for _, opt := range options {
		opt(e)
	}
	common.Logger().Info("engine state changed", "state", e.state)

	if e.window == nil {
		return nil, ErrNoWindow
	}
	if e.device == nil {
		return nil, ErrNoDevice
	}

	width, height := e.window.Width(), e.window.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrZeroSurface, width, height)
	}

	desc := e.cameraDesc
	desc.AspectRatio = float32(width) / float32(height)
	e.camera = camera.NewCameraController(desc, e.cameraOptions...)

	if err := e.rebuildTargets(width, height); err != nil {
		return nil, fmt.Errorf("initialize viewport: %w", err)
	}

	e.setState(StateRunning)
	return e, nil
}

func (e *engine) State() State {
	return e.state
}

func (e *engine) Camera() camera.CameraController {
	return e.camera
}

func (e *engine) Light() light.Light {
	return e.light
}

func (e *engine) TargetSize() (int, int) {
	return e.targets.width, e.targets.height
}

func (e *engine) Quit() {
	if e.state == StateRunning {
		e.setState(StateTerminating)
	}
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) Run() error {
	var runErr error
	last := time.Now()
	for e.state == StateRunning {
		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		if err := e.Frame(dt); err != nil {
			runErr = err
			break
		}
	}
	return errors.Join(runErr, e.shutdown())
}

func (e *engine) Frame(dt float32) error {
	if e.state != StateRunning {
		return ErrNotRunning
	}

	e.handleEvents(e.window.PollEvents(), dt)
	if e.state != StateRunning {
		return nil
	}

	if r := e.pendingResize; r != nil {
		e.pendingResize = nil
		if !e.targets.matches(r.Width, r.Height) {
			if err := e.rebuildTargets(r.Width, r.Height); err != nil {
				return e.fail(err)
			}
		}
	}
	if e.suspended {
		// Nothing is presented while minimised, so vsync cannot pace the loop.
		e.window.WaitEvents(suspendedWait)
		return nil
	}

	if e.updateCallback != nil {
		e.updateCallback(dt)
	}
	if err := e.writeUniforms(); err != nil {
		return e.fail(err)
	}

	frame, err := e.acquireFrame()
	if err != nil {
		return e.fail(err)
	}
	if err := e.render(frame); err != nil {
		return e.fail(err)
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}
	return nil
}

// handleEvents dispatches every drained event in order. Stops at the first close request.
func (e *engine) handleEvents(events []input.Event, dt float32) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case input.EventClose:
			e.setState(StateTerminating)
		case input.EventResize:
			if ev.Width <= 0 || ev.Height <= 0 {
				e.suspended = true
				continue
			}
			e.suspended = false
			e.pendingResize = &ev
		case input.EventKey:
			e.handleKey(ev, dt)
		case input.EventMouseMotion:
			e.camera.Look(ev.DX, -ev.DY)
		case input.EventMouseScroll:
			e.camera.Zoom(ev.DY)
		}
		if e.state != StateRunning {
			return
		}
	}
}

// handleKey terminates on Escape and forwards held movement keys to the camera.
func (e *engine) handleKey(ev input.EventKey, dt float32) {
	if ev.Key == common.KeyEsc {
		if ev.Action == input.ActionPress {
			e.setState(StateTerminating)
		}
		return
	}
	if !ev.Action.Down() {
		return
	}
	if m, ok := keyBindings[ev.Key]; ok {
		e.camera.Advance(m, dt)
	}
}

// acquireFrame acquires the next image, rebuilding the targets once if the surface is outdated.
func (e *engine) acquireFrame() (gpu.Frame, error) {
	frame, err := e.device.AcquireFrame()
	if errors.Is(err, gpu.ErrSurfaceOutdated) {
		common.Logger().Warn("surface outdated, rebuilding targets", "error", err)
		if err := e.rebuildTargets(e.targets.width, e.targets.height); err != nil {
			return nil, err
		}
		frame, err = e.device.AcquireFrame()
		if errors.Is(err, gpu.ErrSurfaceOutdated) {
			return nil, fmt.Errorf("%w: %w", ErrSurfaceUnrecoverable, err)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("acquire frame: %w", err)
	}
	return frame, nil
}

// render records, submits and presents one frame against the current depth target.
func (e *engine) render(frame gpu.Frame) error {
	depth := e.targets.depth
	if frame.Width() != depth.Width() || frame.Height() != depth.Height() {
		return fmt.Errorf("%w: frame %dx%d, depth %dx%d", ErrTargetMismatch,
			frame.Width(), frame.Height(), depth.Width(), depth.Height())
	}

	commands, err := e.device.Record(frame, depth)
	if err != nil {
		return fmt.Errorf("record frame: %w", err)
	}
	if err := e.device.Submit(commands); err != nil {
		return fmt.Errorf("submit frame: %w", err)
	}
	if err := e.device.Present(frame); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// fail logs a fatal error and moves the engine to StateTerminating.
func (e *engine) fail(err error) error {
	common.Logger().Error("fatal frame error", "error", err)
	e.setState(StateTerminating)
	return err
}

func (e *engine) setState(s State) {
	if e.state == s {
		return
	}
	e.state = s
	common.Logger().Info("engine state changed", "state", s)
}

// shutdown releases the depth target and the device and closes the window. Runs once.
func (e *engine) shutdown() error {
	if e.released {
		return nil
	}
	e.released = true
	e.setState(StateTerminating)

	if e.releaseCallback != nil {
		e.releaseCallback()
	}
	e.targets.release()
	e.device.Release()
	if err := e.window.Close(); err != nil {
		return fmt.Errorf("close window: %w", err)
	}
	return nil
}
