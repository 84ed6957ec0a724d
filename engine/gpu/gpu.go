// Package gpu declares the GPU collaborator the engine drives each frame. The engine only
// sees these interfaces; the WebGPU implementation lives in the renderer package.
package gpu

import "errors"

// ErrSurfaceOutdated is returned by Device.AcquireFrame when the presentable surface no longer
// matches the window (outdated, lost or timed out) and must be reconfigured before a frame
// can be acquired.
var ErrSurfaceOutdated = errors.New("gpu: surface outdated")

// UniformSlot names a uniform buffer owned by the device.
type UniformSlot string

const (
	// UniformCamera holds the camera.GPUCamera record.
	UniformCamera UniformSlot = "camera"
	// UniformLight holds the light.GPUPointLight record.
	UniformLight UniformSlot = "light"
)

// Frame is an acquired presentable image.
type Frame interface {
	// Width returns the image width in pixels.
	Width() int
	// Height returns the image height in pixels.
	Height() int
}

// DepthTarget is a depth attachment sized to the surface.
type DepthTarget interface {
	// Width returns the attachment width in pixels.
	Width() int
	// Height returns the attachment height in pixels.
	Height() int
	// Release frees the GPU resources backing the attachment.
	Release()
}

// CommandBuffer is a recorded, not yet submitted, frame.
type CommandBuffer interface {
	// Release frees the command buffer without submitting it.
	Release()
}

// Device is the GPU collaborator consumed by the engine.
type Device interface {
	// ConfigureSurface (re)configures the presentable surface to the given size.
	//
	// Parameters:
	//   - width, height: surface size in pixels
	//
	// Returns:
	//   - error: a fatal configuration error
	ConfigureSurface(width, height int) error

	// CreateDepthTarget creates a depth attachment of the given size.
	//
	// Parameters:
	//   - width, height: attachment size in pixels
	//
	// Returns:
	//   - DepthTarget: the new attachment
	//   - error: a fatal creation error
	CreateDepthTarget(width, height int) (DepthTarget, error)

	// AcquireFrame acquires the next presentable image.
	//
	// Returns:
	//   - Frame: the acquired image
	//   - error: ErrSurfaceOutdated when the surface must be reconfigured, any other error is fatal
	AcquireFrame() (Frame, error)

	// WriteUniform copies data into the uniform buffer registered under slot.
	//
	// Parameters:
	//   - slot: the target uniform buffer
	//   - data: the bytes to upload
	//
	// Returns:
	//   - error: an error if the slot is unknown or the upload fails
	WriteUniform(slot UniformSlot, data []byte) error

	// Record encodes one render pass against frame and depth that clears color and depth
	// and runs the registered draw callbacks.
	//
	// Parameters:
	//   - frame: the acquired image
	//   - depth: the depth attachment (same size as frame)
	//
	// Returns:
	//   - CommandBuffer: the recorded commands
	//   - error: a fatal encoding error
	Record(frame Frame, depth DepthTarget) (CommandBuffer, error)

	// Submit queues recorded commands for execution. The command buffer is consumed.
	//
	// Parameters:
	//   - commands: the recorded commands
	//
	// Returns:
	//   - error: a fatal submission error
	Submit(commands CommandBuffer) error

	// Present displays frame and releases it. Blocks according to the present mode.
	//
	// Parameters:
	//   - frame: the acquired image
	//
	// Returns:
	//   - error: a fatal presentation error
	Present(frame Frame) error

	// Release frees the device, queue and surface.
	Release()
}
