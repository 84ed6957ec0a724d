package engine

import (
	"github.com/Carmen-Shannon/oxy-viewport/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewport/engine/gpu"
	"github.com/Carmen-Shannon/oxy-viewport/engine/light"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithWindow sets the window the engine drains events from. Required.
//
// Parameters:
//   - w: a window, usually a window.Window
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithWindow(w EventSource) EngineBuilderOption {
	return func(e *engine) {
		e.window = w
	}
}

// WithDevice sets the GPU device the engine renders through. Required.
//
// Parameters:
//   - d: a device, usually a renderer.Renderer
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithDevice(d gpu.Device) EngineBuilderOption {
	return func(e *engine) {
		e.device = d
	}
}

// WithCameraDescriptor sets the camera configuration record.
// The aspect ratio is always overridden by the window's framebuffer size.
//
// Parameters:
//   - desc: the camera configuration
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCameraDescriptor(desc camera.CameraDescriptor) EngineBuilderOption {
	return func(e *engine) {
		e.cameraDesc = desc
	}
}

// WithCameraOptions appends options applied to the camera controller after the descriptor.
//
// Parameters:
//   - options: camera controller options
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithCameraOptions(options ...camera.CameraControllerOption) EngineBuilderOption {
	return func(e *engine) {
		e.cameraOptions = append(e.cameraOptions, options...)
	}
}

// WithLight attaches a point light whose record is uploaded to gpu.UniformLight every frame.
//
// Parameters:
//   - l: the light
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLight(l light.Light) EngineBuilderOption {
	return func(e *engine) {
		e.light = l
	}
}

// WithUpdateCallback sets a function called once per rendered frame, after input and resize
// handling and before uniforms are uploaded.
//
// Parameters:
//   - callback: receives the iteration's delta time in seconds
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithUpdateCallback(callback func(deltaTime float32)) EngineBuilderOption {
	return func(e *engine) {
		e.updateCallback = callback
	}
}

// WithReleaseCallback sets a function called once during shutdown, before the depth target
// and the device are released. Scenes use it to free the GPU objects they created on the device.
//
// Parameters:
//   - callback: the release function
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithReleaseCallback(callback func()) EngineBuilderOption {
	return func(e *engine) {
		e.releaseCallback = callback
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}
