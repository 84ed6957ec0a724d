package engine

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-viewport/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewport/engine/gpu"
	"github.com/Carmen-Shannon/oxy-viewport/engine/light"
)

// FrameUniforms is the per-frame payload written to GPU memory before the render pass.
type FrameUniforms struct {
	// Camera holds the projection and view matrices and the eye position.
	Camera camera.GPUCamera
	// Light is nil when no light is attached to the engine.
	Light *light.GPUPointLight
}

// frameUniforms snapshots the current camera and light state.
func (e *engine) frameUniforms() FrameUniforms {
	u := FrameUniforms{Camera: e.camera.GPUCamera()}
	if e.light != nil {
		l := e.light.GPULight()
		u.Light = &l
	}
	return u
}

// writeUniforms uploads the current FrameUniforms.
//
// Returns:
//   - error: a fatal upload error
func (e *engine) writeUniforms() error {
	u := e.frameUniforms()
	if err := e.device.WriteUniform(gpu.UniformCamera, u.Camera.Marshal()); err != nil {
		return fmt.Errorf("write camera uniform: %w", err)
	}
	if u.Light != nil {
		if err := e.device.WriteUniform(gpu.UniformLight, u.Light.Marshal()); err != nil {
			return fmt.Errorf("write light uniform: %w", err)
		}
	}
	return nil
}
