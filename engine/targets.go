package engine

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/gpu"
)

// viewportTargets pairs the configured surface size with a depth attachment of the same size.
type viewportTargets struct {
	width  int
	height int
	depth  gpu.DepthTarget
}

// matches reports whether the targets already have the given size.
func (t *viewportTargets) matches(width, height int) bool {
	return t.depth != nil && t.width == width && t.height == height
}

// release frees the depth attachment.
func (t *viewportTargets) release() {
	if t.depth != nil {
		t.depth.Release()
		t.depth = nil
	}
}

// rebuildTargets reconfigures the surface and then recreates the depth attachment at the same
// size, and updates the camera aspect ratio. The old depth attachment is released only once the
// new one exists, so a failure leaves no half-built pair behind: it is fatal either way.
//
// Parameters:
//   - width, height: new size in pixels (both > 0)
//
// Returns:
//   - error: a fatal surface or depth error
func (e *engine) rebuildTargets(width, height int) error {
	if err := e.device.ConfigureSurface(width, height); err != nil {
		return fmt.Errorf("configure surface %dx%d: %w", width, height, err)
	}
	depth, err := e.device.CreateDepthTarget(width, height)
	if err != nil {
		return fmt.Errorf("create depth target %dx%d: %w", width, height, err)
	}

	e.targets.release()
	e.targets = viewportTargets{width: width, height: height, depth: depth}
	e.camera.SetAspectRatio(float32(width) / float32(height))

	common.Logger().Info("viewport targets rebuilt", "width", width, "height", height)
	return nil
}
