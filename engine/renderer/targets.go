package renderer

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Carmen-Shannon/oxy-viewport/engine/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// surfaceFrame is an acquired swapchain image.
type surfaceFrame struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	width   int
	height  int
}

func (f *surfaceFrame) Width() int  { return f.width }
func (f *surfaceFrame) Height() int { return f.height }

func (f *surfaceFrame) release() {
	if f.view != nil {
		f.view.Release()
		f.view = nil
	}
	if f.texture != nil {
		f.texture.Release()
		f.texture = nil
	}
}

// depthTarget is a depth texture and its view.
type depthTarget struct {
	texture *wgpu.Texture
	view    *wgpu.TextureView
	width   int
	height  int
}

func (d *depthTarget) Width() int  { return d.width }
func (d *depthTarget) Height() int { return d.height }

func (d *depthTarget) Release() {
	if d.view != nil {
		d.view.Release()
		d.view = nil
	}
	if d.texture != nil {
		d.texture.Release()
		d.texture = nil
	}
}

// commandBuffer wraps a finished command buffer.
type commandBuffer struct {
	buffer *wgpu.CommandBuffer
}

func (c *commandBuffer) Release() {
	if c.buffer != nil {
		c.buffer.Release()
		c.buffer = nil
	}
}

// missingSurfaceTexture reports whether GetCurrentTexture handed back a texture without a handle.
// The wgpu binding drops the surface texture status, so an outdated, lost or timed-out surface
// shows up as a nil error with an empty texture rather than as an error.
func missingSurfaceTexture(tex *wgpu.Texture) bool {
	if tex == nil {
		return true
	}
	ref := reflect.ValueOf(tex).Elem().FieldByName("ref")
	return ref.IsValid() && ref.Kind() == reflect.Pointer && ref.IsNil()
}

// recoverableAcquireStatuses are the surface texture statuses cured by reconfiguring the surface.
var recoverableAcquireStatuses = []string{"outdated", "lost", "timeout"}

// classifyAcquireError maps a GetCurrentTexture validation error to gpu.ErrSurfaceOutdated when
// reconfiguring the surface can fix it. Other failures are returned wrapped.
func classifyAcquireError(err error) error {
	msg := strings.ToLower(err.Error())
	for _, status := range recoverableAcquireStatuses {
		if strings.Contains(msg, status) {
			return fmt.Errorf("%w: %w", gpu.ErrSurfaceOutdated, err)
		}
	}
	return fmt.Errorf("get current texture: %w", err)
}
