package renderer

import "github.com/cogentcore/webgpu/wgpu"

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing. This is the default.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// wgpuPresentMode maps a PresentMode onto the WebGPU present mode.
func (m PresentMode) wgpuPresentMode() wgpu.PresentMode {
	if m == PresentModeUncapped {
		return wgpu.PresentModeImmediate
	}
	return wgpu.PresentModeFifo
}

// MSAASampleCount controls the number of samples used for multisample anti-aliasing (MSAA).
// Only specific power-of-two values are valid for GPU hardware. WebGPU guarantees support for
// 1 (off) and 4.
type MSAASampleCount uint32

const (
	// MSAAOff disables multisample anti-aliasing (sample count 1). This is the default.
	MSAAOff MSAASampleCount = 1

	// MSAA4x enables 4× multisample anti-aliasing.
	MSAA4x MSAASampleCount = 4
)

// DepthFormat is the format of every depth target created by the renderer.
const DepthFormat = wgpu.TextureFormatDepth32Float

// Drawer encodes draw commands into the frame's render pass.
type Drawer interface {
	// Draw binds pipelines and resources and issues draw calls.
	//
	// Parameters:
	//   - pass: the open render pass of the current frame
	Draw(pass *wgpu.RenderPassEncoder)
}

// DrawerFunc adapts a function to the Drawer interface.
type DrawerFunc func(pass *wgpu.RenderPassEncoder)

func (f DrawerFunc) Draw(pass *wgpu.RenderPassEncoder) {
	f(pass)
}
