package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

func (r *renderer) ConfigureSurface(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	capabilities := r.surface.GetCapabilities(r.adapter)
	if len(capabilities.AlphaModes) == 0 {
		return ErrNoSurfaceFormat
	}
	presentMode := selectPresentMode(r.presentMode, capabilities.PresentModes)

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      r.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: presentMode,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	r.releaseMSAA()
	if r.sampleCount > 1 {
		// The render pass draws into the MSAA texture and resolves into the swapchain view.
		tex, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
			Label: "MSAA Texture",
			Size: wgpu.Extent3D{
				Width:              uint32(width),
				Height:             uint32(height),
				DepthOrArrayLayers: 1,
			},
			MipLevelCount: 1,
			SampleCount:   uint32(r.sampleCount),
			Dimension:     wgpu.TextureDimension2D,
			Format:        r.surfaceFormat,
			Usage:         wgpu.TextureUsageRenderAttachment,
		})
		if err != nil {
			return fmt.Errorf("create msaa texture: %w", err)
		}
		view, err := tex.CreateView(nil)
		if err != nil {
			tex.Release()
			return fmt.Errorf("create msaa texture view: %w", err)
		}
		r.msaaTexture, r.msaaView = tex, view
	}

	common.Logger().Debug("surface configured", "width", width, "height", height, "present_mode", presentMode)
	return nil
}

func (r *renderer) CreateDepthTarget(width, height int) (gpu.DepthTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	// Depth texture sample count must match the color attachment.
	tex, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   uint32(r.sampleCount),
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		return nil, fmt.Errorf("create depth texture: %w", err)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("create depth texture view: %w", err)
	}
	return &depthTarget{texture: tex, view: view, width: width, height: height}, nil
}

func (r *renderer) AcquireFrame() (gpu.Frame, error) {
	// Acquiring twice without presenting makes wgpu-native report
	// "Surface image is already acquired".
	if r.frameHeld {
		return nil, ErrFrameHeld
	}

	tex, err := r.surface.GetCurrentTexture()
	if err != nil {
		return nil, classifyAcquireError(err)
	}
	if missingSurfaceTexture(tex) {
		return nil, fmt.Errorf("%w: surface returned no texture", gpu.ErrSurfaceOutdated)
	}
	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("create surface view: %w", err)
	}

	r.frameHeld = true
	return &surfaceFrame{
		texture: tex,
		view:    view,
		width:   int(tex.GetWidth()),
		height:  int(tex.GetHeight()),
	}, nil
}

func (r *renderer) WriteUniform(slot gpu.UniformSlot, data []byte) error {
	buf := r.uniforms[slot]
	if buf == nil {
		return fmt.Errorf("%w: %s", ErrUnknownUniform, slot)
	}
	r.queue.WriteBuffer(buf, 0, data)
	return nil
}

func (r *renderer) Record(frame gpu.Frame, depth gpu.DepthTarget) (gpu.CommandBuffer, error) {
	f, ok := frame.(*surfaceFrame)
	if !ok {
		return nil, fmt.Errorf("%w: frame %T", ErrForeignTarget, frame)
	}
	d, ok := depth.(*depthTarget)
	if !ok {
		return nil, fmt.Errorf("%w: depth %T", ErrForeignTarget, depth)
	}

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("create command encoder: %w", err)
	}
	defer encoder.Release()

	pass := encoder.BeginRenderPass(r.renderPassDescriptor(f.view, d.view))
	for _, drawer := range r.drawers {
		drawer.Draw(pass)
	}
	pass.End()
	pass.Release()

	buf, err := encoder.Finish(nil)
	if err != nil {
		return nil, fmt.Errorf("finish command encoder: %w", err)
	}
	return &commandBuffer{buffer: buf}, nil
}

// renderPassDescriptor builds the main pass: clear color and depth, draw into the frame
// directly or into the MSAA texture resolved into the frame.
func (r *renderer) renderPassDescriptor(frameView, depthView *wgpu.TextureView) *wgpu.RenderPassDescriptor {
	color := wgpu.RenderPassColorAttachment{
		View:       frameView,
		LoadOp:     wgpu.LoadOpClear,
		StoreOp:    wgpu.StoreOpStore,
		ClearValue: r.clearColor,
	}
	if r.msaaView != nil {
		color.View = r.msaaView
		color.ResolveTarget = frameView
		color.StoreOp = wgpu.StoreOpDiscard // Don't store MSAA data, just resolve
	}
	return &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{color},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1.0,
		},
	}
}

func (r *renderer) Submit(commands gpu.CommandBuffer) error {
	cb, ok := commands.(*commandBuffer)
	if !ok {
		return fmt.Errorf("%w: commands %T", ErrForeignTarget, commands)
	}
	r.queue.Submit(cb.buffer)
	cb.Release()
	return nil
}

func (r *renderer) Present(frame gpu.Frame) error {
	f, ok := frame.(*surfaceFrame)
	if !ok {
		return fmt.Errorf("%w: frame %T", ErrForeignTarget, frame)
	}
	r.surface.Present()
	f.release()
	r.frameHeld = false
	return nil
}

func (r *renderer) Release() {
	for slot, buf := range r.uniforms {
		buf.Release()
		delete(r.uniforms, slot)
	}
	r.releaseMSAA()
	if r.queue != nil {
		r.queue.Release()
		r.queue = nil
	}
	if r.device != nil {
		r.device.Release()
		r.device = nil
	}
	if r.adapter != nil {
		r.adapter.Release()
		r.adapter = nil
	}
	if r.surface != nil {
		r.surface.Release()
		r.surface = nil
	}
	if r.instance != nil {
		r.instance.Release()
		r.instance = nil
	}
}

func (r *renderer) releaseMSAA() {
	if r.msaaView != nil {
		r.msaaView.Release()
		r.msaaView = nil
	}
	if r.msaaTexture != nil {
		r.msaaTexture.Release()
		r.msaaTexture = nil
	}
}
