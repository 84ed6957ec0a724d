package renderer

import (
	"errors"
	"fmt"
	"runtime"
	"slices"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/gpu"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// ErrNoSurfaceDescriptor is returned by NewRenderer when the window has no surface to render into.
	ErrNoSurfaceDescriptor = errors.New("renderer: no surface descriptor")
	// ErrNoSurfaceFormat is returned by NewRenderer when the adapter cannot present to the surface.
	ErrNoSurfaceFormat = errors.New("renderer: surface reports no formats")
	// ErrInvalidSize is returned for zero-area surface or depth sizes.
	ErrInvalidSize = errors.New("renderer: invalid target size")
	// ErrUnknownUniform is returned when writing to a slot without a buffer.
	ErrUnknownUniform = errors.New("renderer: unknown uniform slot")
	// ErrForeignTarget is returned when a frame, depth target or command buffer was not created by this renderer.
	ErrForeignTarget = errors.New("renderer: foreign target")
	// ErrFrameHeld is returned by AcquireFrame while the previous frame has not been presented.
	ErrFrameHeld = errors.New("renderer: previous frame not yet presented")
)

// renderer is the WebGPU implementation of the Renderer interface.
type renderer struct {
	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface
	device   *wgpu.Device
	queue    *wgpu.Queue

	surfaceFormat wgpu.TextureFormat

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	presentMode          PresentMode
	sampleCount          MSAASampleCount
	clearColor           wgpu.Color

	// MSAA color target, recreated with the surface when sampleCount > 1
	msaaTexture *wgpu.Texture
	msaaView    *wgpu.TextureView

	uniforms map[gpu.UniformSlot]*wgpu.Buffer
	drawers  []Drawer

	frameHeld bool
}

// Renderer is the GPU device used by the engine plus the setup helpers scenes need to build
// pipelines and buffers against the same device.
type Renderer interface {
	gpu.Device

	// Device returns the WebGPU device.
	Device() *wgpu.Device

	// Queue returns the device queue.
	Queue() *wgpu.Queue

	// SurfaceFormat returns the color format of the presentable surface.
	SurfaceFormat() wgpu.TextureFormat

	// SampleCount returns the MSAA sample count pipelines must be created with.
	SampleCount() uint32

	// CreateUniformBuffer creates a uniform buffer and registers it under slot, replacing any
	// previous buffer for that slot.
	//
	// Parameters:
	//   - slot: the uniform slot the engine writes to
	//   - size: buffer size in bytes
	//
	// Returns:
	//   - *wgpu.Buffer: the created buffer
	//   - error: an error if the buffer could not be created
	CreateUniformBuffer(slot gpu.UniformSlot, size uint64) (*wgpu.Buffer, error)

	// UniformBuffer returns the buffer registered under slot, or nil.
	UniformBuffer(slot gpu.UniformSlot) *wgpu.Buffer

	// AddDrawer appends a drawer that runs inside every recorded render pass, in insertion order.
	AddDrawer(d Drawer)

	// RegisterPipeline creates the shader modules, pipeline layout and render pipeline for p
	// against the surface format, DepthFormat and the MSAA sample count, and stores the result on p.
	//
	// Parameters:
	//   - p: the pipeline configuration
	//   - layouts: bind group layouts in group order
	//
	// Returns:
	//   - error: an error if validation or any GPU object creation fails
	RegisterPipeline(p pipeline.Pipeline, layouts ...*wgpu.BindGroupLayout) error

	// InitMeshBuffers uploads vertex and index data and stores the buffers on provider.
	//
	// Parameters:
	//   - provider: the mesh provider
	//   - vertexData, indexData: the raw mesh bytes
	//   - indexCount: the number of uint32 indices
	//
	// Returns:
	//   - error: an error if a buffer could not be created
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error

	// InitBindGroup creates uniform buffers for the bindings provider does not hold yet and a bind
	// group over bindings 0..len(bufferSizes)-1.
	//
	// Parameters:
	//   - provider: the provider receiving the buffers and bind group
	//   - layout: the bind group layout
	//   - bufferSizes: buffer size in bytes per binding index
	//
	// Returns:
	//   - error: an error if a buffer or the bind group could not be created
	InitBindGroup(provider bind_group_provider.BindGroupProvider, layout *wgpu.BindGroupLayout, bufferSizes map[int]uint64) error

	// WriteBuffers writes all staged buffer writes to the GPU queue.
	// Writes targeting a binding without a buffer are skipped.
	//
	// Parameters:
	//   - writes: a slice of BufferWrite structs describing the data to write
	WriteBuffers(writes []bind_group_provider.BufferWrite)
}

var _ Renderer = &renderer{}

// NewRenderer acquires a WebGPU instance, adapter, device and queue for the given surface.
// Blocks until the device is available. The surface is not configured until ConfigureSurface.
//
// Parameters:
//   - surfaceDescriptor: the platform-specific surface descriptor, typically from window.Window.SurfaceDescriptor()
//   - options: variadic list of RendererBuilderOption functions to configure the Renderer
//
// Returns:
//   - Renderer: the renderer
//   - error: a fatal acquisition error
func NewRenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, options ...RendererBuilderOption) (Renderer, error) {
	if surfaceDescriptor == nil {
		return nil, ErrNoSurfaceDescriptor
	}
	runtime.LockOSThread()

	r := &renderer{
		presentMode: PresentModeVSync,
		sampleCount: MSAAOff,
		clearColor:  wgpu.Color{R: 0.1, G: 0.1, B: 0.1, A: 1.0},
		uniforms:    make(map[gpu.UniformSlot]*wgpu.Buffer),
	}
	// Apply options first so config flags (e.g. forceFallbackAdapter) are
	// available before requesting a GPU adapter.
	for _, opt := range options {
		opt(r)
	}

	r.instance = wgpu.CreateInstance(nil)
	r.surface = r.instance.CreateSurface(surfaceDescriptor)

	a, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		ForceFallbackAdapter: r.forceFallbackAdapter,
		CompatibleSurface:    r.surface,
	})
	if err != nil {
		r.Release()
		return nil, fmt.Errorf("request adapter: %w", err)
	}
	r.adapter = a

	d, err := a.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Main Device",
	})
	if err != nil {
		r.Release()
		return nil, fmt.Errorf("request device: %w", err)
	}
	r.device = d
	r.queue = d.GetQueue()

	capabilities := r.surface.GetCapabilities(r.adapter)
	if len(capabilities.Formats) == 0 {
		r.Release()
		return nil, ErrNoSurfaceFormat
	}
	r.surfaceFormat = capabilities.Formats[0]

	common.Logger().Info("renderer initialized",
		"format", r.surfaceFormat,
		"present_mode", r.presentMode,
		"msaa", r.sampleCount,
		"fallback_adapter", r.forceFallbackAdapter,
	)
	return r, nil
}

func (r *renderer) Device() *wgpu.Device {
	return r.device
}

func (r *renderer) Queue() *wgpu.Queue {
	return r.queue
}

func (r *renderer) SurfaceFormat() wgpu.TextureFormat {
	return r.surfaceFormat
}

func (r *renderer) SampleCount() uint32 {
	return uint32(r.sampleCount)
}

func (r *renderer) AddDrawer(d Drawer) {
	if d != nil {
		r.drawers = append(r.drawers, d)
	}
}

func (r *renderer) CreateUniformBuffer(slot gpu.UniformSlot, size uint64) (*wgpu.Buffer, error) {
	buf, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: string(slot) + " Uniform Buffer",
		Size:  size,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s uniform buffer: %w", slot, err)
	}
	if old := r.uniforms[slot]; old != nil {
		old.Release()
	}
	r.uniforms[slot] = buf
	return buf, nil
}

func (r *renderer) UniformBuffer(slot gpu.UniformSlot) *wgpu.Buffer {
	return r.uniforms[slot]
}

// selectPresentMode returns the requested mode when the surface supports it and FIFO otherwise.
// FIFO is the only mode every WebGPU surface must support.
func selectPresentMode(requested PresentMode, supported []wgpu.PresentMode) wgpu.PresentMode {
	mode := requested.wgpuPresentMode()
	if slices.Contains(supported, mode) {
		return mode
	}
	return wgpu.PresentModeFifo
}
