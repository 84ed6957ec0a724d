package pipeline

import (
	"errors"

	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// ErrMissingShader is returned by Validate when the vertex or fragment shader is unset.
	ErrMissingShader = errors.New("pipeline: vertex and fragment shaders are required")
	// ErrWrongShaderType is returned by Validate when a shader is bound to the wrong stage.
	ErrWrongShaderType = errors.New("pipeline: shader bound to the wrong stage")
)

// Target describes the attachments a render pipeline draws into.
type Target struct {
	ColorFormat wgpu.TextureFormat
	DepthFormat wgpu.TextureFormat
	SampleCount uint32
}

// pipeline is the implementation of the Pipeline interface.
// It holds the shaders and fixed-function state of a render pipeline and, once registered, the GPU object.
type pipeline struct {
	// pipelineKey is the unique identifier for this pipeline, used for labels and lookups
	pipelineKey string

	vertexShader, fragmentShader shader.Shader

	// renderPipeline is nil until the renderer registers the pipeline
	renderPipeline *wgpu.RenderPipeline

	cullMode wgpu.CullMode
}

// Pipeline defines the interface for a GPU render pipeline: its vertex and fragment shaders and
// the face culling it is created with. Every pipeline draws opaque triangle lists with CCW front faces
// and a less-than depth test with depth writes.
type Pipeline interface {
	// PipelineKey returns the unique key associated with this pipeline.
	//
	// Returns:
	//   - string: the unique key for this pipeline
	PipelineKey() string

	// VertexShader returns the vertex stage.
	VertexShader() shader.Shader

	// FragmentShader returns the fragment stage.
	FragmentShader() shader.Shader

	// RenderPipeline returns the GPU pipeline, or nil before registration.
	RenderPipeline() *wgpu.RenderPipeline

	// SetRenderPipeline stores the GPU pipeline created by the renderer.
	//
	// Parameters:
	//   - rp: the created render pipeline
	SetRenderPipeline(rp *wgpu.RenderPipeline)

	// Validate checks that both stages are set and bound to the right stage.
	//
	// Returns:
	//   - error: ErrMissingShader or ErrWrongShaderType
	Validate() error

	// Descriptor builds the render pipeline descriptor for the given modules and target.
	//
	// Parameters:
	//   - layout: the pipeline layout
	//   - vs, fs: shader modules created from VertexShader and FragmentShader
	//   - target: the color and depth attachments
	//
	// Returns:
	//   - *wgpu.RenderPipelineDescriptor: the descriptor
	Descriptor(layout *wgpu.PipelineLayout, vs, fs *wgpu.ShaderModule, target Target) *wgpu.RenderPipelineDescriptor

	// Release frees the GPU pipeline.
	Release()
}

var _ Pipeline = &pipeline{}

// NewPipeline creates a new render Pipeline with the given key and options.
// Faces are back-culled unless WithCullMode says otherwise.
//
// Parameters:
//   - pipelineKey: the unique key for this pipeline
//   - opts: a variadic list of PipelineBuilderOption functions to configure the pipeline
//
// Returns:
//   - Pipeline: a new Pipeline instance
func NewPipeline(pipelineKey string, opts ...PipelineBuilderOption) Pipeline {
	p := &pipeline{
		pipelineKey: pipelineKey,
		cullMode:    wgpu.CullModeBack,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *pipeline) PipelineKey() string {
	return p.pipelineKey
}

func (p *pipeline) VertexShader() shader.Shader {
	return p.vertexShader
}

func (p *pipeline) FragmentShader() shader.Shader {
	return p.fragmentShader
}

func (p *pipeline) RenderPipeline() *wgpu.RenderPipeline {
	return p.renderPipeline
}

func (p *pipeline) SetRenderPipeline(rp *wgpu.RenderPipeline) {
	p.renderPipeline = rp
}

func (p *pipeline) Validate() error {
	if p.vertexShader == nil || p.fragmentShader == nil {
		return ErrMissingShader
	}
	if p.vertexShader.Type() != shader.ShaderTypeVertex || p.fragmentShader.Type() != shader.ShaderTypeFragment {
		return ErrWrongShaderType
	}
	return nil
}

func (p *pipeline) Descriptor(layout *wgpu.PipelineLayout, vs, fs *wgpu.ShaderModule, target Target) *wgpu.RenderPipelineDescriptor {
	return &wgpu.RenderPipelineDescriptor{
		Label:  p.pipelineKey + " Render Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     vs,
			EntryPoint: p.vertexShader.EntryPoint(),
			Buffers:    p.vertexShader.VertexLayouts(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     fs,
			EntryPoint: p.fragmentShader.EntryPoint(),
			Targets: []wgpu.ColorTargetState{
				{
					Format:    target.ColorFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  p.cullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: max(target.SampleCount, 1),
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            target.DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	}
}

func (p *pipeline) Release() {
	if p.renderPipeline != nil {
		p.renderPipeline.Release()
		p.renderPipeline = nil
	}
}
