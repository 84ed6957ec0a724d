package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
)

func (r *renderer) RegisterPipeline(p pipeline.Pipeline, layouts ...*wgpu.BindGroupLayout) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("register %s: %w", p.PipelineKey(), err)
	}

	vs, err := r.device.CreateShaderModule(p.VertexShader().ModuleDescriptor())
	if err != nil {
		return fmt.Errorf("create %s vertex module: %w", p.PipelineKey(), err)
	}
	defer vs.Release()
	fs, err := r.device.CreateShaderModule(p.FragmentShader().ModuleDescriptor())
	if err != nil {
		return fmt.Errorf("create %s fragment module: %w", p.PipelineKey(), err)
	}
	defer fs.Release()

	pipelineLayout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            p.PipelineKey(),
		BindGroupLayouts: layouts,
	})
	if err != nil {
		return fmt.Errorf("create %s pipeline layout: %w", p.PipelineKey(), err)
	}
	defer pipelineLayout.Release()

	created, err := r.device.CreateRenderPipeline(p.Descriptor(pipelineLayout, vs, fs, pipeline.Target{
		ColorFormat: r.surfaceFormat,
		DepthFormat: DepthFormat,
		SampleCount: uint32(r.sampleCount),
	}))
	if err != nil {
		return fmt.Errorf("create %s render pipeline: %w", p.PipelineKey(), err)
	}
	p.SetRenderPipeline(created)
	return nil
}

func (r *renderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	vb, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: provider.Label() + " Vertex Buffer",
		Size:  uint64(len(vertexData)),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create %s vertex buffer: %w", provider.Label(), err)
	}
	r.queue.WriteBuffer(vb, 0, vertexData)

	ib, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: provider.Label() + " Index Buffer",
		Size:  uint64(len(indexData)),
		Usage: wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		vb.Release()
		return fmt.Errorf("create %s index buffer: %w", provider.Label(), err)
	}
	r.queue.WriteBuffer(ib, 0, indexData)

	provider.SetMesh(vb, ib, indexCount)
	return nil
}

func (r *renderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, layout *wgpu.BindGroupLayout, bufferSizes map[int]uint64) error {
	for binding, size := range bufferSizes {
		if provider.Buffer(binding) != nil {
			continue
		}
		buf, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
			Label: fmt.Sprintf("%s Binding %d", provider.Label(), binding),
			Size:  size,
			Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
		})
		if err != nil {
			return fmt.Errorf("create %s binding %d buffer: %w", provider.Label(), binding, err)
		}
		provider.SetBuffer(binding, buf)
	}

	entries := make([]wgpu.BindGroupEntry, 0, len(bufferSizes))
	for binding := range len(bufferSizes) {
		buf := provider.Buffer(binding)
		if buf == nil {
			return fmt.Errorf("%s: bindings must be contiguous from 0, missing %d", provider.Label(), binding)
		}
		entries = append(entries, wgpu.BindGroupEntry{
			Binding: uint32(binding),
			Buffer:  buf,
			Offset:  0,
			Size:    wgpu.WholeSize,
		})
	}

	bg, err := r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   provider.Label() + " Bind Group",
		Layout:  layout,
		Entries: entries,
	})
	if err != nil {
		return fmt.Errorf("create %s bind group: %w", provider.Label(), err)
	}
	provider.SetBindGroupLayout(layout)
	provider.SetBindGroup(bg)
	return nil
}

func (r *renderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	for _, w := range writes {
		buf := w.Provider.Buffer(w.Binding)
		if buf == nil {
			continue
		}
		r.queue.WriteBuffer(buf, w.Offset, w.Data)
	}
}

// UniformLayoutEntry describes a uniform buffer binding visible to both shader stages.
//
// Parameters:
//   - binding: the binding index
//   - size: the minimum binding size in bytes
//
// Returns:
//   - wgpu.BindGroupLayoutEntry: the layout entry
func UniformLayoutEntry(binding uint32, size uint64) wgpu.BindGroupLayoutEntry {
	return wgpu.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
		Buffer: wgpu.BufferBindingLayout{
			Type:           wgpu.BufferBindingTypeUniform,
			MinBindingSize: size,
		},
	}
}
