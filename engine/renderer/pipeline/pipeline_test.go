package pipeline

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

const src = `
@vertex fn vs_main() -> @builtin(position) vec4<f32> { return vec4<f32>(0.0); }
@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(1.0); }
`

func mustShader(t *testing.T, st shader.ShaderType, options ...shader.ShaderBuilderOption) shader.Shader {
	t.Helper()
	s, err := shader.NewShader("test", st, append([]shader.ShaderBuilderOption{shader.WithSource(src)}, options...)...)
	if err != nil {
		t.Fatalf("NewShader: %v", err)
	}
	return s
}

func TestValidate(t *testing.T) {
	vs := mustShader(t, shader.ShaderTypeVertex)
	fs := mustShader(t, shader.ShaderTypeFragment)

	tests := []struct {
		name string
		opts []PipelineBuilderOption
		err  error
	}{
		{"complete", []PipelineBuilderOption{WithVertexShader(vs), WithFragmentShader(fs)}, nil},
		{"no fragment", []PipelineBuilderOption{WithVertexShader(vs)}, ErrMissingShader},
		{"swapped", []PipelineBuilderOption{WithVertexShader(fs), WithFragmentShader(vs)}, ErrWrongShaderType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := NewPipeline("p", tt.opts...).Validate(); !errors.Is(err, tt.err) {
				t.Errorf("Validate() = %v, want %v", err, tt.err)
			}
		})
	}
}

func TestDescriptor(t *testing.T) {
	layout := wgpu.VertexBufferLayout{ArrayStride: 24, StepMode: wgpu.VertexStepModeVertex}
	p := NewPipeline("lit",
		WithVertexShader(mustShader(t, shader.ShaderTypeVertex, shader.WithVertexLayouts(layout))),
		WithFragmentShader(mustShader(t, shader.ShaderTypeFragment)),
		WithCullMode(wgpu.CullModeNone),
	)

	d := p.Descriptor(nil, nil, nil, Target{
		ColorFormat: wgpu.TextureFormatBGRA8UnormSrgb,
		DepthFormat: wgpu.TextureFormatDepth32Float,
		SampleCount: 0,
	})
	if d.Label != "lit Render Pipeline" {
		t.Errorf("Label = %q", d.Label)
	}
	if d.Vertex.EntryPoint != "vs_main" || d.Fragment.EntryPoint != "fs_main" {
		t.Errorf("entry points = %q, %q", d.Vertex.EntryPoint, d.Fragment.EntryPoint)
	}
	if len(d.Vertex.Buffers) != 1 || d.Vertex.Buffers[0].ArrayStride != 24 {
		t.Errorf("Buffers = %v", d.Vertex.Buffers)
	}
	if d.Multisample.Count != 1 {
		t.Errorf("Multisample.Count = %d, want 1 for a zero sample count", d.Multisample.Count)
	}
	if d.Primitive.CullMode != wgpu.CullModeNone || d.Primitive.FrontFace != wgpu.FrontFaceCCW ||
		d.Primitive.Topology != wgpu.PrimitiveTopologyTriangleList {
		t.Errorf("Primitive = %+v", d.Primitive)
	}
	if d.DepthStencil.Format != wgpu.TextureFormatDepth32Float || !d.DepthStencil.DepthWriteEnabled ||
		d.DepthStencil.DepthCompare != wgpu.CompareFunctionLess {
		t.Errorf("DepthStencil = %+v", d.DepthStencil)
	}
	if d.Fragment.Targets[0].Format != wgpu.TextureFormatBGRA8UnormSrgb || d.Fragment.Targets[0].Blend != nil ||
		d.Fragment.Targets[0].WriteMask != wgpu.ColorWriteMaskAll {
		t.Errorf("Targets = %+v", d.Fragment.Targets)
	}
}
