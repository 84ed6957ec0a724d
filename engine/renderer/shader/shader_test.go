package shader

import (
	"errors"
	"strings"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

const structs = "struct A { x: f32, }"

const body = `
@vertex
fn vs_main(@location(0) p: vec3<f32>) -> @builtin(position) vec4<f32> { return vec4<f32>(p, 1.0); }

@fragment
fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(1.0); }
`

func TestNewShaderComposesSource(t *testing.T) {
	layout := wgpu.VertexBufferLayout{ArrayStride: 12}
	s, err := NewShader("test", ShaderTypeVertex, WithSource(structs, body), WithVertexLayouts(layout))
	if err != nil {
		t.Fatalf("NewShader: %v", err)
	}
	if !strings.HasPrefix(s.Source(), structs) {
		t.Errorf("Source() does not start with the struct fragment: %q", s.Source())
	}
	if s.EntryPoint() != "vs_main" {
		t.Errorf("EntryPoint() = %q, want vs_main", s.EntryPoint())
	}
	if len(s.VertexLayouts()) != 1 || s.VertexLayouts()[0].ArrayStride != 12 {
		t.Errorf("VertexLayouts() = %v", s.VertexLayouts())
	}
	desc := s.ModuleDescriptor()
	if desc.Label != "test" || desc.WGSLDescriptor.Code != s.Source() {
		t.Errorf("ModuleDescriptor() = %+v", desc)
	}
}

func TestNewShaderEntryPoints(t *testing.T) {
	tests := []struct {
		name       string
		shaderType ShaderType
		options    []ShaderBuilderOption
		want       string
		err        error
	}{
		{"fragment default", ShaderTypeFragment, nil, "fs_main", nil},
		{"override", ShaderTypeVertex, []ShaderBuilderOption{WithEntryPoint("fs_main")}, "fs_main", nil},
		{"empty override keeps default", ShaderTypeVertex, []ShaderBuilderOption{WithEntryPoint("")}, "vs_main", nil},
		{"missing", ShaderTypeVertex, []ShaderBuilderOption{WithEntryPoint("main")}, "", ErrMissingEntryPoint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := append([]ShaderBuilderOption{WithSource(body)}, tt.options...)
			s, err := NewShader("test", tt.shaderType, options...)
			if !errors.Is(err, tt.err) {
				t.Fatalf("err = %v, want %v", err, tt.err)
			}
			if err == nil && s.EntryPoint() != tt.want {
				t.Errorf("EntryPoint() = %q, want %q", s.EntryPoint(), tt.want)
			}
		})
	}
}

func TestNewShaderEmptySource(t *testing.T) {
	if _, err := NewShader("empty", ShaderTypeVertex, WithSource("  ", "")); !errors.Is(err, ErrEmptySource) {
		t.Errorf("err = %v, want ErrEmptySource", err)
	}
}
