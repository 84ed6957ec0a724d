package shader

import "github.com/cogentcore/webgpu/wgpu"

// ShaderBuilderOption is a functional option applied to a shader during construction via NewShader.
type ShaderBuilderOption func(*shader)

// WithSource appends WGSL fragments to the shader source.
//
// Parameters:
//   - parts: WGSL source fragments, joined with newlines
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithSource(parts ...string) ShaderBuilderOption {
	return func(s *shader) {
		s.parts = append(s.parts, parts...)
	}
}

// WithEntryPoint overrides the default entry point ("vs_main" or "fs_main").
//
// Parameters:
//   - entryPoint: the WGSL function name
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithEntryPoint(entryPoint string) ShaderBuilderOption {
	return func(s *shader) {
		if entryPoint != "" {
			s.entryPoint = entryPoint
		}
	}
}

// WithVertexLayouts sets the vertex buffer layouts of a vertex shader, in slot order.
//
// Parameters:
//   - layouts: the vertex buffer layouts
//
// Returns:
//   - ShaderBuilderOption: option function to apply
func WithVertexLayouts(layouts ...wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts = layouts
	}
}
