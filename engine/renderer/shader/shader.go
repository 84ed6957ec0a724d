package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// ErrEmptySource is returned by NewShader when no WGSL source was supplied.
	ErrEmptySource = errors.New("shader: empty source")
	// ErrMissingEntryPoint is returned by NewShader when the source does not declare the entry point.
	ErrMissingEntryPoint = errors.New("shader: entry point not found")
)

// ShaderType identifies the pipeline stage a shader entry point runs in.
type ShaderType int

const (
	// ShaderTypeVertex is the vertex shader type, used for vertex processing in render pipelines.
	ShaderTypeVertex ShaderType = iota

	// ShaderTypeFragment is the fragment shader type, used for fragment processing in pair with a vertex shader.
	ShaderTypeFragment
)

// defaultEntryPoint returns the conventional entry point name for the stage.
func (t ShaderType) defaultEntryPoint() string {
	if t == ShaderTypeFragment {
		return "fs_main"
	}
	return "vs_main"
}

// shader is the implementation of the Shader interface.
// It holds the composed WGSL source and the data required for pipeline creation.
type shader struct {
	key           string
	shaderType    ShaderType
	parts         []string
	source        string
	entryPoint    string
	vertexLayouts []wgpu.VertexBufferLayout
}

// Shader is one stage of a render pipeline: a WGSL module, its entry point and, for vertex
// shaders, the vertex buffer layouts it consumes.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used for labels and lookups.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Type retrieves the pipeline stage of the shader.
	Type() ShaderType

	// Source retrieves the composed WGSL source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// EntryPoint returns the entry point name for this shader.
	//
	// Returns:
	//   - string: the entry point name (e.g. "vs_main")
	EntryPoint() string

	// VertexLayouts retrieves the vertex buffer layouts consumed by a vertex shader, in slot order.
	VertexLayouts() []wgpu.VertexBufferLayout

	// ModuleDescriptor builds the descriptor used to create the GPU shader module.
	ModuleDescriptor() *wgpu.ShaderModuleDescriptor
}

var _ Shader = &shader{}

// NewShader composes a shader from WGSL fragments. Fragments are joined in order, so shared
// struct definitions must precede the code that uses them.
//
// Parameters:
//   - key: unique identifier, also used as the GPU debug label
//   - shaderType: the pipeline stage
//   - options: functional options (source fragments, entry point, vertex layouts)
//
// Returns:
//   - Shader: the composed shader
//   - error: ErrEmptySource or ErrMissingEntryPoint
func NewShader(key string, shaderType ShaderType, options ...ShaderBuilderOption) (Shader, error) {
	s := &shader{
		key:        key,
		shaderType: shaderType,
		entryPoint: shaderType.defaultEntryPoint(),
	}
	for _, opt := range options {
		opt(s)
	}

	s.source = strings.TrimSpace(strings.Join(s.parts, "\n"))
	if s.source == "" {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, key)
	}
	if !strings.Contains(s.source, "fn "+s.entryPoint+"(") {
		return nil, fmt.Errorf("%w: %s in %s", ErrMissingEntryPoint, s.entryPoint, key)
	}
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Type() ShaderType {
	return s.shaderType
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) EntryPoint() string {
	return s.entryPoint
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) ModuleDescriptor() *wgpu.ShaderModuleDescriptor {
	return &wgpu.ShaderModuleDescriptor{
		Label: s.key,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: s.source,
		},
	}
}
