package scene

import (
	_ "embed"
	"fmt"

	"github.com/Carmen-Shannon/oxy-viewport/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewport/engine/light"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/shader"
)

//go:embed assets/lit.wgsl
var litSource string

//go:embed assets/light_cube.wgsl
var lightCubeSource string

const (
	// LitPipelineKey identifies the Phong-lit cube pipeline.
	LitPipelineKey = "lit_cube"
	// LightCubePipelineKey identifies the unlit light marker pipeline.
	LightCubePipelineKey = "light_cube"
)

// newPipeline composes the struct definitions with body and builds a vertex/fragment pipeline.
//
// Parameters:
//   - key: the pipeline key
//   - parts: WGSL fragments, struct definitions first
//
// Returns:
//   - pipeline.Pipeline: the pipeline configuration, not yet registered with a renderer
//   - error: an error if either stage could not be composed
func newPipeline(key string, parts ...string) (pipeline.Pipeline, error) {
	vs, err := shader.NewShader(key+"_vs", shader.ShaderTypeVertex,
		shader.WithSource(parts...),
		shader.WithVertexLayouts(VertexBufferLayout()),
	)
	if err != nil {
		return nil, fmt.Errorf("compose %s: %w", key, err)
	}
	fs, err := shader.NewShader(key+"_fs", shader.ShaderTypeFragment, shader.WithSource(parts...))
	if err != nil {
		return nil, fmt.Errorf("compose %s: %w", key, err)
	}
	return pipeline.NewPipeline(key,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
	), nil
}

// LitPipeline builds the pipeline for lit cubes. Bind groups: 0 camera, 1 model+material, 2 light.
//
// Returns:
//   - pipeline.Pipeline: the pipeline configuration
//   - error: a composition error
func LitPipeline() (pipeline.Pipeline, error) {
	return newPipeline(LitPipelineKey,
		camera.GPUCameraSource,
		GPUModelSource,
		material.GPUMaterialSource,
		light.GPUPointLightSource,
		litSource,
	)
}

// LightCubePipeline builds the pipeline for the light marker. Bind groups: 0 camera, 1 model+material.
func LightCubePipeline() (pipeline.Pipeline, error) {
	return newPipeline(LightCubePipelineKey,
		camera.GPUCameraSource,
		GPUModelSource,
		material.GPUMaterialSource,
		lightCubeSource,
	)
}
