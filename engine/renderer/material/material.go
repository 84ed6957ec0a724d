package material

import "github.com/go-gl/mathgl/mgl32"

// material is the implementation of the Material interface.
type material struct {
	name      string
	ambient   mgl32.Vec4
	diffuse   mgl32.Vec4
	specular  mgl32.Vec4
	shininess float32
}

// Material defines the Phong surface response of a mesh: how much of the light's ambient,
// diffuse and specular terms each color channel reflects, and the specular exponent.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Ambient retrieves the ambient reflectance.
	Ambient() mgl32.Vec4

	// Diffuse retrieves the diffuse reflectance.
	Diffuse() mgl32.Vec4

	// Specular retrieves the specular reflectance.
	Specular() mgl32.Vec4

	// Shininess retrieves the specular exponent. Always >= 1.
	Shininess() float32

	// GPUMaterial packs the material for upload.
	//
	// Returns:
	//   - GPUMaterial: the uniform record
	GPUMaterial() GPUMaterial
}

var _ Material = &material{}

// NewMaterial creates a new Material with the provided options.
// Defaults to the coral material of the lighting samples: ambient and diffuse (1, 0.5, 0.31),
// specular 0.5 and shininess 32.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		name:      "coral",
		ambient:   mgl32.Vec4{1.0, 0.5, 0.31, 1.0},
		diffuse:   mgl32.Vec4{1.0, 0.5, 0.31, 1.0},
		specular:  mgl32.Vec4{0.5, 0.5, 0.5, 1.0},
		shininess: 32,
	}
	for _, opt := range options {
		opt(m)
	}
	m.shininess = max(m.shininess, 1)
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Ambient() mgl32.Vec4 {
	return m.ambient
}

func (m *material) Diffuse() mgl32.Vec4 {
	return m.diffuse
}

func (m *material) Specular() mgl32.Vec4 {
	return m.specular
}

func (m *material) Shininess() float32 {
	return m.shininess
}

func (m *material) GPUMaterial() GPUMaterial {
	return GPUMaterial{
		Ambient:   m.ambient,
		Diffuse:   m.diffuse,
		Specular:  m.specular,
		Shininess: m.shininess,
	}
}
