package material

import "github.com/go-gl/mathgl/mgl32"

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithColor sets ambient and diffuse reflectance to the same opaque RGB color.
//
// Parameters:
//   - color: the RGB color
//
// Returns:
//   - MaterialBuilderOption: a function that applies the color option to a material
func WithColor(color mgl32.Vec3) MaterialBuilderOption {
	return func(m *material) {
		m.ambient = color.Vec4(1)
		m.diffuse = color.Vec4(1)
	}
}

// WithPhong sets all three reflectance terms explicitly.
//
// Parameters:
//   - ambient, diffuse, specular: RGBA reflectance
//
// Returns:
//   - MaterialBuilderOption: a function that applies the reflectance option to a material
func WithPhong(ambient, diffuse, specular mgl32.Vec4) MaterialBuilderOption {
	return func(m *material) {
		m.ambient = ambient
		m.diffuse = diffuse
		m.specular = specular
	}
}

// WithShininess sets the specular exponent. Values below 1 are raised to 1.
//
// Parameters:
//   - shininess: the specular exponent
//
// Returns:
//   - MaterialBuilderOption: a function that applies the shininess option to a material
func WithShininess(shininess float32) MaterialBuilderOption {
	return func(m *material) {
		m.shininess = shininess
	}
}
