package light

import "github.com/go-gl/mathgl/mgl32"

// LightBuilderOption is a functional option for configuring a light during NewPointLight.
type LightBuilderOption func(*lightImpl)

// WithPosition sets the light's world-space position.
//
// Parameters:
//   - position: world-space position
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithPosition(position mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.position = position
	}
}

// WithColor sets the ambient, diffuse and specular terms from a single RGB color, scaled
// the way the tutorial scenes do it (ambient 0.2, diffuse 0.5, specular 1.0).
//
// Parameters:
//   - color: RGB color
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithColor(color mgl32.Vec3) LightBuilderOption {
	return func(l *lightImpl) {
		l.ambient = color.Mul(0.2).Vec4(1)
		l.diffuse = color.Mul(0.5).Vec4(1)
		l.specular = color.Vec4(1)
	}
}

// WithPhong sets the three Phong terms explicitly.
//
// Parameters:
//   - ambient, diffuse, specular: RGBA contributions
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithPhong(ambient, diffuse, specular mgl32.Vec4) LightBuilderOption {
	return func(l *lightImpl) {
		l.ambient = ambient
		l.diffuse = diffuse
		l.specular = specular
	}
}

// WithAttenuation sets the constant, linear and quadratic attenuation coefficients.
//
// Parameters:
//   - constant, linear, quadratic: attenuation coefficients
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithAttenuation(constant, linear, quadratic float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.constant = constant
		l.linear = linear
		l.quadratic = quadratic
	}
}
