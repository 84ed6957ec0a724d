package light

import "github.com/go-gl/mathgl/mgl32"

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	position mgl32.Vec3

	ambient  mgl32.Vec4
	diffuse  mgl32.Vec4
	specular mgl32.Vec4

	// Attenuation terms: 1 / (constant + linear*d + quadratic*d²)
	constant  float32
	linear    float32
	quadratic float32
}

// Light is a point light evaluated with the Phong model. It is uploaded once per frame
// into the light uniform slot and is owned by the engine loop (not safe for concurrent use).
type Light interface {
	// Position returns the world-space position of the light.
	//
	// Returns:
	//   - mgl32.Vec3: position
	Position() mgl32.Vec3

	// SetPosition moves the light.
	//
	// Parameters:
	//   - position: world-space position
	SetPosition(position mgl32.Vec3)

	// Ambient returns the ambient RGBA contribution.
	Ambient() mgl32.Vec4

	// Diffuse returns the diffuse RGBA contribution.
	Diffuse() mgl32.Vec4

	// Specular returns the specular RGBA contribution.
	Specular() mgl32.Vec4

	// Attenuation returns the constant, linear and quadratic attenuation terms.
	//
	// Returns:
	//   - constant, linear, quadratic: the attenuation coefficients
	Attenuation() (constant, linear, quadratic float32)

	// AttenuationAt evaluates the attenuation factor at a distance from the light.
	//
	// Parameters:
	//   - distance: distance in world units
	//
	// Returns:
	//   - float32: the factor in (0, 1] for well-formed coefficients
	AttenuationAt(distance float32) float32

	// GPULight packs the light into its uniform record.
	//
	// Returns:
	//   - GPUPointLight: the uniform record
	GPULight() GPUPointLight
}

var _ Light = &lightImpl{}

// NewPointLight creates a point light. Defaults reproduce the classic Phong tutorial light:
// a white light at (1.2, 1.0, 2.0) with a 50 unit attenuation range.
//
// Parameters:
//   - options: functional options to configure the light
//
// Returns:
//   - Light: the newly created light
func NewPointLight(options ...LightBuilderOption) Light {
	l := &lightImpl{
		position:  mgl32.Vec3{1.2, 1.0, 2.0},
		ambient:   mgl32.Vec4{0.2, 0.2, 0.2, 1.0},
		diffuse:   mgl32.Vec4{0.5, 0.5, 0.5, 1.0},
		specular:  mgl32.Vec4{1.0, 1.0, 1.0, 1.0},
		constant:  1.0,
		linear:    0.09,
		quadratic: 0.032,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *lightImpl) Position() mgl32.Vec3 {
	return l.position
}

func (l *lightImpl) SetPosition(position mgl32.Vec3) {
	l.position = position
}

func (l *lightImpl) Ambient() mgl32.Vec4 {
	return l.ambient
}

func (l *lightImpl) Diffuse() mgl32.Vec4 {
	return l.diffuse
}

func (l *lightImpl) Specular() mgl32.Vec4 {
	return l.specular
}

func (l *lightImpl) Attenuation() (constant, linear, quadratic float32) {
	return l.constant, l.linear, l.quadratic
}

func (l *lightImpl) AttenuationAt(distance float32) float32 {
	return 1.0 / (l.constant + l.linear*distance + l.quadratic*distance*distance)
}

func (l *lightImpl) GPULight() GPUPointLight {
	return GPUPointLight{
		Ambient:   [4]float32(l.ambient),
		Diffuse:   [4]float32(l.diffuse),
		Specular:  [4]float32(l.specular),
		Position:  [3]float32(l.position),
		Constant:  l.constant,
		Linear:    l.linear,
		Quadratic: l.quadratic,
	}
}
