package scene

import (
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/go-gl/mathgl/mgl32"
)

// SceneBuilderOption is a functional option for configuring a Scene.
type SceneBuilderOption func(*scene)

// WithCubePositions replaces the lit cube positions.
//
// Parameters:
//   - positions: world positions in draw order
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCubePositions(positions ...mgl32.Vec3) SceneBuilderOption {
	return func(s *scene) {
		s.positions = positions
	}
}

// WithCubeCount draws only the first n default cube positions. n is clamped to
// [0, len(DefaultCubePositions)].
//
// Parameters:
//   - n: the number of cubes
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithCubeCount(n int) SceneBuilderOption {
	return func(s *scene) {
		n = max(0, min(n, len(DefaultCubePositions)))
		s.positions = DefaultCubePositions[:n]
	}
}

// WithMaterial sets the material shared by all lit cubes.
func WithMaterial(m material.Material) SceneBuilderOption {
	return func(s *scene) {
		if m != nil {
			s.material = m
		}
	}
}

// WithLightOrbit makes Update move the light on a horizontal circle around the Y axis.
//
// Parameters:
//   - radius: orbit radius, non-positive disables the orbit
//   - speed: angular speed in radians per second
//
// Returns:
//   - SceneBuilderOption: option function to apply
func WithLightOrbit(radius, speed float32) SceneBuilderOption {
	return func(s *scene) {
		s.orbitRadius = radius
		s.orbitSpeed = speed
	}
}

// WithMarkerScale sets the uniform scale of the light marker cube. Non-positive values are ignored.
func WithMarkerScale(scale float32) SceneBuilderOption {
	return func(s *scene) {
		if scale > 0 {
			s.markerScale = scale
		}
	}
}
