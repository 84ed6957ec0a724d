package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraDescriptor is the configuration record a CameraController is built from.
// Angles are in degrees. It carries no behavior.
type CameraDescriptor struct {
	// AspectRatio is the viewport width divided by its height.
	AspectRatio float32
	// FovY is the vertical field of view in degrees.
	FovY float32
	// ZNear and ZFar are the clipping plane distances.
	ZNear, ZFar float32

	// Position is the starting world-space eye position.
	Position mgl32.Vec3
	// Direction is the starting facing vector. The controller derives its facing
	// vector from Yaw and Pitch; Direction is informational only.
	Direction mgl32.Vec3
	// Up is the fixed world up vector.
	Up mgl32.Vec3

	// Speed is the movement speed in world units per second.
	Speed float32
	// Yaw and Pitch are the starting orientation angles in degrees.
	Yaw, Pitch float32
	// MouseSensitivity scales raw pointer deltas into degrees.
	MouseSensitivity float32
}

// DefaultCameraDescriptor returns the descriptor used by the sample scenes: a camera three units
// back from the origin looking down -Z with a 45° vertical field of view.
//
// Returns:
//   - CameraDescriptor: the default configuration
func DefaultCameraDescriptor() CameraDescriptor {
	return CameraDescriptor{
		AspectRatio:      16.0 / 9.0,
		FovY:             45.0,
		ZNear:            0.1,
		ZFar:             100.0,
		Position:         mgl32.Vec3{0, 0, 3},
		Direction:        mgl32.Vec3{0, 0, -1},
		Up:               mgl32.Vec3{0, 1, 0},
		Speed:            10.0,
		Yaw:              -90.0,
		Pitch:            0.0,
		MouseSensitivity: 0.1,
	}
}
