package camera

import "github.com/go-gl/mathgl/mgl32"

// Orientation and zoom limits, in degrees.
const (
	MinPitch float32 = -89.0
	MaxPitch float32 = 89.0
	MinFovY  float32 = 1.0
	MaxFovY  float32 = 45.0
)

// Movement is a discrete translation request for Advance.
type Movement int

const (
	// MoveForward moves along the facing direction.
	MoveForward Movement = iota
	// MoveBackward moves against the facing direction.
	MoveBackward
	// StrafeLeft moves along -(direction × up).
	StrafeLeft
	// StrafeRight moves along direction × up.
	StrafeRight
)

// CameraController is a first-person camera. It turns discrete input into a pose
// (position plus yaw/pitch) and produces the view and projection transforms for it.
//
// Yaw and pitch are the source of truth for orientation; the facing direction is always
// derived from them and always has unit length. Pitch is clamped to [MinPitch, MaxPitch]
// and the vertical field of view to [MinFovY, MaxFovY]. Out-of-range input is clamped,
// never reported as an error.
type CameraController interface {
	// Advance moves the camera by Speed*dt along the requested axis.
	// Forward and backward follow the facing direction; strafing follows the
	// normalized cross product of the facing direction and the up vector.
	// Does nothing when dt <= 0.
	//
	// Parameters:
	//   - m: the movement to apply
	//   - dt: elapsed time in seconds
	Advance(m Movement, dt float32)

	// Look rotates the camera by raw pointer deltas scaled by MouseSensitivity.
	// The caller is responsible for inverting the pointer's vertical delta so that
	// moving the pointer up tilts the view up.
	//
	// Parameters:
	//   - dx: horizontal delta, added to yaw
	//   - dy: vertical delta, added to pitch
	Look(dx, dy float32)

	// Zoom narrows the field of view by delta degrees (widens when negative).
	//
	// Parameters:
	//   - delta: scroll ticks
	Zoom(delta float32)

	// ViewMatrix returns the right-handed look-to view matrix (column-major).
	//
	// Returns:
	//   - [16]float32: the view matrix
	ViewMatrix() [16]float32

	// ProjectionMatrix returns the right-handed perspective matrix (column-major)
	// with depth mapped to [0, 1].
	//
	// Returns:
	//   - [16]float32: the projection matrix
	ProjectionMatrix() [16]float32

	// SetAspectRatio updates the aspect ratio used by ProjectionMatrix.
	// Non-positive or NaN ratios are ignored.
	//
	// Parameters:
	//   - ratio: viewport width divided by height
	SetAspectRatio(ratio float32)

	// GPUCamera packs the current transforms and eye position for upload.
	//
	// Returns:
	//   - GPUCamera: the uniform record
	GPUCamera() GPUCamera

	// Position returns the world-space eye position.
	Position() mgl32.Vec3

	// Direction returns the unit-length facing vector.
	Direction() mgl32.Vec3

	// Up returns the fixed world up vector.
	Up() mgl32.Vec3

	// Yaw returns the horizontal angle in degrees.
	Yaw() float32

	// Pitch returns the vertical angle in degrees.
	Pitch() float32

	// FovY returns the vertical field of view in degrees.
	FovY() float32

	// AspectRatio returns the viewport aspect ratio.
	AspectRatio() float32

	// Near returns the near clipping plane distance.
	Near() float32

	// Far returns the far clipping plane distance.
	Far() float32

	// Speed returns the movement speed in units per second.
	Speed() float32

	// MouseSensitivity returns the pointer delta multiplier.
	MouseSensitivity() float32
}
