package camera

import "github.com/go-gl/mathgl/mgl32"

// CameraControllerOption is a functional option applied to a controller during NewCameraController,
// after the descriptor has been copied in.
type CameraControllerOption func(*cameraControllerImpl)

// WithPosition sets the starting eye position.
//
// Parameters:
//   - position: world-space position
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithPosition(position mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = position
	}
}

// WithYawPitch sets the starting orientation. Pitch is clamped to [MinPitch, MaxPitch].
//
// Parameters:
//   - yaw: horizontal angle in degrees
//   - pitch: vertical angle in degrees
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithYawPitch(yaw, pitch float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.yaw = yaw
		cc.pitch = pitch
	}
}

// WithAspectRatio sets the starting aspect ratio, typically framebuffer width / height.
//
// Parameters:
//   - ratio: the aspect ratio
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithAspectRatio(ratio float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.aspect = ratio
	}
}

// WithSpeed sets the movement speed.
//
// Parameters:
//   - speed: world units per second
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.speed = speed
	}
}

// WithMouseSensitivity sets the multiplier applied to pointer deltas in Look.
//
// Parameters:
//   - sensitivity: degrees per raw pointer unit
//
// Returns:
//   - CameraControllerOption: option function to apply
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}
