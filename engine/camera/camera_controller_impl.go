package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// It is owned by the engine loop and is not safe for concurrent use.
type cameraControllerImpl struct {
	position  mgl32.Vec3
	direction mgl32.Vec3 // derived from yaw/pitch, never set directly
	up        mgl32.Vec3

	// Orientation in degrees
	yaw   float32
	pitch float32

	// Projection parameters (fovY in degrees)
	fovY   float32
	aspect float32
	near   float32
	far    float32

	speed            float32
	mouseSensitivity float32
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a first-person camera controller from a descriptor.
// Options are applied after the descriptor. The result is then normalized: pitch and
// field of view are clamped, an invalid aspect ratio falls back to the default one, a
// zero up vector falls back to +Y, and the facing direction is derived from yaw and pitch.
//
// Parameters:
//   - desc: the starting configuration
//   - options: functional options overriding descriptor fields
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(desc CameraDescriptor, options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		position:         desc.Position,
		up:               desc.Up,
		yaw:              desc.Yaw,
		pitch:            desc.Pitch,
		fovY:             desc.FovY,
		aspect:           desc.AspectRatio,
		near:             desc.ZNear,
		far:              desc.ZFar,
		speed:            desc.Speed,
		mouseSensitivity: desc.MouseSensitivity,
	}

	for _, option := range options {
		option(cc)
	}

	defaults := DefaultCameraDescriptor()
	if !(cc.aspect > 0) {
		cc.aspect = defaults.AspectRatio
	}
	if cc.up.Len() == 0 {
		cc.up = defaults.Up
	}
	cc.up = cc.up.Normalize()
	cc.pitch = common.Clamp(cc.pitch, MinPitch, MaxPitch)
	cc.fovY = common.Clamp(cc.fovY, MinFovY, MaxFovY)
	cc.updateDirection()
	return cc
}

// --- internal helpers ---

// updateDirection recomputes the unit facing vector from yaw and pitch.
// Must be called whenever yaw or pitch changes.
func (cc *cameraControllerImpl) updateDirection() {
	yaw := float64(mgl32.DegToRad(cc.yaw))
	pitch := float64(mgl32.DegToRad(cc.pitch))

	cc.direction = mgl32.Vec3{
		float32(math.Cos(yaw) * math.Cos(pitch)),
		float32(math.Sin(pitch)),
		float32(math.Sin(yaw) * math.Cos(pitch)),
	}.Normalize()
}

// right returns the normalized strafe axis (direction × up).
// Returns the zero vector if direction and up are parallel.
func (cc *cameraControllerImpl) right() mgl32.Vec3 {
	r := cc.direction.Cross(cc.up)
	if r.Len() < 1e-6 {
		return mgl32.Vec3{}
	}
	return r.Normalize()
}

// --- CameraController implementation ---

func (cc *cameraControllerImpl) Advance(m Movement, dt float32) {
	if dt <= 0 {
		return
	}
	step := cc.speed * dt

	switch m {
	case MoveForward:
		cc.position = cc.position.Add(cc.direction.Mul(step))
	case MoveBackward:
		cc.position = cc.position.Sub(cc.direction.Mul(step))
	case StrafeLeft:
		cc.position = cc.position.Sub(cc.right().Mul(step))
	case StrafeRight:
		cc.position = cc.position.Add(cc.right().Mul(step))
	}
}

func (cc *cameraControllerImpl) Look(dx, dy float32) {
	cc.yaw += dx * cc.mouseSensitivity
	cc.pitch = common.Clamp(cc.pitch+dy*cc.mouseSensitivity, MinPitch, MaxPitch)
	cc.updateDirection()
}

func (cc *cameraControllerImpl) Zoom(delta float32) {
	cc.fovY = common.Clamp(cc.fovY-delta, MinFovY, MaxFovY)
}

func (cc *cameraControllerImpl) ViewMatrix() [16]float32 {
	return [16]float32(mgl32.LookAtV(cc.position, cc.position.Add(cc.direction), cc.up))
}

func (cc *cameraControllerImpl) ProjectionMatrix() [16]float32 {
	var m [16]float32
	common.Perspective(m[:], mgl32.DegToRad(cc.fovY), cc.aspect, cc.near, cc.far)
	return m
}

func (cc *cameraControllerImpl) SetAspectRatio(ratio float32) {
	if !(ratio > 0) || math.IsInf(float64(ratio), 0) {
		return
	}
	cc.aspect = ratio
}

func (cc *cameraControllerImpl) GPUCamera() GPUCamera {
	return GPUCamera{
		Projection: cc.ProjectionMatrix(),
		View:       cc.ViewMatrix(),
		Position:   [3]float32(cc.position),
	}
}

func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	return cc.position
}

func (cc *cameraControllerImpl) Direction() mgl32.Vec3 {
	return cc.direction
}

func (cc *cameraControllerImpl) Up() mgl32.Vec3 {
	return cc.up
}

func (cc *cameraControllerImpl) Yaw() float32 {
	return cc.yaw
}

func (cc *cameraControllerImpl) Pitch() float32 {
	return cc.pitch
}

func (cc *cameraControllerImpl) FovY() float32 {
	return cc.fovY
}

func (cc *cameraControllerImpl) AspectRatio() float32 {
	return cc.aspect
}

func (cc *cameraControllerImpl) Near() float32 {
	return cc.near
}

func (cc *cameraControllerImpl) Far() float32 {
	return cc.far
}

func (cc *cameraControllerImpl) Speed() float32 {
	return cc.speed
}

func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	return cc.mouseSensitivity
}
