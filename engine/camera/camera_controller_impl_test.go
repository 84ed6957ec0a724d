package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

func approxVec(a, b mgl32.Vec3) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

func newDefault(options ...CameraControllerOption) CameraController {
	return NewCameraController(DefaultCameraDescriptor(), options...)
}

func TestNewCameraControllerDefaults(t *testing.T) {
	cc := newDefault()

	if !approxVec(cc.Direction(), mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Direction() = %v, want (0, 0, -1) for yaw -90, pitch 0", cc.Direction())
	}
	if cc.Yaw() != -90 || cc.Pitch() != 0 {
		t.Errorf("Yaw/Pitch = %v/%v, want -90/0", cc.Yaw(), cc.Pitch())
	}
	if cc.FovY() != 45 {
		t.Errorf("FovY() = %v, want 45", cc.FovY())
	}
	if !approx(cc.AspectRatio(), 16.0/9.0) {
		t.Errorf("AspectRatio() = %v, want 16/9", cc.AspectRatio())
	}
}

func TestNewCameraControllerNormalizesDescriptor(t *testing.T) {
	desc := DefaultCameraDescriptor()
	desc.Pitch = 120
	desc.FovY = 90
	desc.AspectRatio = 0
	desc.Up = mgl32.Vec3{}
	desc.Direction = mgl32.Vec3{1, 0, 0} // ignored in favour of yaw/pitch

	cc := NewCameraController(desc)

	if cc.Pitch() != MaxPitch {
		t.Errorf("Pitch() = %v, want %v", cc.Pitch(), MaxPitch)
	}
	if cc.FovY() != MaxFovY {
		t.Errorf("FovY() = %v, want %v", cc.FovY(), MaxFovY)
	}
	if !(cc.AspectRatio() > 0) {
		t.Errorf("AspectRatio() = %v, want > 0", cc.AspectRatio())
	}
	if !approxVec(cc.Up(), mgl32.Vec3{0, 1, 0}) {
		t.Errorf("Up() = %v, want +Y", cc.Up())
	}
	if !approx(cc.Direction().Len(), 1) {
		t.Errorf("|Direction()| = %v, want 1", cc.Direction().Len())
	}
}

func TestOptionsOverrideDescriptor(t *testing.T) {
	cc := newDefault(
		WithPosition(mgl32.Vec3{1, 2, 3}),
		WithYawPitch(0, 0),
		WithAspectRatio(2),
		WithSpeed(4),
		WithMouseSensitivity(0.5),
	)

	if cc.Position() != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("Position() = %v, want (1, 2, 3)", cc.Position())
	}
	if !approxVec(cc.Direction(), mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Direction() = %v, want +X for yaw 0", cc.Direction())
	}
	if cc.AspectRatio() != 2 || cc.Speed() != 4 || cc.MouseSensitivity() != 0.5 {
		t.Errorf("aspect/speed/sensitivity = %v/%v/%v, want 2/4/0.5",
			cc.AspectRatio(), cc.Speed(), cc.MouseSensitivity())
	}
}

func TestAdvance(t *testing.T) {
	tests := []struct {
		name string
		move Movement
		want mgl32.Vec3
	}{
		// Default camera: eye (0, 0, 3), facing -Z, speed 10.
		{"forward", MoveForward, mgl32.Vec3{0, 0, 2}},
		{"backward", MoveBackward, mgl32.Vec3{0, 0, 4}},
		{"strafe left", StrafeLeft, mgl32.Vec3{-1, 0, 3}},
		{"strafe right", StrafeRight, mgl32.Vec3{1, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc := newDefault()
			cc.Advance(tt.move, 0.1)
			if !approxVec(cc.Position(), tt.want) {
				t.Errorf("Position() = %v, want %v", cc.Position(), tt.want)
			}
		})
	}
}

func TestAdvanceNonPositiveDtIsNoop(t *testing.T) {
	for _, dt := range []float32{0, -0.5, float32(math.Inf(-1))} {
		cc := newDefault()
		before := cc.Position()
		for _, m := range []Movement{MoveForward, MoveBackward, StrafeLeft, StrafeRight} {
			cc.Advance(m, dt)
		}
		if cc.Position() != before {
			t.Errorf("Advance(dt=%v) moved camera from %v to %v", dt, before, cc.Position())
		}
	}
}

func TestLookClampsPitch(t *testing.T) {
	cc := newDefault()
	cc.Look(0, 1000) // sensitivity 0.1 requests +100°

	if cc.Pitch() != 89 {
		t.Errorf("Pitch() = %v, want 89", cc.Pitch())
	}

	cc.Look(0, -5000)
	if cc.Pitch() != -89 {
		t.Errorf("Pitch() = %v, want -89", cc.Pitch())
	}
}

func TestLookUpdatesDirection(t *testing.T) {
	cc := newDefault()
	cc.Look(900, 0) // yaw -90 -> 0

	if !approx(cc.Yaw(), 0) {
		t.Fatalf("Yaw() = %v, want 0", cc.Yaw())
	}
	if !approxVec(cc.Direction(), mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Direction() = %v, want (1, 0, 0)", cc.Direction())
	}
}

func TestLookInvariantsHoldForRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cc := newDefault()

	for i := 0; i < 5000; i++ {
		dx := (rng.Float32() - 0.5) * 4000
		dy := (rng.Float32() - 0.5) * 4000
		cc.Look(dx, dy)

		if p := cc.Pitch(); p < MinPitch || p > MaxPitch {
			t.Fatalf("step %d: Pitch() = %v outside [%v, %v]", i, p, MinPitch, MaxPitch)
		}
		if l := cc.Direction().Len(); math.Abs(float64(l-1)) > 1e-4 {
			t.Fatalf("step %d: |Direction()| = %v, want 1", i, l)
		}
	}
}

func TestZoomClamps(t *testing.T) {
	cc := newDefault()
	cc.Zoom(50)
	if cc.FovY() != 1 {
		t.Errorf("FovY() after Zoom(50) = %v, want 1", cc.FovY())
	}

	cc.Zoom(-100)
	if cc.FovY() != 45 {
		t.Errorf("FovY() after Zoom(-100) = %v, want 45", cc.FovY())
	}

	cc.Zoom(5)
	if cc.FovY() != 40 {
		t.Errorf("FovY() after Zoom(5) = %v, want 40", cc.FovY())
	}
}

func TestZoomInvariantHoldsForRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	cc := newDefault()
	for i := 0; i < 2000; i++ {
		cc.Zoom((rng.Float32() - 0.5) * 30)
		if f := cc.FovY(); f < MinFovY || f > MaxFovY {
			t.Fatalf("step %d: FovY() = %v outside [%v, %v]", i, f, MinFovY, MaxFovY)
		}
	}
}

func TestSetAspectRatioIgnoresInvalid(t *testing.T) {
	cc := newDefault()
	cc.SetAspectRatio(800.0 / 600.0)
	if !approx(cc.AspectRatio(), 800.0/600.0) {
		t.Fatalf("AspectRatio() = %v, want 4/3", cc.AspectRatio())
	}

	for _, r := range []float32{0, -1, float32(math.NaN()), float32(math.Inf(1))} {
		cc.SetAspectRatio(r)
		if !approx(cc.AspectRatio(), 800.0/600.0) {
			t.Errorf("SetAspectRatio(%v) changed aspect to %v", r, cc.AspectRatio())
		}
	}
}

func TestMatricesAreIdempotent(t *testing.T) {
	cc := newDefault()
	cc.Look(123, -45)
	cc.Advance(MoveForward, 0.25)

	if cc.ViewMatrix() != cc.ViewMatrix() {
		t.Error("ViewMatrix() differs between calls without mutation")
	}
	if cc.ProjectionMatrix() != cc.ProjectionMatrix() {
		t.Error("ProjectionMatrix() differs between calls without mutation")
	}
}

func TestViewMatrixTransformsEyeToOrigin(t *testing.T) {
	cc := newDefault(WithPosition(mgl32.Vec3{4, -2, 7}))
	view := mgl32.Mat4(cc.ViewMatrix())

	eye := view.Mul4x1(cc.Position().Vec4(1))
	if !approxVec(eye.Vec3(), mgl32.Vec3{}) {
		t.Errorf("view * eye = %v, want origin", eye)
	}

	// A point straight ahead must land on the -Z axis in view space.
	ahead := view.Mul4x1(cc.Position().Add(cc.Direction().Mul(5)).Vec4(1))
	if !approxVec(ahead.Vec3(), mgl32.Vec3{0, 0, -5}) {
		t.Errorf("view * ahead = %v, want (0, 0, -5)", ahead)
	}
}

func TestProjectionMatrixUsesFovAndAspect(t *testing.T) {
	cc := newDefault(WithAspectRatio(2))
	p := cc.ProjectionMatrix()

	f := float32(1 / math.Tan(float64(mgl32.DegToRad(45))/2))
	if !approx(p[5], f) {
		t.Errorf("p[5] = %v, want %v", p[5], f)
	}
	if !approx(p[0], f/2) {
		t.Errorf("p[0] = %v, want %v", p[0], f/2)
	}
}

func TestGPUCamera(t *testing.T) {
	cc := newDefault()
	g := cc.GPUCamera()

	if g.Projection != cc.ProjectionMatrix() || g.View != cc.ViewMatrix() {
		t.Error("GPUCamera matrices do not match controller matrices")
	}
	if g.Position != [3]float32{0, 0, 3} {
		t.Errorf("GPUCamera.Position = %v, want (0, 0, 3)", g.Position)
	}
}
