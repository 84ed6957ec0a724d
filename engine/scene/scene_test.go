package scene

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Carmen-Shannon/oxy-viewport/engine/light"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/shader"
	"github.com/go-gl/mathgl/mgl32"
)

const epsilon = 1e-5

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) <= epsilon
}

func approxVec(a, b mgl32.Vec3) bool {
	return approx(a[0], b[0]) && approx(a[1], b[1]) && approx(a[2], b[2])
}

// recordingRenderer only implements WriteBuffers; any other call panics on the nil embed.
type recordingRenderer struct {
	renderer.Renderer
	writes []bind_group_provider.BufferWrite
}

func (r *recordingRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	r.writes = append(r.writes, writes...)
}

func TestNewSceneRequiresCollaborators(t *testing.T) {
	if _, err := NewScene(nil, light.NewPointLight()); !errors.Is(err, ErrNoRenderer) {
		t.Errorf("err = %v, want ErrNoRenderer", err)
	}
	if _, err := NewScene(&recordingRenderer{}, nil); !errors.Is(err, ErrNoLight) {
		t.Errorf("err = %v, want ErrNoLight", err)
	}
}

func TestCubeTransform(t *testing.T) {
	first := CubeTransform(0, mgl32.Vec3{1, 2, 3})
	if !first.ApproxEqual(mgl32.Translate3D(1, 2, 3)) {
		t.Errorf("cube 0 should be translated only, got %v", first)
	}

	m := CubeTransform(3, mgl32.Vec3{0, 0, 0})
	// the rotation axis is left unchanged by the rotation
	axis := mgl32.Vec3{1, 0.3, 0.5}.Normalize()
	if got := m.Mul4x1(axis.Vec4(0)).Vec3(); !approxVec(got, axis) {
		t.Errorf("axis rotated to %v, want %v", got, axis)
	}
	// 60 degrees about the axis
	perp := axis.Cross(mgl32.Vec3{0, 1, 0}).Normalize()
	rotated := m.Mul4x1(perp.Vec4(0)).Vec3()
	if !approx(rotated.Dot(perp), 0.5) {
		t.Errorf("cos(angle) = %v, want 0.5", rotated.Dot(perp))
	}
}

func TestNewGPUModelNormalMatrix(t *testing.T) {
	rot := CubeTransform(4, mgl32.Vec3{})
	g := NewGPUModel(rot)
	if !mgl32.Mat4(g.Normal).ApproxEqualThreshold(rot, epsilon) {
		t.Errorf("normal matrix of a pure rotation should equal the rotation")
	}

	scaled := NewGPUModel(MarkerTransform(mgl32.Vec3{}, 0.5))
	if !approx(scaled.Normal[0], 2) || !approx(scaled.Normal[5], 2) || !approx(scaled.Normal[10], 2) {
		t.Errorf("normal matrix diagonal = %v %v %v, want 2", scaled.Normal[0], scaled.Normal[5], scaled.Normal[10])
	}

	if g.Size() != 128 || len(g.Marshal()) != 128 {
		t.Errorf("GPUModel size = %d / %d, want 128", g.Size(), len(g.Marshal()))
	}
}

func TestMarkerTransform(t *testing.T) {
	m := MarkerTransform(mgl32.Vec3{1.2, 1, 2}, 0.2)
	if !approx(m[0], 0.2) || !approx(m[5], 0.2) || !approx(m[10], 0.2) {
		t.Errorf("scale diagonal = %v %v %v, want 0.2", m[0], m[5], m[10])
	}
	if !approxVec(m.Col(3).Vec3(), mgl32.Vec3{1.2, 1, 2}) {
		t.Errorf("translation = %v, want (1.2, 1, 2)", m.Col(3).Vec3())
	}
	// no rotation: a corner of the unit cube stays axis aligned after scaling
	corner := m.Mul4x1(mgl32.Vec4{0.5, 0.5, 0.5, 1}).Vec3()
	if !approxVec(corner, mgl32.Vec3{1.3, 1.1, 2.1}) {
		t.Errorf("corner = %v, want (1.3, 1.1, 2.1)", corner)
	}
}

func TestOrbitPosition(t *testing.T) {
	tests := []struct {
		name  string
		angle float32
		want  mgl32.Vec3
	}{
		{"zero", 0, mgl32.Vec3{2, 1, 0}},
		{"quarter", math.Pi / 2, mgl32.Vec3{0, 1, 2}},
		{"half", math.Pi, mgl32.Vec3{-2, 1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OrbitPosition(mgl32.Vec3{5, 1, 5}, 2, tt.angle)
			if !approxVec(got, tt.want) {
				t.Errorf("OrbitPosition = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateOrbitsLightAndMovesMarker(t *testing.T) {
	r := &recordingRenderer{}
	l := light.NewPointLight(light.WithPosition(mgl32.Vec3{3, 1, 0}))
	s := &scene{
		r:           r,
		light:       l,
		marker:      bind_group_provider.NewBindGroupProvider("marker"),
		markerScale: 0.2,
		markerAt:    l.Position(),
		orbitRadius: 2,
		orbitSpeed:  math.Pi / 2,
	}

	s.Update(1)
	if !approxVec(l.Position(), mgl32.Vec3{0, 1, 2}) {
		t.Errorf("light at %v after a quarter turn, want (0, 1, 2)", l.Position())
	}
	if len(r.writes) != 1 {
		t.Fatalf("got %d buffer writes, want 1", len(r.writes))
	}
	if w := r.writes[0]; w.Provider != s.marker || w.Binding != modelBinding || len(w.Data) != 128 {
		t.Errorf("write = binding %d, %d bytes, want the marker model (binding %d, 128 bytes)", w.Binding, len(w.Data), modelBinding)
	}

	s.Update(0)
	if len(r.writes) != 1 {
		t.Errorf("a still light should not re-upload the marker, got %d writes", len(r.writes))
	}
}

func TestUpdateFollowsExternallyMovedLight(t *testing.T) {
	r := &recordingRenderer{}
	l := light.NewPointLight()
	s := &scene{r: r, light: l, marker: bind_group_provider.NewBindGroupProvider("marker"), markerScale: 0.2, markerAt: l.Position()}

	l.SetPosition(mgl32.Vec3{0, 4, 0})
	s.Update(0.016)
	if len(r.writes) != 1 || s.markerAt != l.Position() {
		t.Errorf("marker at %v with %d writes, want it at the light after one write", s.markerAt, len(r.writes))
	}
}

func TestCubeCountOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  SceneBuilderOption
		want int
	}{
		{"count", WithCubeCount(4), 4},
		{"negative count", WithCubeCount(-1), 0},
		{"count above defaults", WithCubeCount(50), len(DefaultCubePositions)},
		{"positions", WithCubePositions(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &scene{positions: DefaultCubePositions}
			tt.opt(s)
			if s.CubeCount() != tt.want {
				t.Errorf("CubeCount() = %d, want %d", s.CubeCount(), tt.want)
			}
		})
	}
}

func TestPipelinesCompose(t *testing.T) {
	lit, err := LitPipeline()
	if err != nil {
		t.Fatalf("LitPipeline: %v", err)
	}
	if err := lit.Validate(); err != nil {
		t.Errorf("lit Validate: %v", err)
	}
	src := lit.FragmentShader().Source()
	for _, want := range []string{"struct Camera", "struct Model", "struct Material", "struct PointLight", "fn fs_main("} {
		if !strings.Contains(src, want) {
			t.Errorf("lit source is missing %q", want)
		}
	}
	if lit.VertexShader().Type() != shader.ShaderTypeVertex || len(lit.VertexShader().VertexLayouts()) != 1 {
		t.Error("lit vertex stage should carry the cube vertex layout")
	}

	marker, err := LightCubePipeline()
	if err != nil {
		t.Fatalf("LightCubePipeline: %v", err)
	}
	if strings.Contains(marker.VertexShader().Source(), "struct PointLight") {
		t.Error("light cube shader should not declare the light")
	}
	if marker.PipelineKey() == lit.PipelineKey() {
		t.Error("pipelines share a key")
	}
}
