package material

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()
	if m.Name() != "coral" {
		t.Errorf("Name() = %q, want coral", m.Name())
	}
	if m.Diffuse() != (mgl32.Vec4{1.0, 0.5, 0.31, 1.0}) {
		t.Errorf("Diffuse() = %v", m.Diffuse())
	}
	if m.Shininess() != 32 {
		t.Errorf("Shininess() = %v, want 32", m.Shininess())
	}
}

func TestMaterialOptions(t *testing.T) {
	m := NewMaterial(
		WithName("marker"),
		WithColor(mgl32.Vec3{1, 1, 1}),
		WithShininess(0),
	)
	if m.Name() != "marker" {
		t.Errorf("Name() = %q, want marker", m.Name())
	}
	if m.Ambient() != (mgl32.Vec4{1, 1, 1, 1}) || m.Diffuse() != (mgl32.Vec4{1, 1, 1, 1}) {
		t.Errorf("Ambient() = %v, Diffuse() = %v, want white", m.Ambient(), m.Diffuse())
	}
	if m.Shininess() != 1 {
		t.Errorf("Shininess() = %v, want clamp to 1", m.Shininess())
	}
}

func TestGPUMaterialLayout(t *testing.T) {
	g := NewMaterial(WithPhong(
		mgl32.Vec4{0.1, 0.2, 0.3, 1},
		mgl32.Vec4{0.4, 0.5, 0.6, 1},
		mgl32.Vec4{0.7, 0.8, 0.9, 1},
	), WithShininess(64)).GPUMaterial()

	if g.Size() != 64 {
		t.Fatalf("Size() = %d, want 64", g.Size())
	}
	buf := g.Marshal()
	word := func(off int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:])) }
	if word(0) != 0.1 || word(16) != 0.4 || word(32) != 0.7 || word(48) != 64 {
		t.Errorf("marshal offsets wrong: %v %v %v %v", word(0), word(16), word(32), word(48))
	}
	if !strings.Contains(GPUMaterialSource, "shininess: f32") {
		t.Error("embedded WGSL does not declare shininess")
	}
}
