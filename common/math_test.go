package common

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float32
		want      float32
	}{
		{"inside", 10, 1, 45, 10},
		{"below", -5, 1, 45, 1},
		{"above", 100, -89, 89, 89},
		{"on bound", 45, 1, 45, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	var m [16]float32
	near, far := float32(0.1), float32(100)
	Perspective(m[:], float32(math.Pi/4), 16.0/9.0, near, far)

	// Project a view-space point on the near and far planes (looking down -Z).
	project := func(z float32) float32 {
		clipZ := m[10]*z + m[14]
		clipW := m[11]*z + m[15]
		return clipZ / clipW
	}
	if got := project(-near); math.Abs(float64(got)) > 1e-5 {
		t.Errorf("near plane depth = %v, want 0", got)
	}
	if got := project(-far); math.Abs(float64(got-1)) > 1e-4 {
		t.Errorf("far plane depth = %v, want 1", got)
	}
	if m[11] != -1 {
		t.Errorf("m[11] = %v, want -1 for a right-handed projection", m[11])
	}
}

func TestPutFloat32s(t *testing.T) {
	buf := make([]byte, 12)
	PutFloat32s(buf, 4, 1.5, -2)

	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])); got != 1.5 {
		t.Errorf("word 0 = %v, want 1.5", got)
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[8:])); got != -2 {
		t.Errorf("word 1 = %v, want -2", got)
	}
	if binary.LittleEndian.Uint32(buf[0:]) != 0 {
		t.Errorf("bytes before offset were modified: %v", buf[:4])
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce("", "", "title"); got != "title" {
		t.Errorf("Coalesce = %q, want %q", got, "title")
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("Coalesce of zeros = %d, want 0", got)
	}
}
