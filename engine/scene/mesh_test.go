package scene

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCubeMeshShape(t *testing.T) {
	m := CubeMesh()
	if len(m.Vertices) != 24 || len(m.Indices) != 36 {
		t.Fatalf("cube has %d vertices and %d indices, want 24 and 36", len(m.Vertices), len(m.Indices))
	}
	for i, v := range m.Vertices {
		for axis := range 3 {
			if c := v.Position[axis]; c != 0.5 && c != -0.5 {
				t.Fatalf("vertex %d position %v is not a unit cube corner", i, v.Position)
			}
		}
		// the normal points along the axis the vertex sits on
		n := mgl32.Vec3(v.Normal)
		if !approx(n.Dot(mgl32.Vec3(v.Position)), 0.5) {
			t.Errorf("vertex %d normal %v does not face outward from %v", i, v.Normal, v.Position)
		}
	}
}

func TestCubeMeshWindsCounterClockwiseFromOutside(t *testing.T) {
	m := CubeMesh()
	for tri := 0; tri < len(m.Indices); tri += 3 {
		a := mgl32.Vec3(m.Vertices[m.Indices[tri]].Position)
		b := mgl32.Vec3(m.Vertices[m.Indices[tri+1]].Position)
		c := mgl32.Vec3(m.Vertices[m.Indices[tri+2]].Position)
		n := mgl32.Vec3(m.Vertices[m.Indices[tri]].Normal)

		if face := b.Sub(a).Cross(c.Sub(a)); face.Dot(n) <= 0 {
			t.Errorf("triangle %d winds clockwise against normal %v", tri/3, n)
		}
	}
}

func TestMeshBytes(t *testing.T) {
	m := CubeMesh()

	vb := m.VertexBytes()
	if uint64(len(vb)) != 24*VertexStride {
		t.Fatalf("len(VertexBytes()) = %d, want %d", len(vb), 24*VertexStride)
	}
	if VertexStride != 24 {
		t.Errorf("VertexStride = %d, want 24", VertexStride)
	}
	// normal of the second vertex starts at byte 24+12
	nx := math.Float32frombits(binary.LittleEndian.Uint32(vb[36:]))
	if nx != m.Vertices[1].Normal[0] {
		t.Errorf("vertex 1 normal.x = %v, want %v", nx, m.Vertices[1].Normal[0])
	}

	ib := m.IndexBytes()
	if len(ib) != 36*4 {
		t.Fatalf("len(IndexBytes()) = %d, want 144", len(ib))
	}
	if got := binary.LittleEndian.Uint32(ib[4*7:]); got != m.Indices[7] {
		t.Errorf("index 7 = %d, want %d", got, m.Indices[7])
	}
}

func TestVertexBufferLayoutMatchesVertex(t *testing.T) {
	l := VertexBufferLayout()
	if l.ArrayStride != VertexStride {
		t.Errorf("ArrayStride = %d, want %d", l.ArrayStride, VertexStride)
	}
	if len(l.Attributes) != 2 {
		t.Fatalf("got %d attributes, want 2", len(l.Attributes))
	}
	if l.Attributes[1].Offset != 12 || l.Attributes[1].ShaderLocation != 1 {
		t.Errorf("normal attribute = %+v, want offset 12 at location 1", l.Attributes[1])
	}
}
