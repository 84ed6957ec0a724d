package scene

import (
	"encoding/binary"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is a single mesh vertex as laid out in the vertex buffer.
type Vertex struct {
	Position [3]float32 // offset  0: @location(0)
	Normal   [3]float32 // offset 12: @location(1)
}

// VertexStride is the byte distance between consecutive vertices.
const VertexStride = uint64(unsafe.Sizeof(Vertex{}))

// VertexBufferLayout returns the layout matching Vertex.
//
// Returns:
//   - wgpu.VertexBufferLayout: position at location 0, normal at location 1
func VertexBufferLayout() wgpu.VertexBufferLayout {
	return wgpu.VertexBufferLayout{
		ArrayStride: VertexStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes: []wgpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: 12, ShaderLocation: 1},
		},
	}
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// cubeFaces lists each face normal with a tangent basis where u × v == normal,
// so the corner order below winds counter-clockwise seen from outside.
var cubeFaces = [6]struct{ n, u, v mgl32.Vec3 }{
	{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
	{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
	{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
}

// CubeMesh builds a unit cube centred on the origin with per-face normals
// (24 vertices, 36 indices).
//
// Returns:
//   - Mesh: the cube mesh
func CubeMesh() Mesh {
	m := Mesh{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for _, f := range cubeFaces {
		base := uint32(len(m.Vertices))
		center := f.n.Mul(0.5)
		for _, c := range corners {
			p := center.Add(f.u.Mul(0.5 * c[0])).Add(f.v.Mul(0.5 * c[1]))
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: f.n})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// VertexBytes serializes the vertices for upload.
//
// Returns:
//   - []byte: little-endian vertex data
func (m Mesh) VertexBytes() []byte {
	buf := make([]byte, len(m.Vertices)*int(VertexStride))
	for i, v := range m.Vertices {
		off := i * int(VertexStride)
		common.PutFloat32s(buf, off, v.Position[:]...)
		common.PutFloat32s(buf, off+12, v.Normal[:]...)
	}
	return buf
}

// IndexBytes serializes the indices for upload as uint32.
//
// Returns:
//   - []byte: little-endian index data
func (m Mesh) IndexBytes() []byte {
	buf := make([]byte, len(m.Indices)*4)
	for i, idx := range m.Indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}
