package camera

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-viewport/common"
)

// GPUCameraSource is the canonical WGSL definition of the Camera uniform struct.
// Matches GPUCamera layout exactly (144 bytes, WGSL uniform aligned).
//
//go:embed assets/camera.wgsl
var GPUCameraSource string

// GPUCamera is the GPU-aligned representation of the camera uniform buffer.
// Size: 144 bytes.
type GPUCamera struct {
	Projection [16]float32 // offset   0: projection matrix (mat4x4<f32>)
	View       [16]float32 // offset  64: view matrix (mat4x4<f32>)
	Position   [3]float32  // offset 128: world-space eye position (vec3<f32>)
	_pad       float32     // offset 140: padding to 144 bytes
}

// Size returns the size of the GPUCamera struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (144)
func (g *GPUCamera) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUCamera struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUCamera) Marshal() []byte {
	buf := make([]byte, g.Size())
	common.PutFloat32s(buf, 0, g.Projection[:]...)
	common.PutFloat32s(buf, 64, g.View[:]...)
	common.PutFloat32s(buf, 128, g.Position[:]...)
	return buf
}
