package light

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-viewport/common"
)

// GPUPointLightSource is the canonical WGSL definition of the PointLight struct.
// Matches GPUPointLight layout exactly (80 bytes, WGSL uniform aligned).
//
//go:embed assets/light.wgsl
var GPUPointLightSource string

// GPUPointLight is the GPU-aligned representation of a point light.
// Size: 80 bytes.
type GPUPointLight struct {
	Ambient   [4]float32 // offset  0
	Diffuse   [4]float32 // offset 16
	Specular  [4]float32 // offset 32
	Position  [3]float32 // offset 48
	Constant  float32    // offset 60
	Linear    float32    // offset 64
	Quadratic float32    // offset 68
	_pad      [2]float32 // offset 72: padding to 80 bytes
}

// Size returns the size of the GPUPointLight struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (80)
func (g *GPUPointLight) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUPointLight struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 80-byte buffer ready for GPU upload
func (g *GPUPointLight) Marshal() []byte {
	buf := make([]byte, g.Size())
	common.PutFloat32s(buf, 0, g.Ambient[:]...)
	common.PutFloat32s(buf, 16, g.Diffuse[:]...)
	common.PutFloat32s(buf, 32, g.Specular[:]...)
	common.PutFloat32s(buf, 48, g.Position[:]...)
	common.PutFloat32s(buf, 60, g.Constant, g.Linear, g.Quadratic)
	return buf
}
