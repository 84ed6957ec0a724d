package material

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-viewport/common"
)

// GPUMaterialSource is the canonical WGSL definition of the Material struct.
// Matches GPUMaterial layout exactly (64 bytes, uniform aligned).
//
//go:embed assets/material.wgsl
var GPUMaterialSource string

// GPUMaterial is the GPU-aligned Phong material uniform.
// Matches the WGSL Material struct layout exactly (see GPUMaterialSource).
// Size: 64 bytes.
type GPUMaterial struct {
	Ambient   [4]float32 // offset 0
	Diffuse   [4]float32 // offset 16
	Specular  [4]float32 // offset 32
	Shininess float32    // offset 48
	_pad      [3]float32 // offset 52: struct size rounds up to 16-byte alignment
}

// Size returns the size of the GPUMaterial struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMaterial) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterial struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 64-byte buffer ready for GPU upload.
func (g *GPUMaterial) Marshal() []byte {
	buf := make([]byte, 64)
	common.PutFloat32s(buf, 0, g.Ambient[:]...)
	common.PutFloat32s(buf, 16, g.Diffuse[:]...)
	common.PutFloat32s(buf, 32, g.Specular[:]...)
	common.PutFloat32s(buf, 48, g.Shininess)
	return buf
}
