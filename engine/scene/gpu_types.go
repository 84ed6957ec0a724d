package scene

import (
	_ "embed"
	"unsafe"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/go-gl/mathgl/mgl32"
)

// GPUModelSource is the canonical WGSL definition of the Model uniform struct.
// Matches GPUModel layout exactly (128 bytes).
//
//go:embed assets/model.wgsl
var GPUModelSource string

// GPUModel is the GPU-aligned per-object transform record.
// Matches the WGSL Model struct layout exactly (see GPUModelSource).
type GPUModel struct {
	Model  [16]float32 // offset  0: object-to-world matrix (mat4x4<f32>)
	Normal [16]float32 // offset 64: inverse transpose of Model (mat4x4<f32>)
}

// NewGPUModel packs a model matrix together with its normal matrix.
//
// Parameters:
//   - model: the column-major model matrix
//
// Returns:
//   - GPUModel: the packed record
func NewGPUModel(model mgl32.Mat4) GPUModel {
	return GPUModel{
		Model:  model,
		Normal: model.Inv().Transpose(),
	}
}

// Size returns the size of the GPUModel struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (128)
func (g *GPUModel) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUModel struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUModel) Marshal() []byte {
	buf := make([]byte, g.Size())
	common.PutFloat32s(buf, 0, g.Model[:]...)
	common.PutFloat32s(buf, 64, g.Normal[:]...)
	return buf
}
