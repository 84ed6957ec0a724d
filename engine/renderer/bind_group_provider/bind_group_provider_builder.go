package bind_group_provider

import "github.com/cogentcore/webgpu/wgpu"

// BindGroupProviderOption is a functional option for configuring a BindGroupProvider.
type BindGroupProviderOption func(*bindGroupProvider)

// WithSharedBuffer binds a buffer owned elsewhere. The provider never releases it.
//
// Parameters:
//   - binding: the binding index
//   - buf: the shared buffer
//
// Returns:
//   - BindGroupProviderOption: option function to apply
func WithSharedBuffer(binding int, buf *wgpu.Buffer) BindGroupProviderOption {
	return func(p *bindGroupProvider) {
		p.buffers[binding] = buf
		p.shared[binding] = true
	}
}
