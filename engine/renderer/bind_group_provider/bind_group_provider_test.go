package bind_group_provider

import "testing"

func TestNewBindGroupProviderEmpty(t *testing.T) {
	p := NewBindGroupProvider("cube")
	if p.Label() != "cube" {
		t.Errorf("Label() = %q, want cube", p.Label())
	}
	if p.BindGroup() != nil || p.BindGroupLayout() != nil || p.Buffer(0) != nil {
		t.Error("new provider holds GPU resources")
	}
	if p.VertexBuffer() != nil || p.IndexBuffer() != nil || p.IndexCount() != 0 {
		t.Error("new provider holds mesh resources")
	}
}

func TestSharedBufferSurvivesRelease(t *testing.T) {
	impl := NewBindGroupProvider("camera", WithSharedBuffer(0, nil)).(*bindGroupProvider)
	if !impl.shared[0] {
		t.Fatal("binding 0 not marked shared")
	}

	impl.Release()
	if len(impl.buffers) != 0 || len(impl.shared) != 0 {
		t.Errorf("Release() left buffers=%v shared=%v", impl.buffers, impl.shared)
	}
}

func TestSetBufferClearsShared(t *testing.T) {
	impl := NewBindGroupProvider("model", WithSharedBuffer(1, nil)).(*bindGroupProvider)
	impl.SetBuffer(1, nil)
	if impl.shared[1] {
		t.Error("SetBuffer did not take ownership of binding 1")
	}
}

func TestSetMesh(t *testing.T) {
	p := NewBindGroupProvider("mesh")
	p.SetMesh(nil, nil, 36)
	if p.IndexCount() != 36 {
		t.Errorf("IndexCount() = %d, want 36", p.IndexCount())
	}
	p.Release()
	if p.IndexCount() != 0 {
		t.Errorf("IndexCount() after Release = %d, want 0", p.IndexCount())
	}
}
