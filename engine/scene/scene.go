package scene

import (
	"errors"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/oxy-viewport/common"
	"github.com/Carmen-Shannon/oxy-viewport/engine/camera"
	"github.com/Carmen-Shannon/oxy-viewport/engine/gpu"
	"github.com/Carmen-Shannon/oxy-viewport/engine/light"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/material"
	"github.com/Carmen-Shannon/oxy-viewport/engine/renderer/pipeline"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoRenderer is returned by NewScene when no renderer is given.
var ErrNoRenderer = errors.New("scene: renderer is required")

// ErrNoLight is returned by NewScene when no light is given.
var ErrNoLight = errors.New("scene: light is required")

// Object bind group bindings.
const (
	modelBinding    = 0
	materialBinding = 1
)

// DefaultCubePositions are the world positions of the lit cubes, in draw order.
var DefaultCubePositions = []mgl32.Vec3{
	{0, 0, 0},
	{2, 5, -15},
	{-1.5, -2.2, -2.5},
	{-3.8, -2, -12.3},
	{2.4, -0.4, -3.5},
	{-1.7, 3, -7.5},
	{1.3, -2, -2.5},
	{1.5, 2, -2.5},
	{1.5, 0.2, -1.5},
	{-1.3, 1, -1.5},
}

// cubeRotationAxis is the axis every lit cube is rotated about.
var cubeRotationAxis = mgl32.Vec3{1, 0.3, 0.5}.Normalize()

// scene is the implementation of the Scene interface.
type scene struct {
	r     renderer.Renderer
	light light.Light

	positions      []mgl32.Vec3
	material       material.Material
	markerMaterial material.Material
	markerScale    float32

	orbitRadius float32
	orbitSpeed  float32 // radians per second
	orbitAngle  float32
	markerAt    mgl32.Vec3

	cameraLayout *wgpu.BindGroupLayout
	objectLayout *wgpu.BindGroupLayout
	lightLayout  *wgpu.BindGroupLayout

	litPipeline    pipeline.Pipeline
	markerPipeline pipeline.Pipeline

	mesh        bind_group_provider.BindGroupProvider
	cameraGroup bind_group_provider.BindGroupProvider
	lightGroup  bind_group_provider.BindGroupProvider
	cubes       []bind_group_provider.BindGroupProvider
	marker      bind_group_provider.BindGroupProvider
}

// Scene is the demo content drawn by the viewport: a set of Phong-lit cubes and a small unlit
// cube marking the light position. A Scene registers itself as a drawer on its renderer and
// is driven from the engine loop (not safe for concurrent use).
type Scene interface {
	renderer.Drawer

	// Update advances the light orbit by deltaTime and moves the light marker to the light.
	//
	// Parameters:
	//   - deltaTime: elapsed seconds since the previous update
	Update(deltaTime float32)

	// CubeCount returns the number of lit cubes.
	CubeCount() int

	// Light returns the light the scene is lit by.
	Light() light.Light

	// Release frees every GPU object the scene created. Uniform slot buffers stay with the renderer.
	Release()
}

var _ Scene = &scene{}

// NewScene builds the pipelines, bind groups and buffers for the demo scene on r and adds the
// scene to r's drawers. The camera and light uniform slots are created on r if missing.
//
// Parameters:
//   - r: the renderer owning the device
//   - l: the point light, also uploaded by the engine each frame
//   - options: functional options
//
// Returns:
//   - Scene: the ready scene
//   - error: an error if any GPU resource could not be created
func NewScene(r renderer.Renderer, l light.Light, options ...SceneBuilderOption) (Scene, error) {
	if r == nil {
		return nil, ErrNoRenderer
	}
	if l == nil {
		return nil, ErrNoLight
	}

	s := &scene{
		r:           r,
		light:       l,
		positions:   DefaultCubePositions,
		material:    material.NewMaterial(material.WithName("cube")),
		markerScale: 0.2,
		markerMaterial: material.NewMaterial(
			material.WithName("light"),
			material.WithPhong(mgl32.Vec4{}, mgl32.Vec4{1, 1, 1, 1}, mgl32.Vec4{}),
		),
	}
	for _, opt := range options {
		opt(s)
	}
	pos := l.Position()
	s.orbitAngle = float32(math.Atan2(float64(pos.Z()), float64(pos.X())))

	if err := s.init(); err != nil {
		s.Release()
		return nil, err
	}
	r.AddDrawer(s)

	common.Logger().Info("scene ready", "cubes", len(s.cubes), "orbit", s.orbitSpeed != 0)
	return s, nil
}

func (s *scene) init() error {
	var gc camera.GPUCamera
	var gl light.GPUPointLight
	var gm GPUModel
	var gmat material.GPUMaterial
	cameraSize, lightSize := uint64(gc.Size()), uint64(gl.Size())
	modelSize, materialSize := uint64(gm.Size()), uint64(gmat.Size())

	cameraBuf, err := s.uniformSlot(gpu.UniformCamera, cameraSize)
	if err != nil {
		return err
	}
	lightBuf, err := s.uniformSlot(gpu.UniformLight, lightSize)
	if err != nil {
		return err
	}

	if s.cameraLayout, err = s.createLayout("Camera Layout",
		renderer.UniformLayoutEntry(0, cameraSize)); err != nil {
		return err
	}
	if s.objectLayout, err = s.createLayout("Object Layout",
		renderer.UniformLayoutEntry(modelBinding, modelSize),
		renderer.UniformLayoutEntry(materialBinding, materialSize)); err != nil {
		return err
	}
	if s.lightLayout, err = s.createLayout("Light Layout",
		renderer.UniformLayoutEntry(0, lightSize)); err != nil {
		return err
	}

	s.cameraGroup = bind_group_provider.NewBindGroupProvider("Camera", bind_group_provider.WithSharedBuffer(0, cameraBuf))
	if err := s.r.InitBindGroup(s.cameraGroup, s.cameraLayout, map[int]uint64{0: cameraSize}); err != nil {
		return err
	}
	s.lightGroup = bind_group_provider.NewBindGroupProvider("Light", bind_group_provider.WithSharedBuffer(0, lightBuf))
	if err := s.r.InitBindGroup(s.lightGroup, s.lightLayout, map[int]uint64{0: lightSize}); err != nil {
		return err
	}

	cube := CubeMesh()
	s.mesh = bind_group_provider.NewBindGroupProvider("Cube Mesh")
	if err := s.r.InitMeshBuffers(s.mesh, cube.VertexBytes(), cube.IndexBytes(), len(cube.Indices)); err != nil {
		return err
	}

	objectSizes := map[int]uint64{modelBinding: modelSize, materialBinding: materialSize}
	writes := make([]bind_group_provider.BufferWrite, 0, 2*(len(s.positions)+1))
	cubeMaterial := s.material.GPUMaterial()
	for i, p := range s.positions {
		provider := bind_group_provider.NewBindGroupProvider(fmt.Sprintf("Cube %d", i))
		s.cubes = append(s.cubes, provider)
		if err := s.r.InitBindGroup(provider, s.objectLayout, objectSizes); err != nil {
			return err
		}
		model := NewGPUModel(CubeTransform(i, p))
		writes = append(writes,
			bind_group_provider.BufferWrite{Provider: provider, Binding: modelBinding, Data: model.Marshal()},
			bind_group_provider.BufferWrite{Provider: provider, Binding: materialBinding, Data: cubeMaterial.Marshal()},
		)
	}

	s.marker = bind_group_provider.NewBindGroupProvider("Light Marker")
	if err := s.r.InitBindGroup(s.marker, s.objectLayout, objectSizes); err != nil {
		return err
	}
	markerMaterial := s.markerMaterial.GPUMaterial()
	writes = append(writes, bind_group_provider.BufferWrite{Provider: s.marker, Binding: materialBinding, Data: markerMaterial.Marshal()})
	s.r.WriteBuffers(writes)
	s.moveMarker()

	if s.litPipeline, err = LitPipeline(); err != nil {
		return err
	}
	if err := s.r.RegisterPipeline(s.litPipeline, s.cameraLayout, s.objectLayout, s.lightLayout); err != nil {
		return err
	}
	if s.markerPipeline, err = LightCubePipeline(); err != nil {
		return err
	}
	return s.r.RegisterPipeline(s.markerPipeline, s.cameraLayout, s.objectLayout)
}

// uniformSlot returns the renderer's buffer for slot, creating it if needed.
func (s *scene) uniformSlot(slot gpu.UniformSlot, size uint64) (*wgpu.Buffer, error) {
	if buf := s.r.UniformBuffer(slot); buf != nil {
		return buf, nil
	}
	return s.r.CreateUniformBuffer(slot, size)
}

func (s *scene) createLayout(label string, entries ...wgpu.BindGroupLayoutEntry) (*wgpu.BindGroupLayout, error) {
	layout, err := s.r.Device().CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label:   label,
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	return layout, nil
}

func (s *scene) Draw(pass *wgpu.RenderPassEncoder) {
	vb, ib := s.mesh.VertexBuffer(), s.mesh.IndexBuffer()
	indexCount := uint32(s.mesh.IndexCount())

	pass.SetPipeline(s.litPipeline.RenderPipeline())
	pass.SetBindGroup(0, s.cameraGroup.BindGroup(), nil)
	pass.SetBindGroup(2, s.lightGroup.BindGroup(), nil)
	pass.SetVertexBuffer(0, vb, 0, wgpu.WholeSize)
	pass.SetIndexBuffer(ib, wgpu.IndexFormatUint32, 0, wgpu.WholeSize)
	for _, cube := range s.cubes {
		pass.SetBindGroup(1, cube.BindGroup(), nil)
		pass.DrawIndexed(indexCount, 1, 0, 0, 0)
	}

	pass.SetPipeline(s.markerPipeline.RenderPipeline())
	pass.SetBindGroup(0, s.cameraGroup.BindGroup(), nil)
	pass.SetBindGroup(1, s.marker.BindGroup(), nil)
	pass.DrawIndexed(indexCount, 1, 0, 0, 0)
}

func (s *scene) Update(deltaTime float32) {
	if s.orbitRadius > 0 && s.orbitSpeed != 0 && deltaTime > 0 {
		s.orbitAngle = float32(math.Mod(float64(s.orbitAngle+s.orbitSpeed*deltaTime), 2*math.Pi))
		s.light.SetPosition(OrbitPosition(s.light.Position(), s.orbitRadius, s.orbitAngle))
	}
	if s.light.Position() != s.markerAt {
		s.moveMarker()
	}
}

// moveMarker uploads the marker transform for the current light position.
func (s *scene) moveMarker() {
	s.markerAt = s.light.Position()
	model := NewGPUModel(MarkerTransform(s.markerAt, s.markerScale))
	s.r.WriteBuffers([]bind_group_provider.BufferWrite{
		{Provider: s.marker, Binding: modelBinding, Data: model.Marshal()},
	})
}

func (s *scene) CubeCount() int {
	return len(s.positions)
}

func (s *scene) Light() light.Light {
	return s.light
}

func (s *scene) Release() {
	for _, p := range []pipeline.Pipeline{s.litPipeline, s.markerPipeline} {
		if p != nil {
			p.Release()
		}
	}
	s.litPipeline, s.markerPipeline = nil, nil

	providers := append([]bind_group_provider.BindGroupProvider{s.mesh, s.cameraGroup, s.lightGroup, s.marker}, s.cubes...)
	for _, p := range providers {
		if p != nil {
			p.Release()
		}
	}
	s.mesh, s.cameraGroup, s.lightGroup, s.marker, s.cubes = nil, nil, nil, nil, nil

	for _, l := range []*wgpu.BindGroupLayout{s.cameraLayout, s.objectLayout, s.lightLayout} {
		if l != nil {
			l.Release()
		}
	}
	s.cameraLayout, s.objectLayout, s.lightLayout = nil, nil, nil
}

// CubeTransform returns the model matrix of the index-th lit cube: rotated 20*index degrees
// about a fixed tilted axis, then translated to position.
//
// Parameters:
//   - index: the cube's draw index
//   - position: world position
//
// Returns:
//   - mgl32.Mat4: the model matrix
func CubeTransform(index int, position mgl32.Vec3) mgl32.Mat4 {
	angle := mgl32.DegToRad(20 * float32(index))
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.HomogRotate3D(angle, cubeRotationAxis))
}

// MarkerTransform returns the model matrix of the light marker.
func MarkerTransform(position mgl32.Vec3, scale float32) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.Scale3D(scale, scale, scale))
}

// OrbitPosition places a point on a horizontal circle of radius around the Y axis, keeping the
// height of current.
//
// Parameters:
//   - current: the current position, only its Y is kept
//   - radius: circle radius
//   - angle: angle in radians, measured from +X towards +Z
//
// Returns:
//   - mgl32.Vec3: the orbit position
func OrbitPosition(current mgl32.Vec3, radius, angle float32) mgl32.Vec3 {
	sin, cos := math.Sincos(float64(angle))
	return mgl32.Vec3{radius * float32(cos), current.Y(), radius * float32(sin)}
}
