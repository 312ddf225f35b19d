package quarkgl

// Material is a minimal surface description.
type Material struct {
	BaseColor Color
	Opacity   uint8 // 0..255. 255 means opaque.
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   Scalar // 0..1
	Dir       Vec3   // direction *towards* the scene
	DirAmount Scalar // 0..1
}

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

// Camera describes the viewing transform.
type Camera struct {
	Type CameraType

	Position Vec3
	Target   Vec3
	Up       Vec3

	// Perspective.
	FOVYRad Scalar

	// Orthographic (half-height).
	OrthoSize Scalar

	Near Scalar
	Far  Scalar
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect Scalar) Mat4 {
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		right := size * aspect
		return Mat4Ortho(-right, right, -size, size, c.Near, c.Far)
	default:
		fov := c.FOVYRad
		if fov == 0 {
			fov = 1.0
		}
		return Mat4Perspective(fov, aspect, c.Near, c.Far)
	}
}

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
	Color  Color
}

// Mesh is a triangle mesh. Transform is applied before the owning node's world matrix.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16 // triangle list

	Transform Mat4
	Material  Material
}

// NewMesh fills in the defaults for a mesh built from raw geometry.
func NewMesh(verts []Vertex, indices []uint16, base Color) *Mesh {
	if base == (Color{}) {
		base = RGB(0xCC, 0xCC, 0xCC)
	}
	return &Mesh{
		Enabled:   true,
		Vertices:  verts,
		Indices:   indices,
		Transform: Mat4Identity(),
		Material:  Material{BaseColor: base, Opacity: 0xFF},
	}
}

func (m *Mesh) transform() Mat4 {
	if m.Transform == (Mat4{}) {
		return Mat4Identity()
	}
	return m.Transform
}

// Scene is a node graph plus the camera and light used to render it.
type Scene struct {
	Camera Camera
	Light  Light
	Root   *Node
}

// CreateScene returns a scene with an empty root and a default camera.
func CreateScene() *Scene {
	return &Scene{
		Camera: Camera{
			Type:      CameraPerspective,
			Position:  V3(0, 2, 5),
			Target:    V3(0, 0, 0),
			Up:        V3(0, 1, 0),
			FOVYRad:   1.3,
			Near:      0.05,
			Far:       100,
			OrthoSize: 1,
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   0.25,
			Dir:       Normalize(V3(-0.5, -1, -0.5)),
			DirAmount: 0.75,
		},
		Root: NewNode("scene"),
	}
}

// Add attaches n under the scene root.
func (s *Scene) Add(n *Node) {
	if s == nil || s.Root == nil {
		return
	}
	s.Root.Add(n)
}
