package skeleton

import (
	"quadtrot/gait"
	"quadtrot/quarkgl"
)

// Model is a loaded robot: a node graph under Base plus its named joints.
type Model struct {
	Name string

	// Base carries the placement transform; robot roots hang below it.
	Base *quarkgl.Node

	// SkippedMeshes counts visuals that referenced mesh files.
	SkippedMeshes int

	joints map[string]*Joint
	order  []*Joint
	links  map[*quarkgl.Node]*Link
}

func newModel(name string) *Model {
	if name == "" {
		name = "robot"
	}
	return &Model{
		Name:   name,
		Base:   quarkgl.NewNode(name),
		joints: make(map[string]*Joint),
		links:  make(map[*quarkgl.Node]*Link),
	}
}

// link returns the adapter for n, creating it once so identity is stable.
func (m *Model) link(n *quarkgl.Node) *Link {
	if l, ok := m.links[n]; ok {
		return l
	}
	l := &Link{node: n}
	m.links[n] = l
	return l
}

func (m *Model) addJoint(j *Joint) {
	m.joints[j.Name] = j
	m.order = append(m.order, j)
}

// Joint returns the named joint or nil.
func (m *Model) Joint(name string) *Joint { return m.joints[name] }

// JointList returns the joints in document order.
func (m *Model) JointList() []*Joint { return m.order }

// Link returns the adapter of the named link or joint node, or nil.
func (m *Model) Link(name string) *Link {
	n := m.Base.Find(name)
	if n == nil || n.Mesh != nil {
		return nil
	}
	return m.link(n)
}

// Joints implements gait.Skeleton.
func (m *Model) Joints() map[string]gait.SkeletonJoint {
	out := make(map[string]gait.SkeletonJoint, len(m.joints))
	for name, j := range m.joints {
		out[name] = j
	}
	return out
}

// Traverse implements gait.Skeleton. Visual and bone nodes are not visited.
func (m *Model) Traverse(fn func(gait.Link)) {
	m.Base.Traverse(func(n *quarkgl.Node) {
		if n.Mesh != nil {
			return
		}
		fn(m.link(n))
	})
}

// Root returns the placement transform as a gait.Root.
func (m *Model) Root() gait.Root { return rootBody{m.Base} }

// Link adapts a node to gait.Link. Rotation is the local Euler angle about Y.
type Link struct {
	node *quarkgl.Node
}

func (l *Link) Node() *quarkgl.Node     { return l.node }
func (l *Link) LinkName() string        { return l.node.Name }
func (l *Link) Rotation() float64       { return l.node.Rotation.Y }
func (l *Link) SetRotation(rad float64) { l.node.Rotation.Y = rad }
func (l *Link) CommitWorld()            { l.node.UpdateWorld(true) }
func (l *Link) WorldPosition() [3]float64 {
	p := l.node.WorldPosition()
	return [3]float64{p.X, p.Y, p.Z}
}

type rootBody struct {
	n *quarkgl.Node
}

func (r rootBody) Position() [3]float64 {
	return [3]float64{r.n.Position.X, r.n.Position.Y, r.n.Position.Z}
}

func (r rootBody) SetPosition(p [3]float64) { r.n.Position = quarkgl.V3(p[0], p[1], p[2]) }
func (r rootBody) CommitWorld()             { r.n.UpdateWorld(true) }
