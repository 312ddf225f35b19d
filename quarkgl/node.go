package quarkgl

// Node is an element of the scene graph with a local transform.
//
// The local matrix is composed as
//
//	Translate(Position) · Euler(Rotation, Order) · RotateAxis(SpinAxis, Spin) · Scale(Scale)
//
// Spin is the articulation angle used by robot joints; plain nodes leave it at zero.
// World is only refreshed by UpdateWorld.
type Node struct {
	Name string

	Position Vec3
	Rotation Vec3
	Order    EulerOrder
	Scale    Vec3

	SpinAxis Vec3
	Spin     Scalar

	Mesh *Mesh

	parent   *Node
	children []*Node
	world    Mat4
}

// NewNode returns a named node with unit scale and an identity world matrix.
func NewNode(name string) *Node {
	return &Node{
		Name:  name,
		Scale: V3(1, 1, 1),
		world: Mat4Identity(),
	}
}

// Add attaches child to n, detaching it from any previous parent.
func (n *Node) Add(child *Node) {
	if n == nil || child == nil || child == n {
		return
	}
	if child.parent != nil {
		child.parent.remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return
		}
	}
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

// World returns the world matrix computed by the last UpdateWorld.
func (n *Node) World() Mat4 { return n.world }

// WorldPosition returns the node origin in world space.
func (n *Node) WorldPosition() Vec3 {
	return V3(n.world[12], n.world[13], n.world[14])
}

// Local composes the local matrix from the transform fields.
func (n *Node) Local() Mat4 {
	scale := n.Scale
	if scale == (Vec3{}) {
		scale = V3(1, 1, 1)
	}
	m := Mat4Translate(n.Position)
	m = Mat4Mul(m, Mat4Euler(n.Rotation, n.Order))
	if n.Spin != 0 {
		m = Mat4Mul(m, Mat4RotateAxis(n.SpinAxis, n.Spin))
	}
	return Mat4Mul(m, Mat4Scale(scale))
}

// UpdateWorld recomputes the world matrix of n from its parent's cached world matrix,
// then refreshes every descendant. With parents true the ancestors are refreshed first.
func (n *Node) UpdateWorld(parents bool) {
	if n == nil {
		return
	}
	if parents && n.parent != nil {
		n.parent.updateSelf(true)
	}
	n.updateSubtree()
}

func (n *Node) updateSelf(parents bool) {
	if parents && n.parent != nil {
		n.parent.updateSelf(true)
	}
	if n.parent == nil {
		n.world = n.Local()
		return
	}
	n.world = Mat4Mul(n.parent.world, n.Local())
}

func (n *Node) updateSubtree() {
	n.updateSelf(false)
	for _, c := range n.children {
		c.updateSubtree()
	}
}

// Traverse calls fn for n and every descendant, depth first, parents before children.
func (n *Node) Traverse(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.children {
		c.Traverse(fn)
	}
}

// Find returns the first node below n (inclusive) with the given name.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Traverse(func(c *Node) {
		if found == nil && c.Name == name {
			found = c
		}
	})
	return found
}

// BoundsOf returns the world-space box of every enabled mesh vertex below n.
// World matrices must be current.
func BoundsOf(n *Node) Box3 {
	var b Box3
	n.Traverse(func(c *Node) {
		if c.Mesh == nil || !c.Mesh.Enabled {
			return
		}
		m := Mat4Mul(c.world, c.Mesh.transform())
		for _, v := range c.Mesh.Vertices {
			b.Expand(TransformPoint(m, v.Pos))
		}
	})
	return b
}
