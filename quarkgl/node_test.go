package quarkgl

import (
	"math"
	"testing"
)

func near(a, b Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestNodeWorldPropagation(t *testing.T) {
	root := NewNode("root")
	arm := NewNode("arm")
	hand := NewNode("hand")
	root.Add(arm)
	arm.Add(hand)

	root.Position = V3(0, 1, 0)
	arm.Rotation.Y = math.Pi / 2
	hand.Position = V3(1, 0, 0)
	root.UpdateWorld(false)

	// +X in arm space is -Z in world space after a quarter turn about Y.
	if got := hand.WorldPosition(); !near(got, V3(0, 1, -1)) {
		t.Fatalf("hand world position: %+v", got)
	}

	// A mutation is invisible until committed.
	arm.Rotation.Y = 0
	if got := hand.WorldPosition(); !near(got, V3(0, 1, -1)) {
		t.Fatalf("uncommitted mutation leaked: %+v", got)
	}
	arm.UpdateWorld(true)
	if got := hand.WorldPosition(); !near(got, V3(1, 1, 0)) {
		t.Fatalf("after commit: %+v", got)
	}
}

func TestNodeSpinAppliesAfterEuler(t *testing.T) {
	n := NewNode("joint")
	n.SpinAxis = V3(0, 0, 1)
	n.Spin = math.Pi / 2
	n.UpdateWorld(false)
	if got := TransformPoint(n.World(), V3(1, 0, 0)); !near(got, V3(0, 1, 0)) {
		t.Fatalf("spin: %+v", got)
	}
}

func TestNodeAddReparents(t *testing.T) {
	a, b, c := NewNode("a"), NewNode("b"), NewNode("c")
	a.Add(c)
	b.Add(c)
	if len(a.Children()) != 0 || c.Parent() != b {
		t.Fatalf("child not moved")
	}
	if b.Find("c") != c || a.Find("c") != nil {
		t.Fatalf("find mismatch")
	}
}

func TestBoundsOfIgnoresDisabledMeshes(t *testing.T) {
	root := NewNode("root")
	if !BoundsOf(root).Empty() {
		t.Fatalf("bounds of empty graph should be empty")
	}

	box := NewNode("box")
	box.Position = V3(2, 0, 0)
	box.Mesh = BoxMesh(V3(1, 1, 1), RGB(255, 0, 0))
	root.Add(box)

	hidden := NewNode("hidden")
	hidden.Mesh = BoxMesh(V3(10, 10, 10), RGB(0, 255, 0))
	hidden.Mesh.Enabled = false
	root.Add(hidden)

	root.UpdateWorld(false)
	b := BoundsOf(root)
	if !near(b.Center(), V3(2, 0, 0)) || !near(b.Size(), V3(1, 1, 1)) {
		t.Fatalf("bounds: %+v", b)
	}
}
