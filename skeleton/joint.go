package skeleton

import (
	"quadtrot/gait"
	"quadtrot/quarkgl"
)

// JointType is the URDF joint type.
type JointType string

const (
	Revolute   JointType = "revolute"
	Continuous JointType = "continuous"
	Prismatic  JointType = "prismatic"
	Fixed      JointType = "fixed"
	Floating   JointType = "floating"
	Planar     JointType = "planar"
)

// Joint is a URDF joint. Its node sits between the parent and child links and
// carries the origin transform plus the articulation.
type Joint struct {
	Name   string
	Type   JointType
	Axis   quarkgl.Vec3
	Origin quarkgl.Vec3

	Lower, Upper float64

	value  float64
	node   *quarkgl.Node
	parent *Link
	child  *Link
}

func (j *Joint) Node() *quarkgl.Node { return j.node }

// Limited reports whether values are clamped to [Lower, Upper].
func (j *Joint) Limited() bool {
	return (j.Type == Revolute || j.Type == Prismatic) && j.Upper > j.Lower
}

// JointValue implements gait.ValueReader.
func (j *Joint) JointValue() float64 { return j.value }

// SetJointValue implements gait.ValueSetter. Fixed joints ignore values.
func (j *Joint) SetJointValue(v float64) {
	switch j.Type {
	case Revolute, Continuous, Prismatic:
	default:
		return
	}
	if j.Limited() {
		v = min(max(v, j.Lower), j.Upper)
	}
	j.value = v
}

// Recompute implements gait.Recomputer: the value is written into the node.
func (j *Joint) Recompute() {
	switch j.Type {
	case Revolute, Continuous:
		j.node.Spin = j.value
	case Prismatic:
		j.node.Position = j.Origin.Add(j.Axis.Mul(j.value))
	}
}

// Link implements gait.SkeletonJoint: the child link.
func (j *Joint) Link() gait.Link {
	if j.child == nil {
		return nil
	}
	return j.child
}

// Parent implements gait.SkeletonJoint: the parent link.
func (j *Joint) Parent() gait.Committer {
	if j.parent == nil {
		return nil
	}
	return j.parent
}
