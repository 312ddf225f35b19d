package gait

// Link is a rigid part of the mechanism. Rotation is the local rotation about
// the fixed pose axis, in radians. Implementations must be comparable (pointer
// types) since links are deduplicated by identity.
type Link interface {
	LinkName() string
	Rotation() float64
	SetRotation(rad float64)
	CommitWorld()
}

// Committer refreshes a world transform after a local change.
type Committer interface {
	CommitWorld()
}

// SkeletonJoint is what the skeleton graph exposes per joint. Both methods may return nil.
type SkeletonJoint interface {
	Link() Link
	Parent() Committer
}

// ValueSetter is the optional capability used to articulate a joint. Without it
// only the registry's value is updated.
type ValueSetter interface {
	SetJointValue(rad float64)
}

// ValueReader exposes the joint value the loader started with.
type ValueReader interface {
	JointValue() float64
}

// Recomputer is the optional hook run after a value change.
type Recomputer interface {
	Recompute()
}

// Skeleton is the loaded graph: joints by identifier plus a walk over every node.
type Skeleton interface {
	Joints() map[string]SkeletonJoint
	Traverse(fn func(Link))
}

// Root is the mechanism's root transform.
type Root interface {
	Position() [3]float64
	SetPosition(p [3]float64)
	CommitWorld()
}
