package gait

import "sort"

// Joint is a classified skeleton joint.
type Joint struct {
	Name string
	Role Role
	Leg  Leg

	// Value is the current scalar value; Initial the value animation treats as rest.
	Value   float64
	Initial float64

	// Link is the rigid part the joint owns, if any.
	Link Link

	src SkeletonJoint
}

// Grouped reports whether the joint takes part in pose and gait.
func (j *Joint) Grouped() bool {
	return j.Leg != LegNone && j.Role != Unclassified && j.Role != Rotor
}

// LegGroup holds the identifiers of the joints assigned to one limb, sorted.
type LegGroup struct {
	Leg    Leg
	Joints []string
}

// Registry is the result of classification. It is owned by the caller and
// handed by reference to the pose step.
type Registry struct {
	joints map[string]*Joint
	names  []string
	groups [4]LegGroup
}

// Classify registers every joint of the skeleton and assigns roles and legs.
//
// Identifiers are processed in sorted order so the result does not depend on
// map iteration. Unrecognized identifiers are kept as unclassified.
func Classify(s Skeleton) *Registry {
	r := &Registry{joints: make(map[string]*Joint)}
	for i, leg := range Legs {
		r.groups[i].Leg = leg
	}
	if s == nil {
		return r
	}

	src := s.Joints()
	r.names = make([]string, 0, len(src))
	for name := range src {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	for _, name := range r.names {
		j := &Joint{Name: name, src: src[name]}
		if j.src != nil {
			j.Link = j.src.Link()
			if rd, ok := j.src.(ValueReader); ok {
				j.Value = rd.JointValue()
			}
		}
		j.Initial = j.Value

		j.Leg = LegOf(name)
		if j.Leg != LegNone {
			j.Role = RoleOf(name)
		}
		r.joints[name] = j

		if j.Grouped() {
			g := &r.groups[j.Leg.slot()]
			g.Joints = append(g.Joints, name)
		}
	}
	return r
}

// Joint looks up a registered joint.
func (r *Registry) Joint(name string) (*Joint, bool) {
	j, ok := r.joints[name]
	return j, ok
}

// Names returns every registered identifier, sorted.
func (r *Registry) Names() []string { return append([]string(nil), r.names...) }

// Len is the number of registered joints.
func (r *Registry) Len() int { return len(r.joints) }

// Group returns the joints assigned to a leg. LegNone yields an empty group.
func (r *Registry) Group(l Leg) LegGroup {
	if l == LegNone || int(l) > len(r.groups) {
		return LegGroup{Leg: l}
	}
	g := r.groups[l.slot()]
	g.Joints = append([]string(nil), g.Joints...)
	return g
}

// Groups returns all four leg groups in Legs order.
func (r *Registry) Groups() [4]LegGroup {
	var out [4]LegGroup
	for i, leg := range Legs {
		out[i] = r.Group(leg)
	}
	return out
}

// setValue applies a value to a joint and makes the change visible to later
// rotation reads: owned link and parent world transforms are committed.
func (r *Registry) setValue(j *Joint, v float64) {
	j.Value = v
	j.Initial = v
	if j.src == nil {
		return
	}
	if s, ok := j.src.(ValueSetter); ok {
		s.SetJointValue(v)
	}
	if rc, ok := j.src.(Recomputer); ok {
		rc.Recompute()
	}
	if j.Link != nil {
		j.Link.CommitWorld()
	}
	if p := j.src.Parent(); p != nil {
		p.CommitWorld()
	}
}
