package gait

type fakeLink struct {
	name     string
	rot      float64
	commits  int
	children []*fakeLink
}

func (l *fakeLink) LinkName() string      { return l.name }
func (l *fakeLink) Rotation() float64     { return l.rot }
func (l *fakeLink) SetRotation(r float64) { l.rot = r }
func (l *fakeLink) CommitWorld()          { l.commits++ }

type fakeJoint struct {
	link       *fakeLink
	parent     *fakeLink
	value      float64
	sets       int
	recomputes int
}

func (j *fakeJoint) Link() Link {
	if j.link == nil {
		return nil
	}
	return j.link
}

func (j *fakeJoint) Parent() Committer {
	if j.parent == nil {
		return nil
	}
	return j.parent
}

func (j *fakeJoint) JointValue() float64     { return j.value }
func (j *fakeJoint) SetJointValue(v float64) { j.value = v; j.sets++ }
func (j *fakeJoint) Recompute()              { j.recomputes++ }

// bareJoint has no value capability and no hook.
type bareJoint struct {
	link *fakeLink
}

func (j *bareJoint) Link() Link {
	if j.link == nil {
		return nil
	}
	return j.link
}

func (j *bareJoint) Parent() Committer { return nil }

type fakeSkeleton struct {
	joints map[string]SkeletonJoint
	nodes  []*fakeLink
}

func newFakeSkeleton() *fakeSkeleton {
	return &fakeSkeleton{joints: make(map[string]SkeletonJoint)}
}

func (s *fakeSkeleton) Joints() map[string]SkeletonJoint { return s.joints }

func (s *fakeSkeleton) Traverse(fn func(Link)) {
	for _, n := range s.nodes {
		fn(n)
	}
}

// node adds a link reachable by traversal.
func (s *fakeSkeleton) node(name string, rot float64) *fakeLink {
	l := &fakeLink{name: name, rot: rot}
	s.nodes = append(s.nodes, l)
	return l
}

// joint adds a joint owning a new link named after the joint minus "_joint".
func (s *fakeSkeleton) joint(name, link string, rot float64) *fakeJoint {
	j := &fakeJoint{}
	if link != "" {
		j.link = s.node(link, rot)
	}
	s.joints[name] = j
	return j
}

// quadruped builds the four legs with B2 style names.
func quadruped() *fakeSkeleton {
	s := newFakeSkeleton()
	s.node("base", 0)
	for _, p := range []string{"FL", "FR", "RL", "RR"} {
		s.joint(p+"_hip_joint", p+"_hip", 0)
		s.joint(p+"_thigh_joint", p+"_thigh", 0)
		s.joint(p+"_calf_joint", p+"_calf", 0)
		s.joint(p+"_foot_joint", p+"_foot", 0)
		s.joint(p+"_calf_rotor_joint", p+"_calf_rotor", 0)
	}
	return s
}

type fakeRoot struct {
	pos     [3]float64
	commits int
}

func (r *fakeRoot) Position() [3]float64     { return r.pos }
func (r *fakeRoot) SetPosition(p [3]float64) { r.pos = p }
func (r *fakeRoot) CommitWorld()             { r.commits++ }
