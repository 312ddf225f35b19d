package gait

// LinkKind says how the driver animates a tracked link.
type LinkKind uint8

const (
	KindCalf LinkKind = iota + 1
	KindHip
	KindShoulder
)

func (k LinkKind) String() string {
	switch k {
	case KindCalf:
		return "calf"
	case KindHip:
		return "hip"
	case KindShoulder:
		return "shoulder"
	default:
		return "unknown"
	}
}

// TrackedLink is a link animated every frame relative to its baseline.
type TrackedLink struct {
	Link Link
	Kind LinkKind
	Leg  Leg

	// Baseline is the rotation every frame is computed from. It is never read
	// back from the link once set.
	Baseline float64
}

// Name is the link identifier.
func (t *TrackedLink) Name() string { return t.Link.LinkName() }

// LinkSet is the set of links found by the pose step.
type LinkSet struct {
	calves    []*TrackedLink
	hips      []*TrackedLink
	shoulders []*TrackedLink
	index     map[Link]*TrackedLink

	// Counters describing what the pose step did.
	ThighsAdjusted   int
	FallbackThighs   int
	FallbackCalves   int
	FallbackHips     int
	FallbackShoulder int
}

func newLinkSet() *LinkSet {
	return &LinkSet{index: make(map[Link]*TrackedLink)}
}

// track registers l under kind and captures its current rotation as baseline.
// A link already tracked under any kind is returned unchanged with added=false.
func (s *LinkSet) track(l Link, kind LinkKind) (t *TrackedLink, added bool) {
	if t, ok := s.index[l]; ok {
		return t, false
	}
	t = &TrackedLink{Link: l, Kind: kind, Leg: LegOf(l.LinkName()), Baseline: l.Rotation()}
	s.index[l] = t
	switch kind {
	case KindCalf:
		s.calves = append(s.calves, t)
	case KindHip:
		s.hips = append(s.hips, t)
	case KindShoulder:
		s.shoulders = append(s.shoulders, t)
	}
	return t, true
}

// Tracked reports whether l is part of the set.
func (s *LinkSet) Tracked(l Link) (*TrackedLink, bool) {
	if s == nil {
		return nil, false
	}
	t, ok := s.index[l]
	return t, ok
}

func (s *LinkSet) Calves() []*TrackedLink    { return s.calves }
func (s *LinkSet) Hips() []*TrackedLink      { return s.hips }
func (s *LinkSet) Shoulders() []*TrackedLink { return s.shoulders }

// All returns calves, hips then shoulders.
func (s *LinkSet) All() []*TrackedLink {
	out := make([]*TrackedLink, 0, s.Len())
	out = append(out, s.calves...)
	out = append(out, s.hips...)
	return append(out, s.shoulders...)
}

// Len is the number of tracked links.
func (s *LinkSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.index)
}
