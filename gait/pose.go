package gait

import (
	"math"
	"strings"
)

const (
	// StandingCalf is the calf joint value of the standing pose.
	StandingCalf = -math.Pi / 2
	// ThighOffset is added to every thigh link once the joints are set.
	ThighOffset = math.Pi / 6
	// CalfOffset is subtracted from every calf link after its baseline is captured.
	CalfOffset = 2 * ThighOffset
)

// ApplyStandingPose sets every grouped joint to its standing value, bends the
// thigh and calf links, and returns the links the driver animates.
//
// It is not idempotent: the link offsets are additive. Rig guards it so it runs once.
func ApplyStandingPose(reg *Registry, s Skeleton) *LinkSet {
	set := newLinkSet()
	if reg == nil || reg.Len() == 0 {
		return set
	}

	var thighs []Link
	reached := make(map[Link]bool)

	for _, g := range reg.groups {
		for _, name := range g.Joints {
			j := reg.joints[name]
			switch j.Role {
			case Rotor:
				continue
			case Hip:
				reg.setValue(j, 0)
				if j.Link != nil {
					set.track(j.Link, KindHip)
				}
			case Thigh:
				reg.setValue(j, 0)
				if j.Link != nil && !reached[j.Link] {
					thighs = append(thighs, j.Link)
					reached[j.Link] = true
				}
			case Calf:
				reg.setValue(j, StandingCalf)
				if j.Link != nil {
					set.track(j.Link, KindCalf)
				}
			default:
				reg.setValue(j, 0)
			}
		}
	}

	for _, l := range thighs {
		bendThigh(l)
	}
	set.ThighsAdjusted = len(thighs)
	for _, t := range set.calves {
		bendCalf(t)
	}
	for l := range set.index {
		reached[l] = true
	}

	if s == nil {
		return set
	}

	// Links whose names do not line up with their joints are found by walking
	// the whole graph.
	var lostThighs, lostCalves []Link
	s.Traverse(func(l Link) {
		name := strings.ToLower(l.LinkName())
		if strings.Contains(name, "joint") || strings.Contains(name, "rotor") || reached[l] {
			return
		}
		if strings.Contains(name, "thigh") {
			lostThighs = append(lostThighs, l)
		}
		if strings.Contains(name, "calf") {
			lostCalves = append(lostCalves, l)
		}
	})
	for _, l := range lostThighs {
		bendThigh(l)
		reached[l] = true
	}
	for _, l := range lostCalves {
		if t, added := set.track(l, KindCalf); added {
			bendCalf(t)
			set.FallbackCalves++
		}
	}
	set.FallbackThighs = len(lostThighs)

	s.Traverse(func(l Link) {
		name := strings.ToLower(l.LinkName())
		for _, skip := range []string{"joint", "rotor", "thigh", "calf"} {
			if strings.Contains(name, skip) {
				return
			}
		}
		switch {
		case strings.Contains(name, "shoulder"):
			if _, added := set.track(l, KindShoulder); added {
				set.FallbackShoulder++
			}
		case strings.Contains(name, "hip"):
			if _, added := set.track(l, KindHip); added {
				set.FallbackHips++
			}
		}
	})
	return set
}

func bendThigh(l Link) {
	l.SetRotation(l.Rotation() + ThighOffset)
	l.CommitWorld()
}

// bendCalf captures the baseline after the thigh pass, then bends away from it.
func bendCalf(t *TrackedLink) {
	t.Baseline = t.Link.Rotation()
	t.Link.SetRotation(t.Baseline - CalfOffset)
	t.Link.CommitWorld()
}
