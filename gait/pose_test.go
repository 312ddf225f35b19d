package gait

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-12

func TestStandingPoseFrontLegs(t *testing.T) {
	s := newFakeSkeleton()
	hip := s.joint("FL_hip_joint", "FL_hip", 0.1)
	thigh := s.joint("FL_thigh_joint", "FL_thigh", 0.2)
	calf := s.joint("FL_calf_joint", "FL_calf", 0.3)
	s.joint("FR_hip_joint", "FR_hip", 0)
	s.joint("FR_thigh_joint", "FR_thigh", 0)
	s.joint("FR_calf_joint", "FR_calf", 0)

	reg := Classify(s)
	links := ApplyStandingPose(reg, s)

	j, _ := reg.Joint("FL_calf_joint")
	assert.Equal(t, -math.Pi/2, j.Value)
	assert.Equal(t, -math.Pi/2, calf.value)
	j, _ = reg.Joint("FL_hip_joint")
	assert.Equal(t, 0.0, j.Value)

	// Thigh links carry the +30° bend.
	assert.InDelta(t, 0.2+math.Pi/6, thigh.link.rot, eps)

	// The calf baseline is what the link held when the thigh pass was done;
	// the link itself is bent a further 60° below it.
	tc, ok := links.Tracked(calf.link)
	require.True(t, ok)
	assert.Equal(t, KindCalf, tc.Kind)
	assert.Equal(t, FrontLeft, tc.Leg)
	assert.InDelta(t, 0.3, tc.Baseline, eps)
	assert.InDelta(t, tc.Baseline-math.Pi/3, calf.link.rot, eps)

	th, ok := links.Tracked(hip.link)
	require.True(t, ok)
	assert.Equal(t, KindHip, th.Kind)
	assert.InDelta(t, 0.1, th.Baseline, eps)
	assert.InDelta(t, 0.1, hip.link.rot, eps)

	_, ok = links.Tracked(thigh.link)
	assert.False(t, ok, "thigh links are not animated")
	assert.Equal(t, 2, links.ThighsAdjusted)
	assert.Len(t, links.Calves(), 2)
	assert.Len(t, links.Hips(), 2)
}

func TestStandingPoseCommitsAndHooks(t *testing.T) {
	s := newFakeSkeleton()
	parent := s.node("base", 0)
	fj := s.joint("FL_hip_joint", "FL_hip", 0)
	fj.parent = parent

	ApplyStandingPose(Classify(s), s)
	assert.Equal(t, 1, fj.sets)
	assert.Equal(t, 1, fj.recomputes)
	assert.Equal(t, 1, fj.link.commits)
	assert.Equal(t, 1, parent.commits)
}

func TestStandingPoseWithoutValueCapability(t *testing.T) {
	s := newFakeSkeleton()
	link := s.node("FL_calf", 0)
	s.joints["FL_calf_joint"] = &bareJoint{link: link}
	s.joints["FR_calf_joint"] = &bareJoint{}

	reg := Classify(s)
	links := ApplyStandingPose(reg, s)

	j, _ := reg.Joint("FL_calf_joint")
	assert.Equal(t, StandingCalf, j.Value)
	j, _ = reg.Joint("FR_calf_joint")
	assert.Equal(t, StandingCalf, j.Value)
	assert.Nil(t, j.Link)
	assert.Len(t, links.Calves(), 1)
	assert.InDelta(t, -math.Pi/3, link.rot, eps)
}

func TestStandingPoseSkipsRotors(t *testing.T) {
	s := quadruped()
	reg := Classify(s)
	links := ApplyStandingPose(reg, s)

	for _, p := range []string{"FL", "FR", "RL", "RR"} {
		j, _ := reg.Joint(p + "_calf_rotor_joint")
		assert.Equal(t, 0.0, j.Value)
		assert.Equal(t, 0, s.joints[p+"_calf_rotor_joint"].(*fakeJoint).sets)
		_, tracked := links.Tracked(j.Link)
		assert.False(t, tracked)
		assert.Zero(t, j.Link.Rotation(), "rotor links are not bent")
	}
	assert.Len(t, links.Calves(), 4)
	assert.Len(t, links.Hips(), 4)
	assert.Equal(t, 4, links.ThighsAdjusted)
	assert.Zero(t, links.FallbackCalves+links.FallbackThighs+links.FallbackHips)
}

func TestStandingPoseFallbackDiscovery(t *testing.T) {
	s := newFakeSkeleton()
	// The joints own no links; their parts only appear in the graph.
	s.joint("FL_thigh_joint", "", 0)
	s.joint("FL_calf_joint", "", 0)
	thigh := s.node("FL_thigh", 0.5)
	calf := s.node("FL_calf", 0.4)
	shoulder := s.node("FL_shoulder", 0.3)
	hip := s.node("RR_hip", 0.2)
	s.node("FL_thigh_joint_frame", 0)
	rotor := s.node("FL_calf_rotor", 0.7)

	links := ApplyStandingPose(Classify(s), s)

	assert.InDelta(t, 0.5+ThighOffset, thigh.rot, eps)
	tc, ok := links.Tracked(calf)
	require.True(t, ok)
	assert.InDelta(t, 0.4, tc.Baseline, eps)
	assert.InDelta(t, 0.4-CalfOffset, calf.rot, eps)

	ts, ok := links.Tracked(shoulder)
	require.True(t, ok)
	assert.Equal(t, KindShoulder, ts.Kind)
	assert.InDelta(t, 0.3, shoulder.rot, eps, "shoulders get no offset at init")

	th, ok := links.Tracked(hip)
	require.True(t, ok)
	assert.Equal(t, KindHip, th.Kind)
	assert.Equal(t, BackRight, th.Leg)

	assert.InDelta(t, 0.7, rotor.rot, eps)
	assert.Equal(t, 1, links.FallbackThighs)
	assert.Equal(t, 1, links.FallbackCalves)
	assert.Equal(t, 1, links.FallbackShoulder)
	assert.Equal(t, 1, links.FallbackHips)
}

func TestStandingPoseFallbackDoesNotRepeatJointLinks(t *testing.T) {
	s := quadruped()
	links := ApplyStandingPose(Classify(s), s)

	for _, tc := range links.Calves() {
		assert.InDelta(t, -CalfOffset, tc.Link.Rotation(), eps, tc.Name())
		assert.Zero(t, tc.Baseline)
	}
	for _, p := range []string{"FL", "FR", "RL", "RR"} {
		thigh := s.joints[p+"_thigh_joint"].(*fakeJoint).link
		assert.InDelta(t, ThighOffset, thigh.rot, eps, p)
	}
}

func TestStandingPoseEmptyRegistry(t *testing.T) {
	assert.NotPanics(t, func() {
		links := ApplyStandingPose(Classify(newFakeSkeleton()), newFakeSkeleton())
		assert.Zero(t, links.Len())
		links = ApplyStandingPose(nil, nil)
		assert.Zero(t, links.Len())
	})
}
