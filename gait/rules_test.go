package gait

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegOf(t *testing.T) {
	cases := map[string]Leg{
		"FL_hip_joint":          FrontLeft,
		"front_left_knee":       FrontLeft,
		"FR_calf_joint":         FrontRight,
		"FrontRightThigh":       FrontRight,
		"RL_thigh_joint":        BackLeft,
		"HL_calf":               BackLeft,
		"hind_left_foot":        BackLeft,
		"left_back_shin":        BackLeft,
		"rear_left_hip":         BackLeft,
		"RR_foot_joint":         BackRight,
		"HR_hip":                BackRight,
		"hind_right_ankle":      BackRight,
		"BackRightKnee":         BackRight,
		"rotor_FL":              LegNone,
		"base_to_trunk":         LegNone,
		"":                      LegNone,
		"front_left_and_right":  FrontLeft,
		"fl_fr_ambiguous_thigh": FrontLeft,
	}
	for name, want := range cases {
		assert.Equal(t, want, LegOf(name), name)
	}
}

func TestRoleOf(t *testing.T) {
	cases := map[string]Role{
		"FL_hip_joint":        Hip,
		"FL_thigh_joint":      Thigh,
		"FL_calf_joint":       Calf,
		"FL_shin":             Calf,
		"FL_knee":             Calf,
		"FL_ankle":            Foot,
		"FL_foot_joint":       Foot,
		"FL_calf_rotor_joint": Rotor,
		"FL_hip_rotor":        Rotor,
		"FL_wheel":            Unclassified,
	}
	for name, want := range cases {
		assert.Equal(t, want, RoleOf(name), name)
	}
}

func TestPairs(t *testing.T) {
	assert.Equal(t, PairA, FrontLeft.Pair())
	assert.Equal(t, PairA, BackRight.Pair())
	assert.Equal(t, PairB, FrontRight.Pair())
	assert.Equal(t, PairB, BackLeft.Pair())
	assert.Equal(t, PairNone, LegNone.Pair())
}
