package gait

import "strings"

// Leg identifies one of the four limb slots.
type Leg uint8

const (
	LegNone Leg = iota
	FrontLeft
	FrontRight
	BackLeft
	BackRight
)

// Legs lists the four limb slots in group order.
var Legs = [4]Leg{FrontLeft, FrontRight, BackLeft, BackRight}

func (l Leg) String() string {
	switch l {
	case FrontLeft:
		return "frontLeft"
	case FrontRight:
		return "frontRight"
	case BackLeft:
		return "backLeft"
	case BackRight:
		return "backRight"
	default:
		return "none"
	}
}

// Short returns the two letter code used in logs and the monitor.
func (l Leg) Short() string {
	switch l {
	case FrontLeft:
		return "FL"
	case FrontRight:
		return "FR"
	case BackLeft:
		return "BL"
	case BackRight:
		return "BR"
	default:
		return "--"
	}
}

func (l Leg) slot() int { return int(l) - 1 }

// Pair is a diagonal leg pair of the trot gait.
type Pair uint8

const (
	PairNone Pair = iota
	// PairA is front-left with back-right.
	PairA
	// PairB is front-right with back-left.
	PairB
)

// Pair returns the diagonal pair a leg swings with.
func (l Leg) Pair() Pair {
	switch l {
	case FrontLeft, BackRight:
		return PairA
	case FrontRight, BackLeft:
		return PairB
	default:
		return PairNone
	}
}

// Role is the anatomical classification of a joint.
type Role uint8

const (
	Unclassified Role = iota
	Hip
	Thigh
	Calf
	Foot
	Rotor
)

func (r Role) String() string {
	switch r {
	case Hip:
		return "hip"
	case Thigh:
		return "thigh"
	case Calf:
		return "calf"
	case Foot:
		return "foot"
	case Rotor:
		return "rotor"
	default:
		return "unclassified"
	}
}

// sideRule matches when every substring in all is present.
type sideRule struct {
	leg Leg
	all []string
}

// sideRules is evaluated top to bottom; the first match wins.
var sideRules = []sideRule{
	{FrontLeft, []string{"fl_"}},
	{FrontLeft, []string{"front", "left"}},
	{FrontRight, []string{"fr_"}},
	{FrontRight, []string{"front", "right"}},
	{BackLeft, []string{"hl_"}},
	{BackLeft, []string{"rl_"}},
	{BackLeft, []string{"hind_left"}},
	{BackLeft, []string{"back", "left"}},
	{BackLeft, []string{"hind", "left"}},
	{BackLeft, []string{"rear", "left"}},
	{BackRight, []string{"hr_"}},
	{BackRight, []string{"rr_"}},
	{BackRight, []string{"hind_right"}},
	{BackRight, []string{"back", "right"}},
	{BackRight, []string{"hind", "right"}},
	{BackRight, []string{"rear", "right"}},
}

type roleRule struct {
	keyword string
	role    Role
}

// roleRules is evaluated top to bottom; the first match wins. Rotor comes first
// so that a rotor is never mistaken for the segment it drives.
var roleRules = []roleRule{
	{"rotor", Rotor},
	{"hip", Hip},
	{"thigh", Thigh},
	{"calf", Calf},
	{"shin", Calf},
	{"knee", Calf},
	{"ankle", Foot},
	{"foot", Foot},
}

// LegOf returns the leg named by an identifier, or LegNone.
func LegOf(name string) Leg {
	lower := strings.ToLower(name)
	for _, r := range sideRules {
		if containsAll(lower, r.all) {
			return r.leg
		}
	}
	return LegNone
}

// RoleOf returns the role keyword found in an identifier, or Unclassified.
// It does not look at the side code.
func RoleOf(name string) Role {
	lower := strings.ToLower(name)
	for _, r := range roleRules {
		if strings.Contains(lower, r.keyword) {
			return r.role
		}
	}
	return Unclassified
}

func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
