package gait

import "math"

const (
	// MinCalfSwing and MaxCalfSwing bound the calf bend below its baseline.
	MinCalfSwing = 2 * ThighOffset
	MaxCalfSwing = 2 * (math.Pi / 4)
	// HipSwing is the peak hip and shoulder rotation in radians.
	HipSwing = 0.6
)

// Frame is the oscillator state produced by one tick.
type Frame struct {
	Seq   uint64
	Cycle float64
	EaseA float64
	EaseB float64
}

// Ease returns the progress that drives a leg's diagonal pair. Legs outside
// both pairs get zero.
func (f Frame) Ease(l Leg) float64 {
	switch l.Pair() {
	case PairA:
		return f.EaseA
	case PairB:
		return f.EaseB
	default:
		return 0
	}
}

// CalfAngle is the calf bend for a given ease, in [MinCalfSwing, MaxCalfSwing].
func CalfAngle(ease float64) float64 {
	return MinCalfSwing + (MaxCalfSwing-MinCalfSwing)*ease
}

// Driver applies the oscillator to the tracked links every frame and pins the
// root to where it was when the driver was created.
type Driver struct {
	osc   Oscillator
	links *LinkSet
	root  Root
	spawn [3]float64
	seq   uint64
}

// NewDriver captures the spawn position of root, which may be nil.
func NewDriver(links *LinkSet, root Root) *Driver {
	if links == nil {
		links = newLinkSet()
	}
	d := &Driver{links: links, root: root}
	if root != nil {
		d.spawn = root.Position()
	}
	return d
}

// Tick advances the gait by dt seconds and updates every tracked link.
// Joint values are left alone; only link rotations change.
func (d *Driver) Tick(dt float64) Frame {
	easeA, easeB := d.osc.Advance(dt)
	d.seq++
	f := Frame{Seq: d.seq, Cycle: d.osc.Cycle(), EaseA: easeA, EaseB: easeB}

	for _, t := range d.links.calves {
		t.Link.SetRotation(t.Baseline - CalfAngle(f.Ease(t.Leg)))
		t.Link.CommitWorld()
	}
	for _, t := range d.links.hips {
		t.Link.SetRotation(t.Baseline + f.Ease(t.Leg)*HipSwing)
		t.Link.CommitWorld()
	}
	for _, t := range d.links.shoulders {
		t.Link.SetRotation(t.Baseline - f.Ease(t.Leg)*HipSwing)
		t.Link.CommitWorld()
	}

	if d.root != nil {
		d.root.SetPosition(d.spawn)
		d.root.CommitWorld()
	}
	return f
}

// Spawn is the root position held every frame.
func (d *Driver) Spawn() [3]float64 { return d.spawn }

// Links returns the animated link set.
func (d *Driver) Links() *LinkSet { return d.links }

// Cycle is the oscillator position in [0, 2).
func (d *Driver) Cycle() float64 { return d.osc.Cycle() }
