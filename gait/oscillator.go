package gait

import "math"

// CycleDuration is the time in seconds one diagonal pair takes to swing. A full
// gait period, both pairs, is twice that.
const CycleDuration = 0.4

// Oscillator turns elapsed time into the swing progress of the two diagonal pairs.
// The zero value starts at cycle position 0.
type Oscillator struct {
	cycle float64
}

// Advance moves the cycle position by dt seconds and returns the eased progress
// of pair A and pair B. Negative, NaN or infinite dt counts as zero.
func (o *Oscillator) Advance(dt float64) (easeA, easeB float64) {
	if dt > 0 && !math.IsInf(dt, 1) {
		o.cycle = math.Mod(o.cycle+dt/CycleDuration, 2)
	}
	return o.Phases()
}

// Phases returns the eased progress at the current cycle position.
func (o *Oscillator) Phases() (easeA, easeB float64) {
	progressA := math.Min(o.cycle, 1)
	progressB := math.Max(o.cycle-1, 0)
	return Ease(progressA), Ease(progressB)
}

// Cycle is the position in [0, 2).
func (o *Oscillator) Cycle() float64 { return o.cycle }

// Ease maps progress p in [0, 1] to sin(pπ). The end points are exactly zero so
// the two pairs are never both in swing.
func Ease(p float64) float64 {
	if p <= 0 || p >= 1 {
		return 0
	}
	return math.Sin(p * math.Pi)
}
