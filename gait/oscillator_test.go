package gait

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// cycleDistance is the distance between two positions on the [0, 2) circle.
func cycleDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	return math.Min(d, 2-d)
}

func TestOscillatorReturnsAfterFullPeriod(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		var o Oscillator
		o.Advance(rng.Float64() * 3)
		start := o.Cycle()

		// Split one full period (both pairs) into random steps.
		remaining := 2 * CycleDuration
		for remaining > 0 {
			dt := math.Min(remaining, rng.Float64()*0.05)
			o.Advance(dt)
			remaining -= dt
		}
		assert.InDelta(t, 0, cycleDistance(start, o.Cycle()), 1e-9)
	}
}

func TestOscillatorOneCycleDurationSwapsPairs(t *testing.T) {
	var o Oscillator
	o.Advance(0.1)
	a, b := o.Phases()
	o.Advance(CycleDuration)
	a2, b2 := o.Phases()
	assert.InDelta(t, a, b2, 1e-9)
	assert.InDelta(t, b, a2, 1e-9)
	assert.InDelta(t, 1.25, o.Cycle(), 1e-9)
}

func TestOscillatorPhasesAreDisjoint(t *testing.T) {
	var o Oscillator
	for i := 0; i < 5000; i++ {
		a, b := o.Advance(0.0007)
		assert.False(t, a != 0 && b != 0, "both pairs in swing at cycle %v", o.Cycle())
		assert.GreaterOrEqual(t, a, 0.0)
		assert.LessOrEqual(t, a, 1.0)
		assert.GreaterOrEqual(t, b, 0.0)
		assert.LessOrEqual(t, b, 1.0)
	}
}

func TestOscillatorMidpointPeaks(t *testing.T) {
	var o Oscillator
	a, b := o.Advance(0.5 * CycleDuration)
	assert.Equal(t, 1.0, a)
	assert.Equal(t, 0.0, b)
	assert.InDelta(t, math.Pi/2, CalfAngle(a), eps)
}

func TestOscillatorIgnoresInvalidElapsed(t *testing.T) {
	var o Oscillator
	o.Advance(0.1)
	c := o.Cycle()
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		o.Advance(dt)
		assert.Equal(t, c, o.Cycle(), "dt=%v", dt)
	}
}

func TestEaseEndpoints(t *testing.T) {
	assert.Equal(t, 0.0, Ease(0))
	assert.Equal(t, 0.0, Ease(1))
	assert.Equal(t, 0.0, Ease(-0.5))
	assert.Equal(t, 0.0, Ease(1.5))
	assert.InDelta(t, math.Sin(0.25*math.Pi), Ease(0.25), eps)
}
