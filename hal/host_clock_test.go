package hal

import (
	"context"
	"math"
	"testing"
	"time"
)

func TestHostClockWallTime(t *testing.T) {
	now := time.Unix(100, 0)
	c := newHostClock(func() time.Time { return now }, 0)

	c.step()
	if c.Delta() != 0 {
		t.Fatalf("first delta = %v, want 0", c.Delta())
	}

	now = now.Add(250 * time.Millisecond)
	c.step()
	if math.Abs(c.Delta()-0.25) > 1e-9 {
		t.Fatalf("delta = %v, want 0.25", c.Delta())
	}

	// A clock that goes backwards never yields a negative delta.
	now = now.Add(-time.Second)
	c.step()
	if c.Delta() != 0 {
		t.Fatalf("delta after rewind = %v, want 0", c.Delta())
	}
	if c.Steps() != 3 {
		t.Fatalf("steps = %d, want 3", c.Steps())
	}
	if math.Abs(c.Elapsed()-0.25) > 1e-9 {
		t.Fatalf("elapsed = %v, want 0.25", c.Elapsed())
	}
}

func TestHostClockFixed(t *testing.T) {
	c := newHostClock(nil, 50)
	for i := 0; i < 5; i++ {
		c.step()
	}
	if math.Abs(c.Delta()-0.02) > 1e-12 {
		t.Fatalf("delta = %v, want 0.02", c.Delta())
	}
	if math.Abs(c.Elapsed()-0.1) > 1e-9 {
		t.Fatalf("elapsed = %v, want 0.1", c.Elapsed())
	}
}

func TestHostClockFixedRateIsExact(t *testing.T) {
	c := newHostClock(nil, 60)
	for i := 0; i < 12; i++ {
		c.step()
	}
	if c.Delta() != 1.0/60 {
		t.Fatalf("delta = %v, want exactly 1/60", c.Delta())
	}
	if c.Elapsed() != 12.0/60 {
		t.Fatalf("elapsed = %v, want exactly 0.2", c.Elapsed())
	}
}

func TestHeadlessFixedStepsAtHz(t *testing.T) {
	var deltas []float64
	cfg := HeadlessConfig{Hz: 240, Ticks: 3, Fixed: true, Width: 4, Height: 4}
	err := RunHeadless(context.Background(), func(h HAL) (func() error, error) {
		return func() error {
			deltas = append(deltas, h.Clock().Delta())
			return nil
		}, nil
	}, cfg)
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if len(deltas) != 3 {
		t.Fatalf("steps = %d, want 3", len(deltas))
	}
	for i, d := range deltas {
		if d != 1.0/240 {
			t.Fatalf("delta[%d] = %v, want exactly 1/240", i, d)
		}
	}
}
