package hal

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var h HAL
	steps := 0
	err := RunHeadless(context.Background(), func(x HAL) (func() error, error) {
		h = x
		return func() error {
			steps++
			return nil
		}, nil
	}, HeadlessConfig{Hz: 200, Ticks: 5, Fixed: true})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 5 {
		t.Fatalf("steps = %d, want 5", steps)
	}
	if got := h.Clock().Delta(); math.Abs(got-0.005) > 1e-12 {
		t.Fatalf("delta = %v, want 0.005", got)
	}
	fb := h.Display().Framebuffer()
	if fb.Width() != DefaultWidth || fb.Height() != DefaultHeight {
		t.Fatalf("framebuffer %dx%d", fb.Width(), fb.Height())
	}
}

func TestRunHeadlessPropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) (func() error, error) {
		return nil, boom
	}, HeadlessConfig{Ticks: 1})
	if !errors.Is(err, boom) {
		t.Fatalf("constructor error = %v", err)
	}

	err = RunHeadless(context.Background(), func(HAL) (func() error, error) {
		return func() error { return boom }, nil
	}, HeadlessConfig{Hz: 500})
	if !errors.Is(err, boom) {
		t.Fatalf("step error = %v", err)
	}
}

func TestRunHeadlessCancel(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, func(HAL) (func() error, error) { return nil, nil }, HeadlessConfig{Hz: 100})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v", err)
	}
}

func TestHostPress(t *testing.T) {
	h := NewHost(4, 4, 0)
	if !h.Press(KeyEvent{Rune: 'w', Press: true}) {
		t.Fatal("press rejected")
	}
	select {
	case ev := <-h.Input().Keyboard().Events():
		if ev.Rune != 'w' {
			t.Fatalf("rune = %q", ev.Rune)
		}
	default:
		t.Fatal("no event")
	}
	for h.Press(KeyEvent{Code: KeyUp}) {
	}
	if len(h.kbd.ch) != cap(h.kbd.ch) {
		t.Fatal("queue should be full")
	}
}

func TestExpandRGB565(t *testing.T) {
	fb := newHostFramebuffer(2, 1)
	fb.ClearRGB(0xFF, 0x00, 0xFF)
	dst := make([]byte, 8)
	expandRGB565(dst, fb.Buffer())
	for i := 0; i < 2; i++ {
		px := dst[i*4 : i*4+4]
		if px[0] != 0xFF || px[1] != 0 || px[2] != 0xFF || px[3] != 0xFF {
			t.Fatalf("pixel %d = %v", i, px)
		}
	}
}
