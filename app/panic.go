package app

import (
	"fmt"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"
)

// PanicError is returned by Step when a frame panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string { return fmt.Sprintf("viewer panic: %v", e.Value) }

// guard runs fn and turns a panic into a PanicError, logging the stack and
// painting it on the framebuffer when one is attached.
func (v *Viewer) guard(fn func() error) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		pe := &PanicError{Value: r, Stack: debug.Stack()}
		v.log.Error().Interface("panic", r).Uint64("frame", v.frame.Seq).Msg("frame panicked")
		for _, line := range strings.Split(string(pe.Stack), "\n") {
			if line != "" {
				v.log.Debug().Msg(line)
			}
		}
		v.drawPanic(pe)
		err = pe
	}()
	return fn()
}

func (v *Viewer) drawPanic(pe *PanicError) {
	if v.hud == nil {
		return
	}
	fb := v.hud.d.fb
	fb.ClearRGB(255, 255, 255)

	_, outboxWidth := tinyfont.LineWidth(v.hud.font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		return
	}

	lines := []string{
		"quadtrot panic:",
		fmt.Sprintf("frame: %d", v.frame.Seq),
		fmt.Sprintf("panic: %v", pe.Value),
		"stack:",
	}
	for _, line := range strings.Split(string(pe.Stack), "\n") {
		if line != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}

	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}
	y := int16(hudLineHeight)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y) > fb.Height() {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(v.hud.d, v.hud.font, 0, y, chunk, colorPanicFG)
			y += hudLineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if int64(len(s)) <= int64(n) {
		return s, ""
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
