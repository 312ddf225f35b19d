//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var polledKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyPageUp, KeyPageUp},
	{ebiten.KeyPageDown, KeyPageDown},
}

func (k *hostKeyboard) poll() {
	emit := func(ev KeyEvent) {
		select {
		case k.ch <- ev:
		default:
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Press: true, Rune: r})
	}

	// Arrow keys repeat while held so orbiting is continuous.
	for _, pk := range polledKeys {
		switch {
		case inpututil.IsKeyJustPressed(pk.key):
			emit(KeyEvent{Code: pk.code, Press: true})
		case inpututil.IsKeyJustReleased(pk.key):
			emit(KeyEvent{Code: pk.code, Press: false})
		case pk.code <= KeyRight && ebiten.IsKeyPressed(pk.key):
			emit(KeyEvent{Code: pk.code, Press: true})
		}
	}
}
