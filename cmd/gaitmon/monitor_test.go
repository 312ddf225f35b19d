package main

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quadtrot/app"
	"quadtrot/hal"
	"quadtrot/internal/trace"
)

func newTestMonitor(t *testing.T) monitor {
	t.Helper()
	h := hal.NewHost(0, 0, 30)
	v, err := app.New(context.Background(), h, app.Options{Logger: zerolog.Nop(), NoRender: true})
	require.NoError(t, err)
	return newMonitor(h, v, time.Second/30)
}

func TestMonitorTicksRig(t *testing.T) {
	m := newTestMonitor(t)

	next, cmd := m.Update(tickMsg(time.Now()))
	require.NotNil(t, cmd)
	m = next.(monitor)
	next, _ = m.Update(tickMsg(time.Now()))
	m = next.(monitor)

	assert.Equal(t, uint64(2), m.viewer.Frame().Seq)
	view := m.View()
	assert.Contains(t, view, "frame 2")
	assert.Contains(t, view, "FL_calf_joint")
	assert.Contains(t, view, "BR")
}

func TestMonitorKeys(t *testing.T) {
	m := newTestMonitor(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = next.(monitor)
	assert.True(t, m.viewer.Paused())
	assert.Contains(t, m.View(), "paused")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestBar(t *testing.T) {
	assert.Equal(t, "··········", bar(0, 10))
	assert.Equal(t, "█████·····", bar(0.5, 10))
	assert.Equal(t, "██████████", bar(1.5, 10))
}

type failingRecorder struct {
	*trace.MemoryRecorder
}

func (failingRecorder) Record(context.Context, string, trace.Sample) error {
	return errors.New("disk full")
}

func TestRunMonitorReturnsStepError(t *testing.T) {
	ctx := context.Background()
	rec := failingRecorder{trace.NewMemoryRecorder()}
	require.NoError(t, rec.Init(ctx))

	h := hal.NewHost(0, 0, 30)
	v, err := app.New(ctx, h, app.Options{Logger: zerolog.Nop(), Recorder: rec, NoRender: true})
	require.NoError(t, err)

	m := newMonitor(h, v, time.Millisecond)
	err = runMonitor(m, tea.WithInput(nil), tea.WithOutput(io.Discard), tea.WithoutSignalHandler())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record frame 1: disk full")
}
