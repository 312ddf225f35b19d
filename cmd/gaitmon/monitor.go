package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"quadtrot/app"
	"quadtrot/gait"
	"quadtrot/hal"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EEEEEE"))
	pairAStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ADF6A"))
	pairBStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#66B3FF"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	pausedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFDD66")).Bold(true)
)

const barWidth = 30

type tickMsg time.Time

type monitor struct {
	host   *hal.Host
	viewer *app.Viewer
	every  time.Duration
	err    error
}

func newMonitor(h *hal.Host, v *app.Viewer, every time.Duration) monitor {
	return monitor{host: h, viewer: v, every: every}
}

func (m monitor) tick() tea.Cmd {
	return tea.Tick(m.every, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m monitor) Init() tea.Cmd {
	return m.tick()
}

func (m monitor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.viewer.SetPaused(!m.viewer.Paused())
		}
	case tickMsg:
		m.host.Step()
		if err := m.viewer.Step(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m monitor) View() string {
	var b strings.Builder
	f := m.viewer.Frame()

	b.WriteString(titleStyle.Render("gaitmon  " + m.viewer.Model().Name))
	if m.viewer.Paused() {
		b.WriteString("  " + pausedStyle.Render("paused"))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "frame %-6d cycle %.3f\n", f.Seq, f.Cycle)
	fmt.Fprintf(&b, "ease A %s %.2f\n", pairAStyle.Render(bar(f.EaseA, barWidth)), f.EaseA)
	fmt.Fprintf(&b, "ease B %s %.2f\n\n", pairBStyle.Render(bar(f.EaseB, barWidth)), f.EaseB)

	reg := m.viewer.Rig().Registry()
	fmt.Fprintf(&b, "%-4s %8s %8s  %s\n", "leg", "calf°", "hip°", "joints")
	for _, leg := range gait.Legs {
		e := f.Ease(leg)
		calf := gait.CalfAngle(e) * 180 / math.Pi
		hip := e * gait.HipSwing * 180 / math.Pi
		var joints string
		if reg != nil {
			joints = strings.Join(reg.Group(leg).Joints, " ")
		}
		fmt.Fprintf(&b, "%-4s %8.1f %8.1f  %s\n", leg.Short(), calf, hip, dimStyle.Render(joints))
	}

	if m.err != nil {
		fmt.Fprintf(&b, "\nerror: %v\n", m.err)
	}
	b.WriteString(dimStyle.Render("\nspace pause · q quit"))
	return b.String()
}

// bar renders v in [0,1] as a fixed-width meter.
func bar(v float64, width int) string {
	n := int(math.Round(v * float64(width)))
	n = min(max(n, 0), width)
	return strings.Repeat("█", n) + strings.Repeat("·", width-n)
}
