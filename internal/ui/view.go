package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	artistStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	loopStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

const helpLine = "space play · p pause · s stop · ←/→ seek · ↑/↓ volume · a/b/c/l loop · m mark · q quit"

func (m Model) View() string {
	var b strings.Builder

	info := m.player.TrackInfo()
	if info != nil {
		b.WriteString(titleStyle.Render(info.Title))
		if info.Artist != "" {
			b.WriteString(artistStyle.Render(" — " + info.Artist))
		}
		b.WriteString("\n\n")
	}

	ratio := 0.0
	if m.sample.Duration > 0 {
		ratio = m.sample.Position / m.sample.Duration
	}
	b.WriteString(fmt.Sprintf("%s / %s  %s\n\n",
		formatTime(m.sample.Position),
		formatTime(m.sample.Duration),
		m.progress.ViewAs(ratio)))

	b.WriteString(m.loopLine())
	b.WriteString("\n")

	if n := m.store.Len(); n > 0 {
		b.WriteString(fmt.Sprintf("%d segment(s) bookmarked\n", n))
	}

	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))
	b.WriteString("\n")

	return b.String()
}

func (m Model) loopLine() string {
	a, okA := m.ctl.PointA()
	b, okB := m.ctl.PointB()

	pa := "--:--"
	if okA {
		pa = formatTime(a)
	}
	pb := "--:--"
	if okB {
		pb = formatTime(b)
	}

	state := "off"
	if m.ctl.Active() {
		state = "on"
	} else if m.ctl.Enabled() {
		state = "armed"
	}

	return loopStyle.Render(fmt.Sprintf("A %s  B %s  loop %s", pa, pb, state))
}

// formatTime renders seconds as mm:ss, clamping negatives to zero.
func formatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
