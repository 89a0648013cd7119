// Package ui is the terminal front end. It is a pure consumer of the core
// contract: position samples arrive over the poller subscription, user
// intents go through the player and loop controller. It never reads the
// media engine directly.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/blindsystems/bop/internal/loop"
	"github.com/blindsystems/bop/internal/player"
	"github.com/blindsystems/bop/internal/segment"
)

const seekStep = 5.0 // seconds per arrow key press

type sampleMsg loop.PositionSample

type rewindMsg loop.Rewind

type pollerStoppedMsg struct{}

// Model is the bubbletea model for the practice player.
type Model struct {
	player *player.Player
	ctl    *loop.Controller
	sub    *loop.Subscription
	store  *segment.Store

	progress progress.Model
	sample   loop.PositionSample
	status   string
	width    int

	nextMark int
}

// New builds the UI over an already-loaded player.
func New(p *player.Player, ctl *loop.Controller, sub *loop.Subscription, store *segment.Store) Model {
	return Model{
		player:   p,
		ctl:      ctl,
		sub:      sub,
		store:    store,
		progress: progress.New(progress.WithDefaultGradient()),
		status:   "Ready.",
		nextMark: store.Len() + 1,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForSample(m.sub), waitForRewind(m.sub))
}

// waitForSample delivers the next published position sample. Samples only
// flow UI-ward; they never turn back into seek requests.
func waitForSample(sub *loop.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-sub.Samples:
			return sampleMsg(s)
		case <-sub.Done:
			return pollerStoppedMsg{}
		}
	}
}

func waitForRewind(sub *loop.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case r := <-sub.Rewinds:
			return rewindMsg(r)
		case <-sub.Done:
			return pollerStoppedMsg{}
		}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 18
		if m.progress.Width < 10 {
			m.progress.Width = 10
		}
		return m, nil

	case sampleMsg:
		m.sample = loop.PositionSample(msg)
		return m, waitForSample(m.sub)

	case rewindMsg:
		m.status = fmt.Sprintf("Looped back to %s.", formatTime(msg.To))
		return m, waitForRewind(m.sub)

	case pollerStoppedMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ":
		m.player.Play()
		m.status = "Playing."

	case "p":
		m.player.Pause()
		m.status = "Paused."

	case "s":
		m.player.Stop()
		m.status = "Stopped."

	case "left":
		m.player.SetPosition(m.sample.Position - seekStep)

	case "right":
		m.player.SetPosition(m.sample.Position + seekStep)

	case "up":
		m.player.SetVolume(m.player.Volume() + 5)
		m.status = fmt.Sprintf("Volume %d%%.", m.player.Volume())

	case "down":
		m.player.SetVolume(m.player.Volume() - 5)
		m.status = fmt.Sprintf("Volume %d%%.", m.player.Volume())

	case "a":
		pos := m.player.Position()
		m.ctl.SetPointA(pos)
		m.status = fmt.Sprintf("Point A set at %s.", formatTime(pos))

	case "b":
		pos := m.player.Position()
		m.ctl.SetPointB(pos)
		m.status = fmt.Sprintf("Point B set at %s.", formatTime(pos))

	case "c":
		m.ctl.Clear()
		m.status = "Points A and B cleared, loop disabled."

	case "l":
		m.ctl.SetEnabled(!m.ctl.Enabled())
		if m.ctl.Enabled() {
			m.status = "Loop enabled."
		} else {
			m.status = "Loop disabled."
		}

	case "m":
		return m.markSegment()
	}

	return m, nil
}

// markSegment bookmarks the current A–B pair as a named segment.
func (m Model) markSegment() (tea.Model, tea.Cmd) {
	a, okA := m.ctl.PointA()
	b, okB := m.ctl.PointB()
	if !okA || !okB {
		m.status = "Set points A and B before marking a segment."
		return m, nil
	}

	name := fmt.Sprintf("Segment %d", m.nextMark)
	m.nextMark++
	m.store.Add(segment.Segment{Name: name, Start: a, End: b})
	m.status = fmt.Sprintf("Saved %s (%s - %s).", name, formatTime(a), formatTime(b))
	return m, nil
}
