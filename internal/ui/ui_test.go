package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/blindsystems/bop/internal/engine"
	"github.com/blindsystems/bop/internal/loop"
	"github.com/blindsystems/bop/internal/player"
	"github.com/blindsystems/bop/internal/segment"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00"},
		{59.9, "00:59"},
		{60, "01:00"},
		{185, "03:05"},
		{-3, "00:00"},
	}

	for _, tt := range tests {
		if got := formatTime(tt.seconds); got != tt.want {
			t.Errorf("formatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func newTestModel() (Model, *engine.Mock) {
	m := engine.NewMock()
	p := player.New(m)
	ctl := loop.NewController()
	poller := loop.NewPoller(p, ctl)
	return New(p, ctl, poller.Subscription(), segment.NewStore()), m
}

func key(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestUpdate_SetPointsAndToggleLoop(t *testing.T) {
	model, _ := newTestModel()

	next, _ := model.Update(key('a'))
	model = next.(Model)
	next, _ = model.Update(key('b'))
	model = next.(Model)
	next, _ = model.Update(key('l'))
	model = next.(Model)

	if _, ok := model.ctl.PointA(); !ok {
		t.Error("point A not set after 'a'")
	}
	if _, ok := model.ctl.PointB(); !ok {
		t.Error("point B not set after 'b'")
	}
	if !model.ctl.Enabled() {
		t.Error("loop not enabled after 'l'")
	}

	next, _ = model.Update(key('c'))
	model = next.(Model)
	if _, ok := model.ctl.PointA(); ok {
		t.Error("point A still set after 'c'")
	}
	if model.ctl.Enabled() {
		t.Error("loop still enabled after 'c'")
	}
}

func TestUpdate_MarkRequiresBothPoints(t *testing.T) {
	model, _ := newTestModel()

	next, _ := model.Update(key('m'))
	model = next.(Model)

	if model.store.Len() != 0 {
		t.Errorf("store.Len() = %d after mark without points, want 0", model.store.Len())
	}

	model.ctl.SetPointA(5)
	model.ctl.SetPointB(10)
	next, _ = model.Update(key('m'))
	model = next.(Model)

	if model.store.Len() != 1 {
		t.Fatalf("store.Len() = %d, want 1", model.store.Len())
	}
	seg := model.store.List()[0]
	if seg.Start != 5 || seg.End != 10 {
		t.Errorf("marked segment = %+v, want bounds 5/10", seg)
	}
}

func TestUpdate_VolumeKeys(t *testing.T) {
	model, mock := newTestModel()
	mock.SetVolume(50)

	next, _ := model.Update(tea.KeyMsg{Type: tea.KeyUp})
	model = next.(Model)

	if got := mock.Volume(); got != 55 {
		t.Errorf("volume after up = %d, want 55", got)
	}

	next, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	model = next.(Model)
	_ = model

	if got := mock.Volume(); got != 50 {
		t.Errorf("volume after down = %d, want 50", got)
	}
}
