// Package player exposes playback on top of a media engine as a set of total
// operations: transport calls are no-ops when nothing is loaded, and position
// and duration queries degrade to 0 instead of failing. The only hard failure
// is loading a file that does not exist.
package player

import (
	"fmt"
	"os"
	"sync"

	"github.com/blindsystems/bop/internal/engine"
)

// NotFoundError is returned by Load when the path does not reference an
// existing file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("audio file not found: %s", e.Path)
}

// Player owns the media engine handle. All engine access goes through it;
// consumers only ever see positions in seconds, never raw ratios.
type Player struct {
	mu     sync.Mutex
	engine engine.Engine
	loaded bool
	path   string
	track  *TrackInfo
}

// New creates a player around the given engine. Nothing is loaded.
func New(e engine.Engine) *Player {
	return &Player{engine: e}
}

// Load replaces the loaded media with the file at path. Any current playback
// is stopped first. Loading never auto-starts playback.
//
// Returns *NotFoundError if the file does not exist; on any failure the
// previously loaded media and path are left untouched.
func (p *Player) Load(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return &NotFoundError{Path: path}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.loaded {
		p.engine.Stop()
	}

	if err := p.engine.SetMedia(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	p.loaded = true
	p.path = path
	p.track = readTrackInfo(path)
	return nil
}

// Play starts or resumes playback. No-op if nothing is loaded.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		return
	}
	p.engine.Play()
}

// Pause pauses playback. No-op if nothing is loaded.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		return
	}
	p.engine.Pause()
}

// Stop stops playback. No-op if nothing is loaded.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		return
	}
	p.engine.Stop()
}

// SetPosition seeks to the given position in seconds. No-op if nothing is
// loaded or the duration is unknown. Out-of-range targets are clamped to the
// media bounds.
func (p *Player) SetPosition(seconds float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		return
	}
	duration := p.duration()
	if duration <= 0 {
		return
	}
	p.engine.SetPosition(SeekRatio(seconds, duration))
}

// Position returns the current playback position in seconds, or 0 when
// nothing is loaded or the duration is unknown.
func (p *Player) Position() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		return 0
	}
	return PositionSeconds(p.engine.Position(), p.duration())
}

// Duration returns the media duration in seconds, or 0 when nothing is
// loaded or the engine cannot determine it.
//
// Engines that only learn their length once playback has started are driven
// through a single play/stop cycle the first time the length comes back
// unknown; play and stop happen back to back before returning, so the cycle
// is inaudible. Callers never need an explicit Play to get a duration.
func (p *Player) Duration() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.loaded {
		return 0
	}
	return p.duration()
}

// duration reads the engine length, forcing a discovery cycle if needed.
// Callers must hold p.mu.
func (p *Player) duration() float64 {
	lengthMS := p.engine.Length()
	if lengthMS <= 0 {
		p.engine.Play()
		p.engine.Stop()
		lengthMS = p.engine.Length()
	}
	if lengthMS <= 0 {
		return 0
	}
	return float64(lengthMS) / 1000.0
}

// SetVolume sets the volume, clamped to [0, 100].
func (p *Player) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.engine.SetVolume(volume)
}

// Volume returns the engine's current volume as-is.
func (p *Player) Volume() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.engine.Volume()
}

// IsLoaded reports whether a file is currently loaded.
func (p *Player) IsLoaded() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loaded
}

// Path returns the path of the currently loaded file, or "" if none.
func (p *Player) Path() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.path
}

// TrackInfo returns tag metadata for the loaded file, or nil if none.
func (p *Player) TrackInfo() *TrackInfo {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.track
}
