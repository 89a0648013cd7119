package engine

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// speaker.Init may only run once per process.
var speakerInitialized bool

// Beep is an Engine backed by gopxl/beep. Unlike engines that only learn
// duration after playback starts, decoding gives the length up front, so
// Length is known as soon as media is set.
type Beep struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
	level    int
	started  bool
}

// NewBeep returns an engine with no media loaded and volume at maximum.
func NewBeep() *Beep {
	return &Beep{level: 100}
}

var _ Engine = (*Beep)(nil)

func (b *Beep) SetMedia(path string) error {
	b.Stop()
	b.close()

	f, err := os.Open(path)
	if err != nil {
		return err
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return fmt.Errorf("unsupported format: %s", ext)
	}
	if err != nil {
		f.Close()
		return err
	}

	if !speakerInitialized {
		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			f.Close()
			return err
		}
		speakerInitialized = true
	}

	b.file = f
	b.streamer = streamer
	b.format = format
	return nil
}

func (b *Beep) Play() {
	if b.streamer == nil {
		return
	}

	if b.started {
		speaker.Lock()
		b.ctrl.Paused = false
		speaker.Unlock()
		return
	}

	b.ctrl = &beep.Ctrl{Streamer: b.streamer}
	b.volume = &effects.Volume{
		Streamer: b.ctrl,
		Base:     2,
		Volume:   levelToVolume(b.level),
		Silent:   b.level == 0,
	}
	b.started = true
	speaker.Play(b.volume)
}

func (b *Beep) Pause() {
	if !b.started {
		return
	}
	speaker.Lock()
	b.ctrl.Paused = true
	speaker.Unlock()
}

func (b *Beep) Stop() {
	if !b.started {
		return
	}
	speaker.Clear()
	_ = b.streamer.Seek(0)
	b.ctrl = nil
	b.volume = nil
	b.started = false
}

func (b *Beep) Position() float64 {
	if b.streamer == nil {
		return -1
	}
	total := b.streamer.Len()
	if total <= 0 {
		return -1
	}
	speaker.Lock()
	pos := b.streamer.Position()
	speaker.Unlock()
	return float64(pos) / float64(total)
}

func (b *Beep) SetPosition(ratio float64) {
	if b.streamer == nil {
		return
	}
	ratio = math.Min(1, math.Max(0, ratio))
	target := int(ratio * float64(b.streamer.Len()))
	if target >= b.streamer.Len() {
		target = b.streamer.Len() - 1
	}
	if target < 0 {
		target = 0
	}
	speaker.Lock()
	_ = b.streamer.Seek(target)
	speaker.Unlock()
}

func (b *Beep) Length() int64 {
	if b.streamer == nil {
		return 0
	}
	return b.format.SampleRate.D(b.streamer.Len()).Milliseconds()
}

func (b *Beep) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	b.level = volume

	if b.volume != nil {
		speaker.Lock()
		b.volume.Volume = levelToVolume(volume)
		b.volume.Silent = volume == 0
		speaker.Unlock()
	}
}

func (b *Beep) Volume() int {
	return b.level
}

// Close releases the decoder and the underlying file.
func (b *Beep) Close() {
	b.Stop()
	b.close()
}

func (b *Beep) close() {
	if b.streamer != nil {
		b.streamer.Close()
		b.streamer = nil
	}
	if b.file != nil {
		b.file.Close()
		b.file = nil
	}
}

// levelToVolume converts a 0-100 level to beep's logarithmic Volume value.
// beep's scale is in base-2 "decibels": 0 means unchanged, -1 half volume,
// -2 quarter, and so on. 100 -> 0, 50 -> -1, 0 -> silent.
func levelToVolume(level int) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 100 {
		return 0
	}
	return math.Log2(float64(level) / 100)
}
