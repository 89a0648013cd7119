// Package engine defines the narrow media-engine contract that playback is
// built on, together with a beep-backed implementation and a scriptable mock.
package engine

// Engine is the low-level media transport. Positions are expressed as a
// ratio of total length so the engine stays independent of absolute time
// units; duration is reported in milliseconds.
//
// Engines are allowed to not know their length up front: Length returns a
// non-positive value until the engine has learned it (some backends only
// discover duration once playback has started). Position returns a negative
// value when the current position is unknown. Callers are expected to mask
// both sentinels; see the player package.
type Engine interface {
	// SetMedia replaces the loaded media with the file at path. It does not
	// start playback.
	SetMedia(path string) error

	Play()
	Pause()
	Stop()

	// Position returns the current position as a ratio in [0, 1], or a
	// negative value when unknown.
	Position() float64

	// SetPosition seeks to the given ratio of total length.
	SetPosition(ratio float64)

	// Length returns the media length in milliseconds, or a non-positive
	// value when not yet known.
	Length() int64

	// SetVolume sets the output volume on a 0-100 scale.
	SetVolume(volume int)

	// Volume returns the current output volume on a 0-100 scale.
	Volume() int
}
