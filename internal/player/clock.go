package player

// Position normalization helpers. Engines report position as a ratio of
// total length and use negative values as an "unknown" sentinel; everything
// above the engine works in seconds, with unknown states masked to 0.

// PositionSeconds converts an engine position ratio into seconds. A
// non-positive duration or a negative ratio yields 0.
func PositionSeconds(ratio, durationSec float64) float64 {
	if durationSec <= 0 {
		return 0
	}
	if ratio < 0 {
		ratio = 0
	}
	return durationSec * ratio
}

// SeekRatio converts a position in seconds into an engine ratio, clamped to
// [0, 1] so seeks past either end stay within the media.
func SeekRatio(seconds, durationSec float64) float64 {
	ratio := seconds / durationSec
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
