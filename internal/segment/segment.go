// Package segment models named A–B bookmarks within an audio file and the
// per-file collection that holds them.
package segment

// Segment is a named region of an audio file, bounded in seconds.
type Segment struct {
	Name  string  `json:"name"`
	Start float64 `json:"start_sec"`
	End   float64 `json:"end_sec"`
}

// Duration returns the segment length in seconds, clamped to 0 when the
// bounds are reversed.
func (s Segment) Duration() float64 {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}
