package player

import (
	"os"
	"path/filepath"

	"github.com/dhowden/tag"
)

// TrackInfo holds display metadata for the loaded file.
type TrackInfo struct {
	Path   string
	Title  string
	Artist string
	Album  string
	Year   int
	Track  int
}

// readTrackInfo reads tag metadata, falling back to the file name when the
// file has no readable tags.
func readTrackInfo(path string) *TrackInfo {
	info := &TrackInfo{
		Path:  path,
		Title: filepath.Base(path),
	}

	f, err := os.Open(path)
	if err != nil {
		return info
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return info
	}

	if title := m.Title(); title != "" {
		info.Title = title
	}
	info.Artist = m.Artist()
	info.Album = m.Album()
	info.Year = m.Year()
	info.Track, _ = m.Track()
	return info
}
