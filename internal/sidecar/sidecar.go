// Package sidecar persists a segment collection next to its audio file.
// Segments for track.mp3 live in track.mp3.segments.json.
//
// Read failures of any kind yield an empty collection; write failures are
// logged and never surface to the caller. Best-effort JSON is the whole
// contract here.
package sidecar

import (
	"encoding/json"
	"os"

	"github.com/blindsystems/bop/internal/log"
	"github.com/blindsystems/bop/internal/segment"
)

const suffix = ".segments.json"

// MetadataPath returns the sidecar path for an audio file, derived by
// appending the sidecar suffix to the full file name.
func MetadataPath(audioPath string) string {
	return audioPath + suffix
}

// Load reads the segment collection for an audio file. An absent,
// unreadable, or structurally invalid sidecar yields an empty store.
func Load(audioPath string) *segment.Store {
	st := segment.NewStore()
	if audioPath == "" {
		return st
	}

	data, err := os.ReadFile(MetadataPath(audioPath))
	if err != nil {
		return st
	}
	if err := json.Unmarshal(data, st); err != nil {
		return segment.NewStore()
	}
	return st
}

// Save writes the segment collection for an audio file as indented UTF-8
// JSON with non-ASCII characters left unescaped. Failures are logged, not
// returned; persistence must never block the interactive flow.
func Save(audioPath string, st *segment.Store) {
	if audioPath == "" {
		return
	}

	path := MetadataPath(audioPath)
	f, err := os.Create(path)
	if err != nil {
		log.Errorf("save segments to %s: %v", path, err)
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(st); err != nil {
		log.Errorf("save segments to %s: %v", path, err)
	}
}
