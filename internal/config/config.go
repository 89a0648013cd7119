// Package config manages the user settings file: a single JSON object at a
// well-known location with explicit, enumerated fields. Missing keys fall
// back to defaults, an unreadable file yields full defaults, and write
// failures are logged rather than raised.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/blindsystems/bop/internal/log"
)

const (
	appName          = "bop"
	settingsFileName = "settings.json"

	// DefaultVolume is the startup volume when settings carry none.
	DefaultVolume = 80
)

// Config holds all recognized settings.
type Config struct {
	LastOpenedFolder string `koanf:"last_opened_folder" json:"last_opened_folder"`
	DefaultVolume    int    `koanf:"default_volume"     json:"default_volume"`
}

// Default returns the settings used when no file exists.
func Default() Config {
	return Config{
		LastOpenedFolder: "",
		DefaultVolume:    DefaultVolume,
	}
}

// Path returns the well-known settings location.
func Path() string {
	return filepath.Join(xdg.ConfigHome, appName, settingsFileName)
}

// Load reads settings from the well-known location.
func Load() Config {
	return LoadFrom(Path())
}

// LoadFrom reads settings from path. Keys absent from the file keep their
// default values; a missing or unreadable file yields full defaults.
func LoadFrom(path string) Config {
	cfg := Default()

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
		return Default()
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return Default()
	}

	if cfg.DefaultVolume < 0 {
		cfg.DefaultVolume = 0
	}
	if cfg.DefaultVolume > 100 {
		cfg.DefaultVolume = 100
	}
	return cfg
}

// ResolveAudioPath resolves a bare file name against the last opened
// folder, the way the original file-open dialog starts where the user last
// was. Arguments that exist as given, are absolute, or carry a directory
// component are returned unchanged, as is anything that does not resolve.
func (c Config) ResolveAudioPath(arg string) string {
	if c.LastOpenedFolder == "" || filepath.IsAbs(arg) {
		return arg
	}
	if _, err := os.Stat(arg); err == nil {
		return arg
	}
	if filepath.Dir(arg) != "." {
		return arg
	}
	alt := filepath.Join(c.LastOpenedFolder, arg)
	if _, err := os.Stat(alt); err == nil {
		return alt
	}
	return arg
}

// Save writes settings to the well-known location.
func Save(cfg Config) {
	SaveTo(Path(), cfg)
}

// SaveTo writes settings to path as indented UTF-8 JSON. Failures are
// logged, never returned.
func SaveTo(path string, cfg Config) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Errorf("save settings to %s: %v", path, err)
		return
	}

	f, err := os.Create(path)
	if err != nil {
		log.Errorf("save settings to %s: %v", path, err)
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cfg); err != nil {
		log.Errorf("save settings to %s: %v", path, err)
	}
}
