package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/e6dl/e6dl/internal/ioutils"
	"github.com/e6dl/e6dl/internal/log"
)

// ConfigName is the well-known name of the general settings file.
const ConfigName = "config.json"

// Accepted file naming conventions.
const (
	NamingMD5 = "md5"
	NamingID  = "id"
)

// Config holds the general settings for the downloader.
type Config struct {
	// DownloadDirectory is where downloaded posts are stored.
	DownloadDirectory string `json:"downloadDirectory"`

	// NamingConvention decides how downloaded files are named, either by
	// content hash ("md5") or by post ID ("id").
	NamingConvention string `json:"fileNamingConvention"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		DownloadDirectory: "downloads/",
		NamingConvention:  NamingMD5,
	}
}

// Store owns the process-wide Config instance.
//
// A Store is created during startup, initialized exactly once, and read
// thereafter through Get. Config problems are never self-healed: a wrong
// download directory or naming convention could silently corrupt output,
// so every load failure propagates to the caller instead of falling back
// to defaults. The caller decides how to react, typically by offering to
// create the file or by aborting via ioutils.EmergencyExit.
type Store struct {
	path string
	slot slot[Config]
}

// NewStore returns a Store bound to config.json in the working directory.
func NewStore() *Store { return NewStoreAt(ConfigName) }

// NewStoreAt returns a Store bound to an explicit file path.
func NewStoreAt(path string) *Store { return &Store{path: path} }

// Exists reports whether the config file is present on disk.
func (s *Store) Exists() bool {
	if !ioutils.Exists(s.path) {
		log.Debugf("%s: does not exist", s.path)
		return false
	}
	return true
}

// Create serializes the default Config to pretty-printed JSON and writes
// it to the config file.
func (s *Store) Create() error {
	return s.Save(DefaultConfig())
}

// Save persists cfg to the config file as pretty-printed JSON so the
// file stays hand-editable.
func (s *Store) Save(cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config file %s: %w", s.path, err)
	}
	if err := ioutils.WriteFile(s.path, data); err != nil {
		return fmt.Errorf("write config file %s: %w", s.path, err)
	}
	return nil
}

// load reads the config file, normalizes the naming convention to
// lowercase and validates it. Read failures, malformed JSON and an
// unknown convention are distinct errors; each names the file involved.
func (s *Store) load() (Config, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %s: %w", s.path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config file %s: %w", s.path, err)
	}

	cfg.NamingConvention = strings.ToLower(cfg.NamingConvention)
	switch cfg.NamingConvention {
	case NamingMD5, NamingID:
	default:
		return Config{}, fmt.Errorf("%s: %w: %q (must be %q or %q)",
			s.path, ErrInvalidNamingConvention, cfg.NamingConvention, NamingMD5, NamingID)
	}

	return cfg, nil
}

// Initialize loads the config file and stores the result. It must be
// called exactly once during startup; a second call returns
// ErrAlreadyInitialized and leaves the stored value untouched.
func (s *Store) Initialize() error {
	cfg, err := s.load()
	if err != nil {
		return err
	}
	return s.slot.set(cfg)
}

// Get returns the loaded Config.
//
// Calling Get before Initialize has succeeded is a programming error and
// panics: the startup sequence must have completed before any consumer
// reads settings.
func (s *Store) Get() *Config {
	return s.slot.get("config has not been initialized")
}
