// Package settings persists the two privacy toggles in a lightweight
// key/value file separate from the card store. The flags gate what the
// CLI renders; they never affect what is stored or exported. The service
// is passed to consumers explicitly rather than read as ambient globals.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Flags are the persisted privacy toggles.
type Flags struct {
	HidePhotos bool `toml:"hide_photos"`
	HideScores bool `toml:"hide_scores"`
}

// Service reads the flags at startup and writes the file through on every
// toggle.
type Service struct {
	path  string
	flags Flags
}

// NewService creates a Service backed by the flags file at path.
// Call Load before reading any flag.
func NewService(path string) *Service {
	return &Service{path: path}
}

// Load reads the flags file. A missing file is not an error: all flags
// default to false.
func (s *Service) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.flags = Flags{}
			return nil
		}
		return fmt.Errorf("reading settings file: %w", err)
	}

	var flags Flags
	if err := toml.Unmarshal(data, &flags); err != nil {
		return fmt.Errorf("decoding settings file: %w", err)
	}
	s.flags = flags
	return nil
}

// HidePhotos reports whether photo rendering is disabled.
func (s *Service) HidePhotos() bool { return s.flags.HidePhotos }

// HideScores reports whether attractiveness/vibe rendering is disabled.
func (s *Service) HideScores() bool { return s.flags.HideScores }

// SetHidePhotos updates the flag and persists it immediately.
func (s *Service) SetHidePhotos(v bool) error {
	s.flags.HidePhotos = v
	return s.save()
}

// SetHideScores updates the flag and persists it immediately.
func (s *Service) SetHideScores(v bool) error {
	s.flags.HideScores = v
	return s.save()
}

func (s *Service) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("creating settings file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(s.flags); err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	return nil
}
