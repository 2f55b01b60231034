package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestService_Load(t *testing.T) {
	t.Run("missing file defaults everything to false", func(t *testing.T) {
		s := NewService(filepath.Join(t.TempDir(), "settings.toml"))

		if err := s.Load(); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if s.HidePhotos() || s.HideScores() {
			t.Errorf("flags = %v/%v, want false/false", s.HidePhotos(), s.HideScores())
		}
	})

	t.Run("reads persisted flags", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")
		if err := os.WriteFile(path, []byte("hide_photos = true\nhide_scores = false\n"), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		s := NewService(path)
		if err := s.Load(); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if !s.HidePhotos() {
			t.Error("HidePhotos() = false, want true")
		}
		if s.HideScores() {
			t.Error("HideScores() = true, want false")
		}
	})

	t.Run("rejects a malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")
		if err := os.WriteFile(path, []byte("hide_photos = maybe"), 0644); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		s := NewService(path)
		if err := s.Load(); err == nil {
			t.Error("Load() expected error for malformed TOML")
		}
	})
}

func TestService_Set(t *testing.T) {
	t.Run("toggles write through and survive a reload", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "settings.toml")

		s := NewService(path)
		if err := s.Load(); err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if err := s.SetHidePhotos(true); err != nil {
			t.Fatalf("SetHidePhotos() error = %v", err)
		}
		if err := s.SetHideScores(true); err != nil {
			t.Fatalf("SetHideScores() error = %v", err)
		}

		reloaded := NewService(path)
		if err := reloaded.Load(); err != nil {
			t.Fatalf("reload error = %v", err)
		}
		if !reloaded.HidePhotos() || !reloaded.HideScores() {
			t.Errorf("reloaded flags = %v/%v, want true/true", reloaded.HidePhotos(), reloaded.HideScores())
		}
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "settings.toml")

		s := NewService(path)
		if err := s.SetHidePhotos(true); err != nil {
			t.Fatalf("SetHidePhotos() error = %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("settings file not created: %v", err)
		}
	})
}
