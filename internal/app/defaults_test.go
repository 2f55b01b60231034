package app

import (
	"path/filepath"
	"testing"
)

func TestGetDefaults(t *testing.T) {
	t.Run("environment variables take precedence", func(t *testing.T) {
		t.Setenv("DC_CONFIG_PATH", "/custom/dc.toml")
		t.Setenv("DC_HOME", "/custom/home")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("GetDefaults() error = %v", err)
		}
		if defaults["config_path"] != "/custom/dc.toml" {
			t.Errorf("config_path = %q, want /custom/dc.toml", defaults["config_path"])
		}
		if defaults["base_dir"] != "/custom/home" {
			t.Errorf("base_dir = %q, want /custom/home", defaults["base_dir"])
		}
		if defaults["log_dir"] != filepath.Join("/custom/home", "log") {
			t.Errorf("log_dir = %q, want derived from base_dir", defaults["log_dir"])
		}
	})

	t.Run("falls back to home-relative defaults", func(t *testing.T) {
		t.Setenv("DC_CONFIG_PATH", "")
		t.Setenv("DC_HOME", "")

		defaults, err := GetDefaults()
		if err != nil {
			t.Fatalf("GetDefaults() error = %v", err)
		}
		if filepath.Base(defaults["config_path"]) != "dc.toml" {
			t.Errorf("config_path = %q, want a dc.toml path", defaults["config_path"])
		}
		if filepath.Base(defaults["base_dir"]) != "dc" {
			t.Errorf("base_dir = %q, want a dc directory", defaults["base_dir"])
		}
	})
}
