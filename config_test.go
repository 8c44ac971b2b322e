package themecheck

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileYieldsDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "themecheck.toml"))
	if err != nil {
		t.Fatal(err)
	}
	if config.Raster.Width != 1920 || config.Raster.Height != 1080 {
		t.Errorf("unexpected raster defaults: %+v", config.Raster)
	}
	if config.IncludeDir != "_inc" {
		t.Errorf("unexpected include dir: %q", config.IncludeDir)
	}
	if len(config.Metadata.RequiredTags) != 7 {
		t.Errorf("unexpected required tags: %v", config.Metadata.RequiredTags)
	}
	if config.Extensions["logos-svg"] != ".svg" {
		t.Errorf("unexpected extensions: %v", config.Extensions)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themecheck.toml")
	content := `
include_dir = "assets"

[raster]
width = 3840
height = 2160

[overlay]
max_distance = 9
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.IncludeDir != "assets" {
		t.Errorf("expected the include dir override, got %q", config.IncludeDir)
	}
	if config.Raster.Width != 3840 || config.Raster.Height != 2160 {
		t.Errorf("expected the raster override, got %+v", config.Raster)
	}
	if config.Overlay.MaxDistance != 9 {
		t.Errorf("expected the overlay override, got %+v", config.Overlay)
	}
	if config.Overlay.BlockSize != 256 {
		t.Errorf("expected untouched defaults to survive, got %+v", config.Overlay)
	}
	if config.Vector.Width != 600 {
		t.Errorf("expected untouched defaults to survive, got %+v", config.Vector)
	}
}

func TestLoadConfigRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themecheck.toml")
	if err := os.WriteFile(path, []byte("include_dir = [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected an error for malformed TOML")
	}
}
