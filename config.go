package themecheck

import (
	"errors"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the layout conventions and quality thresholds of a theme
// repository. The zero value is not usable; start from DefaultConfig.
type Config struct {
	// Layout
	IncludeDir      string `toml:"include_dir"`
	UIComponentsDir string `toml:"ui_components_dir"`
	LanguageFile    string `toml:"language_file"`
	CollectionsFile string `toml:"collections_file"`

	Raster   RasterConfig   `toml:"raster"`
	Vector   VectorConfig   `toml:"vector"`
	Overlay  OverlayConfig  `toml:"overlay"`
	Metadata MetadataConfig `toml:"metadata"`

	// Extensions maps each asset category folder to its expected file
	// extension.
	Extensions map[string]string `toml:"extensions"`
}

// RasterConfig sets the required dimensions for backgrounds and overlays.
type RasterConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// VectorConfig sets the target bounding box for SVG logos.
type VectorConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// OverlayConfig tunes the overlay/background visual comparison.
type OverlayConfig struct {
	BlockSize   int `toml:"block_size"`
	MaxDistance int `toml:"max_distance"`
}

// MetadataConfig lists the required metadata variables and the hardware
// type values that mark a system as a collection.
type MetadataConfig struct {
	RequiredTags    []string `toml:"required_tags"`
	CollectionTypes []string `toml:"collection_types"`
}

// DefaultConfig returns the configuration matching the standard theme
// layout.
func DefaultConfig() Config {
	return Config{
		IncludeDir:      "_inc",
		UIComponentsDir: "ui-components",
		LanguageFile:    "theme-lang.xml",
		CollectionsFile: "collections.info",
		Raster:          RasterConfig{Width: 1920, Height: 1080},
		Vector:          VectorConfig{Width: 600, Height: 300},
		Overlay:         OverlayConfig{BlockSize: 256, MaxDistance: 5},
		Metadata: MetadataConfig{
			RequiredTags: []string{
				"systemName",
				"systemDescription",
				"systemManufacturer",
				"systemReleaseYear",
				"systemHardwareType",
				"systemCoverSize",
				"systemCartSize",
			},
			CollectionTypes: []string{
				"${i18n.custom-collection}",
				"${i18n.auto-collection}",
			},
		},
		Extensions: map[string]string{
			"backgrounds": ".webp",
			"controllers": ".webp",
			"logos":       ".webp",
			"overlays":    ".webp",
			"logos-svg":   ".svg",
			"metadata":    ".xml",
		},
	}
}

// LoadConfig reads a TOML configuration file, applying its values over the
// defaults. A missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return config, err
	}
	if err := toml.Unmarshal(data, &config); err != nil {
		return config, err
	}
	return config, nil
}
