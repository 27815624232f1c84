package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v2"
)

// Settings controls how the table is displayed. Every field has a
// default, so a settings file only needs the keys it changes.
type Settings struct {

	// Number of decimal places values are rounded to.
	Precision int `toml:"precision" yaml:"precision"`

	// Text placed on both sides of the maximum value.
	Marker string `toml:"marker" yaml:"marker"`

	// Whether a table wider than the terminal is shown with
	// 'less -S'.
	Pager bool `toml:"pager" yaml:"pager"`
}

// maxPrecision bounds Precision so that 10^Precision times a cell
// stays well inside the int64 range for ordinary inputs.
const maxPrecision = 10

// DefaultSettings returns the settings used without a settings file.
func DefaultSettings() Settings {
	return Settings{Precision: 4, Marker: "*", Pager: true}
}

// LoadSettings reads a settings file and overlays it on the defaults.
// The format follows the extension: .toml, or .yaml/.yml. An empty
// filename returns the defaults.
func LoadSettings(filename string) (Settings, error) {
	settings := DefaultSettings()
	if filename == "" {
		return settings, nil
	}

	contentsB, err := os.ReadFile(filename)
	if err != nil {
		return settings, err
	}

	switch ext := filepath.Ext(filename); ext {
	case ".toml":
		if _, err := toml.Decode(string(contentsB), &settings); err != nil {
			return settings, fmt.Errorf("%s: %w", filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(contentsB, &settings); err != nil {
			return settings, fmt.Errorf("%s: %w", filename, err)
		}
	default:
		return settings, fmt.Errorf("%s: unknown settings format %#v (must be .toml, .yaml or .yml)", filename, ext)
	}

	if err := settings.validate(); err != nil {
		return settings, fmt.Errorf("%s: %w", filename, err)
	}
	return settings, nil
}

func (s Settings) validate() error {
	if s.Precision < 0 || s.Precision > maxPrecision {
		return fmt.Errorf("precision must be between 0 and %d, got %d", maxPrecision, s.Precision)
	}
	if s.Marker == "" {
		return fmt.Errorf("marker must not be empty")
	}
	return nil
}
