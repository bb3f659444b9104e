// Package config loads the per-run settings for synthesis and export.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the conventional config location next to the binary.
const DefaultPath = "config.yaml"

// EncryptionSubstitution enables the dot/dash swap cipher stage.
const EncryptionSubstitution = "substitution"

// Config holds the options for one run. It is loaded once at startup and
// not modified afterwards.
type Config struct {
	// Freq is the tone frequency in Hz.
	Freq float64 `yaml:"freq"`
	// DotDuration is the base timing unit in milliseconds.
	DotDuration int `yaml:"dot_duration"`
	// Encryption names an optional cipher stage. Unrecognized values
	// mean no cipher.
	Encryption string `yaml:"encryption"`
	// OutputFormat names the export container, e.g. "mp3" or "wav".
	OutputFormat string `yaml:"output_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Freq:         750,
		DotDuration:  100,
		OutputFormat: "mp3",
	}
}

// Load reads and validates the config file at path. Values absent from the
// file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, errors.Errorf("config file %s not found (run `morsewave init` to create one, or point --config at an existing file)", path)
	}
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config file %s", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config file %s is not valid YAML", path)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrapf(err, "config file %s", path)
	}

	return cfg, nil
}

func (c Config) validate() error {
	if c.Freq <= 0 {
		return errors.Errorf("freq must be positive, got %v", c.Freq)
	}
	if c.DotDuration <= 0 {
		return errors.Errorf("dot_duration must be positive, got %d", c.DotDuration)
	}
	if c.OutputFormat == "" {
		return errors.New("output_format must not be empty")
	}
	return nil
}

const defaultFile = `# morsewave settings
freq: 750          # tone frequency in Hz
dot_duration: 100  # dot length in milliseconds
encryption: ""     # set to "substitution" to swap dots and dashes
output_format: mp3 # mp3 or wav
`

// WriteDefault creates a commented starter config at path. It refuses to
// overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return errors.Errorf("config file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(defaultFile), 0o644); err != nil {
		return errors.Wrap(err, "write default config")
	}

	return nil
}
