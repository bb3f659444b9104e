package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
freq: 600
dot_duration: 80
encryption: substitution
output_format: wav
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 600.0, cfg.Freq)
	assert.Equal(t, 80, cfg.DotDuration)
	assert.Equal(t, EncryptionSubstitution, cfg.Encryption)
	assert.Equal(t, "wav", cfg.OutputFormat)
}

func TestLoad_AppliesDefaultsForAbsentKeys(t *testing.T) {
	path := writeConfig(t, "freq: 440\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 440.0, cfg.Freq)
	assert.Equal(t, 100, cfg.DotDuration)
	assert.Empty(t, cfg.Encryption)
	assert.Equal(t, "mp3", cfg.OutputFormat)
}

func TestLoad_AcceptsJSONContent(t *testing.T) {
	// YAML is a JSON superset, so older JSON config files keep working.
	path := writeConfig(t, `{"freq": 500, "dot_duration": 120, "output_format": "wav"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 500.0, cfg.Freq)
	assert.Equal(t, 120, cfg.DotDuration)
	assert.Equal(t, "wav", cfg.OutputFormat)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Contains(t, err.Error(), "morsewave init")
}

func TestLoad_MalformedContent(t *testing.T) {
	path := writeConfig(t, "freq: [not a number\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid YAML")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "negative freq", content: "freq: -1\n"},
		{name: "zero dot duration", content: "dot_duration: 0\n"},
		{name: "empty output format", content: `output_format: ""` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, WriteDefault(path))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	// a second init must not clobber the file
	require.Error(t, WriteDefault(path))
}
