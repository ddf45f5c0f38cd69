// Package config loads converter configuration (viper-backed YAML)
// and the optional TOML field-mapping table used by the normalizer.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the converter settings. Zero values are replaced by
// defaults in Load and validated by Validate.
type Config struct {
	// ProjectTitle overrides the title inferred from each filename.
	ProjectTitle string `mapstructure:"project_title"`
	// YAMLIndent is the emitted indentation width (1..8).
	YAMLIndent int `mapstructure:"yaml_indent"`
	// YAMLWidth is the wrap width for block scalars (80..200).
	YAMLWidth int `mapstructure:"yaml_width"`
	// NoCameraMovement excludes the camera_movement subtree.
	NoCameraMovement bool `mapstructure:"no_camera_movement"`
	// NoShotTimecode excludes the shot_timecode subtree.
	NoShotTimecode bool `mapstructure:"no_shot_timecode"`
	// MappingsFile points at a TOML field-mapping table.
	MappingsFile string `mapstructure:"mappings_file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		YAMLIndent: 2,
		YAMLWidth:  120,
	}
}

// Load reads a config file. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("yaml_indent", 2)
	v.SetDefault("yaml_width", 120)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the layout ranges.
func (c *Config) Validate() error {
	if c.YAMLIndent < 1 || c.YAMLIndent > 8 {
		return fmt.Errorf("yaml_indent must be between 1 and 8, got %d", c.YAMLIndent)
	}
	if c.YAMLWidth < 80 || c.YAMLWidth > 200 {
		return fmt.Errorf("yaml_width must be between 80 and 200, got %d", c.YAMLWidth)
	}
	return nil
}

const defaultConfigYAML = `# tsv2yaml configuration
# project_title: My Film        # default: inferred from each filename
yaml_indent: 2
yaml_width: 120
no_camera_movement: false
no_shot_timecode: false
# mappings_file: mappings.toml  # optional token -> display-string table
`

// WriteDefault writes a commented starter config file.
func WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
