package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Mappings is a per-column token → display-string table consulted by
// the normalizer before cosmetic formatting.
type Mappings map[string]map[string]string

// defaultMappingsTOML is the starter table written by init-mappings.
// The shorthand tokens are the ones the shot-list template uses.
const defaultMappingsTOML = `# tsv2yaml field mappings: raw token -> display string, per column.

[DIURNAL]
GH = "Golden Hour"
MH = "Magic Hour"
BH = "Blue Hour"
DAY = "Day"
NIGHT = "Night"
DAWN = "Dawn"
DUSK = "Dusk"

[LOC_TYPE]
EXT = "Exterior"
INT = "Interior"
"EXT/INT" = "Exterior/Interior"

[MOVE_TYPE]
STATIC = "Static"
PAN = "Pan"
TILT = "Tilt"
DOLLY = "Dolly"
CRANE = "Crane"
HANDHELD = "Handheld"
STEADICAM = "Steadicam"

[MOVE_SPEED]
SLOW = "Slow"
MEDIUM = "Medium"
FAST = "Fast"
VERY_SLOW = "Very Slow"
VERY_FAST = "Very Fast"

[ANGLE]
LOW = "Low Angle"
HIGH = "High Angle"
EYE_LEVEL = "Eye Level"
DUTCH = "Dutch Angle"
BIRDS_EYE = "Bird's Eye"
WORM_EYE = "Worm's Eye"
`

// LoadMappings reads a TOML mappings file. An empty path returns nil,
// which disables mapping lookups.
func LoadMappings(path string) (Mappings, error) {
	if path == "" {
		return nil, nil
	}
	var m Mappings
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, fmt.Errorf("failed to read mappings %s: %w", path, err)
	}
	return m, nil
}

// WriteDefaultMappings writes the starter mappings table.
func WriteDefaultMappings(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create mappings directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultMappingsTOML), 0o644); err != nil {
		return fmt.Errorf("failed to write mappings file: %w", err)
	}
	return nil
}
