// Package config loads the optimiser's configuration knobs (spec.md §6)
// from a YAML document, the format used for configuration throughout
// the retrieved corpus (dchest-kkr's site config, rupor-github-fb2cng's
// tool config).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Level is the optimisation level ordered NONE < COMMON < FONT <
// BACKGROUND < ALL (spec.md §3).
type Level int

const (
	LevelNone Level = iota
	LevelCommon
	LevelFont
	LevelBackground
	LevelAll
)

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelCommon:
		return "common"
	case LevelFont:
		return "font"
	case LevelBackground:
		return "background"
	case LevelAll:
		return "all"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// AtLeast reports whether l is at or above min, i.e. whether a stage
// gated by min should run at level l.
func (l Level) AtLeast(min Level) bool {
	return l >= min
}

// ParseLevel accepts either an integer (0-4) or one of the level names
// from spec.md §6, case-insensitively.
func ParseLevel(raw string) (Level, error) {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.Atoi(raw); err == nil {
		return Level(n), nil
	}
	switch strings.ToLower(raw) {
	case "none", "":
		return LevelNone, nil
	case "common":
		return LevelCommon, nil
	case "font":
		return LevelFont, nil
	case "background":
		return LevelBackground, nil
	case "all":
		return LevelAll, nil
	default:
		return LevelNone, fmt.Errorf("config: unrecognised optimise_shorthands level %q", raw)
	}
}

// UnmarshalYAML accepts either an integer (0-4) or one of the level
// names from spec.md §6, case-insensitively.
func (l *Level) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err == nil {
		level, err := ParseLevel(raw)
		if err != nil {
			return err
		}
		*l = level
		return nil
	}

	var n int
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("config: optimise_shorthands must be a level name or integer: %w", err)
	}
	*l = Level(n)
	return nil
}

// Config holds the configuration consumed by the optimiser core
// (spec.md §6): the shorthand optimisation level and the two
// independent value-rewrite toggles.
type Config struct {
	OptimiseShorthands Level `yaml:"optimise_shorthands"`
	CompressColors     bool  `yaml:"compress_colors"`
	CompressFontWeight bool  `yaml:"compress_font_weight"`
}

// Default returns the conservative all-off configuration: spec.md §8
// invariant 3 requires that at LevelNone no property name set changes.
func Default() Config {
	return Config{OptimiseShorthands: LevelNone}
}

// Load reads and parses a YAML config file at path. A missing file is
// not an error; it yields the Default configuration, matching the
// corpus's convention of an optional config file with safe defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
