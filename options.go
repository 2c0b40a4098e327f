package swish

import "fmt"

// Level selects the base logging defaults.
type Level string

const (
	// LevelDefault logs arrival and departure lines without durations.
	LevelDefault Level = "default"
	// LevelVerbose adds the elapsed milliseconds to departure lines.
	LevelVerbose Level = "verbose"
)

// ParseLevel converts s to a Level. The empty string is LevelDefault.
func ParseLevel(s string) (Level, error) {
	switch Level(s) {
	case "", LevelDefault:
		return LevelDefault, nil
	case LevelVerbose:
		return LevelVerbose, nil
	}
	return "", fmt.Errorf("unknown level %q, expected %q or %q", s, LevelDefault, LevelVerbose)
}

// Gargles holds per-field overrides of the level defaults. A nil field
// keeps the value derived from the level.
type Gargles struct {
	Timestamp *bool `yaml:"timestamp,omitempty"`
	Colors    *bool `yaml:"colors,omitempty"`
}

// Options is the caller-supplied configuration of a Hook.
type Options struct {
	Level   Level   `yaml:"level,omitempty"`
	Gargles Gargles `yaml:"gargles,omitempty"`
}

// Config is the resolved configuration. It does not change after New.
type Config struct {
	Level     Level
	Timestamp bool
	Colors    bool
}

// Bool returns a pointer to b, for filling Gargles literals.
func Bool(b bool) *bool {
	return &b
}

// Resolve computes the level defaults and then applies the gargles
// overrides on top of them.
func Resolve(opts Options) Config {
	cfg := levelDefaults(opts.Level)
	if opts.Gargles.Timestamp != nil {
		cfg.Timestamp = *opts.Gargles.Timestamp
	}
	if opts.Gargles.Colors != nil {
		cfg.Colors = *opts.Gargles.Colors
	}
	return cfg
}

// levelDefaults treats anything other than LevelVerbose as LevelDefault.
func levelDefaults(level Level) Config {
	if level == LevelVerbose {
		return Config{Level: LevelVerbose, Timestamp: true, Colors: true}
	}
	return Config{Level: LevelDefault, Timestamp: false, Colors: true}
}
