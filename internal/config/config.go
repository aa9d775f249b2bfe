// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Viewer   ViewerConfig   `yaml:"viewer"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ViewerConfig holds interactive display settings.
type ViewerConfig struct {
	Background    string        `yaml:"background"`     // hex colour
	Stroke        string        `yaml:"stroke"`         // hex colour; alpha comes from depth
	InitialDepth  float64       `yaml:"initial_depth"`  // z offset given to newly loaded objects
	WheelUnits    float64       `yaml:"wheel_units"`    // wheel units per notch
	StatusTimeout time.Duration `yaml:"status_timeout"` // how long status messages stay
	SidebarWidth  int           `yaml:"sidebar_width"`
	Dir           string        `yaml:"dir"` // starting directory of the file sidebar
}

// SnapshotConfig holds headless PNG rendering settings.
type SnapshotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Viewer: ViewerConfig{
			Background:    "#000000",
			Stroke:        "#3CFF00",
			InitialDepth:  10,
			WheelUnits:    100,
			StatusTimeout: 3 * time.Second,
			SidebarWidth:  28,
		},
		Snapshot: SnapshotConfig{
			Width:  800,
			Height: 800,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "meshwire.log",
		},
	}
}
