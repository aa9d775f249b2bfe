package config

import "flag"

var (
	flagConfig      = flag.String("config", "", "Path to config file")
	flagDebug       = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile     = flag.String("log-file", "", "Log file path")
	flagWidth       = flag.Int("width", 0, "Snapshot width in pixels")
	flagHeight      = flag.Int("height", 0, "Snapshot height in pixels")
	flagDepth       = flag.Float64("depth", -1, "Initial depth of loaded objects")
	flagSnapshot    = flag.String("snapshot", "", "Render the mesh to this PNG file and exit")
	flagDump        = flag.Bool("dump", false, "Print the parsed scene and exit")
	flagWriteConfig = flag.String("write-config", "", "Write the effective config to this path and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// SnapshotPath returns the --snapshot output path, if any.
func SnapshotPath() string {
	return *flagSnapshot
}

// Dump reports whether --dump was given.
func Dump() bool {
	return *flagDump
}

// WriteConfigPath returns the --write-config path, if any.
func WriteConfigPath() string {
	return *flagWriteConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagWidth > 0 {
		cfg.Snapshot.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Snapshot.Height = *flagHeight
	}
	if *flagDepth >= 0 {
		cfg.Viewer.InitialDepth = *flagDepth
	}
}
