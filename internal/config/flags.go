package config

import (
	"flag"

	"github.com/Faultbox/globe/pkg/units"
)

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagSystem   = flag.String("system", "", "Path to the system definition file")
	flagStep     = flag.Duration("step", 0, "Simulated time between reported states")
	flagDuration = flag.Duration("duration", 0, "Total simulated time span")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSystem != "" {
		cfg.System.File = *flagSystem
	}
	if *flagStep > 0 {
		cfg.Simulation.Step = units.Period(*flagStep)
	}
	if *flagDuration > 0 {
		cfg.Simulation.Duration = units.Period(*flagDuration)
	}
}
