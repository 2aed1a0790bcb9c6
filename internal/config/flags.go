package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file as well")
	flagMoonCycle = flag.Float64("moon-cycle", 0, "Length of the moon cycle in days")
	flagLightSpot = flag.Float64("light-spot", 0, "Light spot size used for eclipse detection")
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
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagMoonCycle > 0 {
		cfg.Time.MoonCycleDays = *flagMoonCycle
	}
	if *flagLightSpot > 0 {
		cfg.World.LightSpotSize = *flagLightSpot
	}
}
