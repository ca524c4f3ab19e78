package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile   = flag.String("log-file", "", "Write logs to this file")
	flagPrecision = flag.Int("precision", -2, "Digits after the decimal point (-1 = shortest)")
	flagFormat    = flag.String("format", "", "Output format: text or yaml")
	flagChecked   = flag.Bool("checked", false, "Fail transforms whose w is near zero")
	flagEpsilon   = flag.Float64("epsilon", 0, "Threshold for --checked")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the non-flag arguments.
func Args() []string {
	return flag.Args()
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
	if *flagPrecision >= -1 {
		cfg.Output.Precision = *flagPrecision
	}
	if *flagFormat != "" {
		cfg.Output.Format = *flagFormat
	}
	if *flagChecked {
		cfg.Transform.Checked = true
	}
	if *flagEpsilon > 0 {
		cfg.Transform.Epsilon = *flagEpsilon
	}
}
