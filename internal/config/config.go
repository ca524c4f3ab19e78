// Package config handles vecmath configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Output    OutputConfig    `yaml:"output"`
	Transform TransformConfig `yaml:"transform"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Precision int    `yaml:"precision"` // Digits after the decimal point, -1 for shortest
	Format    string `yaml:"format"`    // "text" or "yaml"
}

// TransformConfig controls degenerate matrix handling.
type TransformConfig struct {
	Checked bool    `yaml:"checked"` // Reject w within Epsilon of zero
	Epsilon float64 `yaml:"epsilon"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Output: OutputConfig{
			Precision: -1,
			Format:    "text",
		},
		Transform: TransformConfig{
			Checked: false,
			Epsilon: 1e-9,
		},
	}
}
