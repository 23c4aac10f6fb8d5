package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// ManifestPath points at a .hcl file or a directory of .hcl files.
	ManifestPath string

	// Output names the renderer to use: "order", "stages", or "json".
	Output string

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManifestPath == "" {
		return nil, errors.New("ManifestPath is a required configuration field and cannot be empty")
	}
	if cfg.Output == "" {
		cfg.Output = "order"
	}

	return &cfg, nil
}
