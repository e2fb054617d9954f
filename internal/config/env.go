package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvConfig holds environment-variable configuration.
type EnvConfig struct {
	// XcrunPath locates the xcrun launcher used to run xctrace.
	XcrunPath string `env:"SCTRACE_XCRUN_PATH" envDefault:"xcrun"`
	// Template is the default xctrace recording template.
	Template string `env:"SCTRACE_TEMPLATE" envDefault:"System Trace"`
	// NoColor disables ANSI styling (the conventional NO_COLOR variable;
	// any non-empty value counts).
	NoColor string `env:"NO_COLOR" envDefault:""`
}

// ParseEnv parses configuration from environment variables.
func ParseEnv() (*EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment config: %w", err)
	}
	return &cfg, nil
}

// ColorDisabled reports whether NO_COLOR is set.
func (c *EnvConfig) ColorDisabled() bool {
	return c.NoColor != ""
}
