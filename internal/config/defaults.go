package config

import (
	"github.com/maravedi/jules-actions/internal/github"
	"github.com/maravedi/jules-actions/internal/jules"
	"github.com/maravedi/jules-actions/internal/planner"
)

// DefaultConfig returns a Config with sensible default values. Credentials
// and the repository slug are deliberately absent: those come from the
// environment the Actions runner provides.
func DefaultConfig() *Config {
	return &Config{
		Jules:   jules.DefaultConfig(),
		GitHub:  github.DefaultConfig(),
		Planner: planner.DefaultConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
