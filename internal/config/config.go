package config

import (
	"github.com/maravedi/jules-actions/internal/github"
	"github.com/maravedi/jules-actions/internal/jules"
	"github.com/maravedi/jules-actions/internal/planner"
)

// Config is the root configuration for jules-action. In a workflow run
// everything of consequence arrives through the environment; the file is
// for the handful of knobs worth tuning, and any key it omits keeps its
// default.
type Config struct {
	Jules   jules.Config   `mapstructure:"jules" yaml:"jules"`
	GitHub  github.Config  `mapstructure:"github" yaml:"github"`
	Planner planner.Config `mapstructure:"planner" yaml:"planner"`
	Logging LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=json text"`
}
