package planner

import "time"

const (
	// DefaultPollInterval is the pause between activity polls.
	DefaultPollInterval = 5 * time.Second

	// DefaultPollBudget is the total wall-clock time allotted to polling
	// before degrading to the fallback summary.
	DefaultPollBudget = 120 * time.Second

	// DefaultFallbackActivityLimit caps how many progress entries the
	// fallback summary renders.
	DefaultFallbackActivityLimit = 10

	// DefaultSessionURL is the web app address included in pending
	// notices so users can inspect the session manually.
	DefaultSessionURL = "https://jules.google.com"
)

// Config holds the orchestration policy: how long to wait, how often to
// poll, and how much fallback content to render.
type Config struct {
	PollInterval          time.Duration `mapstructure:"poll_interval" yaml:"poll_interval" validate:"min=1ms"`
	PollBudget            time.Duration `mapstructure:"poll_budget" yaml:"poll_budget" validate:"min=1ms"`
	FallbackActivityLimit int           `mapstructure:"fallback_activity_limit" yaml:"fallback_activity_limit" validate:"min=1"`
	SessionURL            string        `mapstructure:"session_url" yaml:"session_url" validate:"required,url"`
}

// DefaultConfig returns the stock polling policy.
func DefaultConfig() Config {
	return Config{
		PollInterval:          DefaultPollInterval,
		PollBudget:            DefaultPollBudget,
		FallbackActivityLimit: DefaultFallbackActivityLimit,
		SessionURL:            DefaultSessionURL,
	}
}
