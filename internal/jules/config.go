package jules

import "time"

// DefaultBaseURL is the official Jules API endpoint, version prefix included.
const DefaultBaseURL = "https://jules.googleapis.com/v1alpha"

const (
	// DefaultPageSize is the activity page size requested on each fetch.
	DefaultPageSize = 50

	// DefaultRequestTimeout bounds every individual API call. It is
	// independent of the planner's polling budget: a slow call fails on
	// its own and surfaces through the normal error classification.
	DefaultRequestTimeout = 60 * time.Second

	// DefaultStartingBranch is the branch a new session plans against.
	DefaultStartingBranch = "main"
)

// Config holds the immutable transport settings for the Jules API client.
// It is populated once from the root configuration and fixed at
// construction so tests can point the client at a fake endpoint.
type Config struct {
	APIKey         string        `mapstructure:"api_key" yaml:"api_key,omitempty"`
	BaseURL        string        `mapstructure:"base_url" yaml:"base_url" validate:"required,url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout" validate:"min=1s"`
	PageSize       int           `mapstructure:"page_size" yaml:"page_size" validate:"min=1,max=100"`
	StartingBranch string        `mapstructure:"starting_branch" yaml:"starting_branch" validate:"required"`
}

// DefaultConfig returns the documented production settings. The API key is
// deliberately absent: it only ever arrives from the environment.
func DefaultConfig() Config {
	return Config{
		BaseURL:        DefaultBaseURL,
		RequestTimeout: DefaultRequestTimeout,
		PageSize:       DefaultPageSize,
		StartingBranch: DefaultStartingBranch,
	}
}
