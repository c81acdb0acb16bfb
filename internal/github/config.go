// Package github reads the Actions event payload that triggered the run
// and posts result comments back through the GitHub REST API.
package github

import (
	"fmt"
	"strings"
	"time"

	"github.com/maravedi/jules-actions/internal/types"
)

const (
	// DefaultAPIBaseURL is the public GitHub REST endpoint. Actions sets
	// GITHUB_API_URL to the server's own endpoint on GHES.
	DefaultAPIBaseURL = "https://api.github.com"

	// DefaultRequestTimeout bounds a single comment post.
	DefaultRequestTimeout = 30 * time.Second
)

// Config holds the settings for reading the event payload and talking to
// the GitHub API. Token, Repository, and EventPath normally arrive
// through the environment the Actions runner provides.
type Config struct {
	Token          string        `mapstructure:"token" yaml:"token,omitempty"`
	Repository     string        `mapstructure:"repository" yaml:"repository"`
	EventPath      string        `mapstructure:"event_path" yaml:"event_path"`
	APIBaseURL     string        `mapstructure:"api_base_url" yaml:"api_base_url" validate:"required,url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout" validate:"min=1s"`
}

// DefaultConfig returns the GitHub settings before environment overrides.
func DefaultConfig() Config {
	return Config{
		APIBaseURL:     DefaultAPIBaseURL,
		RequestTimeout: DefaultRequestTimeout,
	}
}

// OwnerRepo splits the "owner/repo" slug GitHub Actions passes in
// GITHUB_REPOSITORY.
func (c Config) OwnerRepo() (string, string, error) {
	if c.Repository == "" {
		return "", "", types.NewError(types.CONFIG_MISSING_REPO, "GITHUB_REPOSITORY is required")
	}
	owner, repo, ok := strings.Cut(c.Repository, "/")
	if !ok || owner == "" || repo == "" {
		return "", "", types.NewError(types.CONFIG_MISSING_REPO,
			fmt.Sprintf("GITHUB_REPOSITORY must be owner/repo, got %q", c.Repository))
	}
	return owner, repo, nil
}
