package config

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"

	"github.com/maravedi/jules-actions/internal/types"
)

// ConfigLoader handles loading configuration from files and the
// environment.
type ConfigLoader interface {
	Load(path string) (*Config, error)
	LoadWithDefaults(path string) (*Config, error)
}

// viperConfigLoader implements ConfigLoader using Viper.
type viperConfigLoader struct {
	validator ConfigValidator
}

// NewConfigLoader creates a new ConfigLoader instance.
func NewConfigLoader(validator ConfigValidator) ConfigLoader {
	return &viperConfigLoader{
		validator: validator,
	}
}

// Load loads configuration from the specified file path. Keys the file
// omits keep their defaults, ${VAR} references are interpolated, and the
// well-known Actions environment variables override whatever the file
// says.
func (l *viperConfigLoader) Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, types.WrapError(types.CONFIG_LOAD_FAILED, "failed to read config file", err)
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED, "failed to unmarshal config", err)
	}

	applyInterpolation(cfg)
	applyEnvOverrides(cfg)

	if err := l.validator.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadWithDefaults loads configuration from the specified file path. When
// the path is empty or the file doesn't exist, the defaults plus the
// environment make up the whole configuration, which is the normal case
// inside a workflow run.
func (l *viperConfigLoader) LoadWithDefaults(path string) (*Config, error) {
	if path == "" {
		return l.loadFromEnvironment()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return l.loadFromEnvironment()
	}
	return l.Load(path)
}

func (l *viperConfigLoader) loadFromEnvironment() (*Config, error) {
	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if err := l.validator.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// interpolationPattern matches ${VAR_NAME} references in config values.
var interpolationPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// interpolateString replaces ${VAR_NAME} with environment variable values.
// Unset variables leave the reference untouched.
func interpolateString(s string) string {
	return interpolationPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if envValue := os.Getenv(varName); envValue != "" {
			return envValue
		}
		return match
	})
}

// applyInterpolation expands ${VAR} references in every user-supplied
// string field.
func applyInterpolation(cfg *Config) {
	cfg.Jules.APIKey = interpolateString(cfg.Jules.APIKey)
	cfg.Jules.BaseURL = interpolateString(cfg.Jules.BaseURL)
	cfg.Jules.StartingBranch = interpolateString(cfg.Jules.StartingBranch)
	cfg.GitHub.Token = interpolateString(cfg.GitHub.Token)
	cfg.GitHub.Repository = interpolateString(cfg.GitHub.Repository)
	cfg.GitHub.EventPath = interpolateString(cfg.GitHub.EventPath)
	cfg.GitHub.APIBaseURL = interpolateString(cfg.GitHub.APIBaseURL)
	cfg.Planner.SessionURL = interpolateString(cfg.Planner.SessionURL)
	cfg.Logging.Level = interpolateString(cfg.Logging.Level)
	cfg.Logging.Format = interpolateString(cfg.Logging.Format)
}

// applyEnvOverrides binds the variables GitHub Actions injects into every
// step. Environment values win over file values so the workflow remains
// the single source of truth for credentials.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("JULES_API_KEY"); v != "" {
		cfg.Jules.APIKey = v
	}
	if v := os.Getenv("GITHUB_TOKEN"); v != "" {
		cfg.GitHub.Token = v
	}
	if v := os.Getenv("GITHUB_REPOSITORY"); v != "" {
		cfg.GitHub.Repository = v
	}
	if v := os.Getenv("GITHUB_EVENT_PATH"); v != "" {
		cfg.GitHub.EventPath = v
	}
	if v := os.Getenv("GITHUB_API_URL"); v != "" {
		cfg.GitHub.APIBaseURL = v
	}
}
