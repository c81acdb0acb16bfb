package config

import "os"

// DefaultConfigFile is the optional checked-in config the action reads
// when --config is not given.
const DefaultConfigFile = ".jules.yaml"

// DefaultConfigPath returns DefaultConfigFile when it exists in the
// working directory, or empty when the repository carries none.
func DefaultConfigPath() string {
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}
