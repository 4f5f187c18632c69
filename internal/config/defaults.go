package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Default values
const (
	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".autotag"
	}
	return filepath.Join(home, ".autotag")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("tag.dry_run", false)
	v.SetDefault("tag.commit", "")

	// Registering empty defaults lets AutomaticEnv surface AUTOTAG_GIT_*
	// values through Unmarshal
	v.SetDefault("git.user_name", "")
	v.SetDefault("git.user_email", "")
}
