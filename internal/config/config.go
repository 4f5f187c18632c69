package config

import "fmt"

// Config represents the application configuration
type Config struct {
	Git     GitConfig     `mapstructure:"git" yaml:"git"`
	Tag     TagConfig     `mapstructure:"tag" yaml:"tag"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// GitConfig contains the tag author identity
type GitConfig struct {
	UserName  string `mapstructure:"user_name" yaml:"user_name"`
	UserEmail string `mapstructure:"user_email" yaml:"user_email"`
}

// TagConfig contains tagging behavior settings
type TagConfig struct {
	DryRun bool   `mapstructure:"dry_run" yaml:"dry_run"`
	Commit string `mapstructure:"commit" yaml:"commit"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Git.UserName == "" {
		return fmt.Errorf("git user name is required (--git-user-name or AUTOTAG_GIT_USER_NAME)")
	}
	if c.Git.UserEmail == "" {
		return fmt.Errorf("git user email is required (--git-user-email or AUTOTAG_GIT_USER_EMAIL)")
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
	return nil
}

// RunConfig is the immutable per-run configuration, built once at startup
type RunConfig struct {
	DryRun       bool
	Commit       string
	GitUserName  string
	GitUserEmail string
	Paths        []string
}

// RunConfig builds the per-run configuration from positional path
// arguments; an empty argument list defaults to the current directory
func (c *Config) RunConfig(paths []string) RunConfig {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	return RunConfig{
		DryRun:       c.Tag.DryRun,
		Commit:       c.Tag.Commit,
		GitUserName:  c.Git.UserName,
		GitUserEmail: c.Git.UserEmail,
		Paths:        paths,
	}
}
