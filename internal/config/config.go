package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration structure.
type Config struct {
	GitLab   GitLabConfig `yaml:"gitlab"`
	HTTP     HTTPConfig   `yaml:"http"`
	Clone    CloneConfig  `yaml:"clone"`
	LogLevel string       `yaml:"log_level"`
}

type GitLabConfig struct {
	DefaultHost string `yaml:"default_host"`
	TokenEnv    string `yaml:"token_env"`
}

type HTTPConfig struct {
	Timeout string `yaml:"timeout"`
	PerPage int    `yaml:"per_page"`
}

type CloneConfig struct {
	Timeout string `yaml:"timeout"`
}

// Validate checks that required fields are present and parseable.
func (c *Config) Validate() error {
	if c.GitLab.DefaultHost == "" {
		return fmt.Errorf("gitlab.default_host is required")
	}
	if c.HTTP.PerPage < 1 || c.HTTP.PerPage > 100 {
		return fmt.Errorf("http.per_page must be between 1 and 100, got %d", c.HTTP.PerPage)
	}
	if _, err := time.ParseDuration(c.HTTP.Timeout); err != nil {
		return fmt.Errorf("invalid http.timeout %q: %w", c.HTTP.Timeout, err)
	}
	if _, err := time.ParseDuration(c.Clone.Timeout); err != nil {
		return fmt.Errorf("invalid clone.timeout %q: %w", c.Clone.Timeout, err)
	}
	return nil
}

// Token returns the GitLab API token from the configured environment
// variable. Empty means unauthenticated requests.
func (c *Config) Token() string {
	env := c.GitLab.TokenEnv
	if env == "" {
		env = "GITLAB_TOKEN"
	}
	return os.Getenv(env)
}

// HTTPTimeout returns the parsed per-request timeout, falling back to
// 30s when unparseable (Validate reports the real error).
func (c *Config) HTTPTimeout() time.Duration {
	d, err := time.ParseDuration(c.HTTP.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// CloneTimeout returns the parsed clone subprocess timeout, falling
// back to 300s when unparseable. The clone runs under this bound since
// an unreachable host would otherwise hang indefinitely.
func (c *Config) CloneTimeout() time.Duration {
	d, err := time.ParseDuration(c.Clone.Timeout)
	if err != nil {
		return 300 * time.Second
	}
	return d
}

// Load resolves config from project → user → defaults.
func Load() (*Config, error) {
	cfg := defaults()

	// user-level config
	home, err := os.UserHomeDir()
	if err == nil {
		userPath := filepath.Join(home, ".llm-fragments-gitlab", "config.yaml")
		if err := mergeFile(cfg, userPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading user config: %w", err)
		}
	}

	// project-level config (highest priority)
	projectPath := filepath.Join(".llm-fragments-gitlab", "config.yaml")
	if err := mergeFile(cfg, projectPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	return cfg, nil
}

func mergeFile(dst *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	// Tokens belong in the environment, never in config files.
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err == nil {
		if gl, ok := raw["gitlab"].(map[string]interface{}); ok {
			if _, hasToken := gl["token"]; hasToken {
				return fmt.Errorf("configuration field 'gitlab.token' is not supported. "+
					"Remove it from %s and export the token via the environment variable "+
					"named by gitlab.token_env (default GITLAB_TOKEN)", path)
			}
		}
	}
	return yaml.Unmarshal(data, dst)
}

func defaults() *Config {
	return &Config{
		GitLab: GitLabConfig{
			DefaultHost: "gitlab.com",
			TokenEnv:    "GITLAB_TOKEN",
		},
		HTTP: HTTPConfig{
			Timeout: "30s",
			PerPage: 100,
		},
		Clone: CloneConfig{
			Timeout: "300s",
		},
		LogLevel: "info",
	}
}
