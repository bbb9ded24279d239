// Package config handles loading and validation of the optional configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported values for the platform setting.
const (
	PlatformAuto   = ""
	PlatformGitHub = "github"
	PlatformGitLab = "gitlab"
)

const (
	defaultProbeState = "open"
	maxPerPage        = 100
)

var (
	errConfigNotFound      = errors.New("config file not found")
	errUnknownPlatform     = errors.New("platform must be empty, github or gitlab")
	errInvalidState        = errors.New("probe.state must be open, closed or all")
	errInvalidPerPage      = errors.New("probe.per_page must be between 0 and 100")
	errInvalidBaseURL      = errors.New("base URL must be an absolute http(s) URL")
	errIncompleteAppConfig = errors.New("github.app requires app_id, installation_id and private_key_path together")
)

// Config represents the complete configuration for api-surface-check.
type Config struct {
	Platform string       `yaml:"platform"`
	GitHub   GitHubConfig `yaml:"github"`
	GitLab   GitLabConfig `yaml:"gitlab"`
	Probe    ProbeConfig  `yaml:"probe"`
}

// GitHubConfig contains GitHub-specific configuration.
// Empty URLs mean github.com.
type GitHubConfig struct {
	BaseURL   string          `yaml:"base_url"`
	UploadURL string          `yaml:"upload_url"`
	App       GitHubAppConfig `yaml:"app"`
}

// GitHubAppConfig holds GitHub App installation credentials. When set, they
// take precedence over GITHUB_TOKEN.
type GitHubAppConfig struct {
	AppID          int64  `yaml:"app_id"`
	InstallationID int64  `yaml:"installation_id"`
	PrivateKeyPath string `yaml:"private_key_path"`
}

// Enabled reports whether App credentials were configured.
func (a GitHubAppConfig) Enabled() bool {
	return a.AppID != 0 || a.InstallationID != 0 || a.PrivateKeyPath != ""
}

// GitLabConfig contains GitLab-specific configuration.
// An empty BaseURL means gitlab.com.
type GitLabConfig struct {
	BaseURL string `yaml:"base_url"`
}

// ProbeConfig tunes the read-only list call.
type ProbeConfig struct {
	State   string `yaml:"state"`
	PerPage int    `yaml:"per_page"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Probe: ProbeConfig{State: defaultProbeState},
	}
}

// DefaultPath returns ~/.config/api-surface-check/config.yml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "api-surface-check", "config.yml"), nil
}

// Load reads the configuration from path. An empty path means [DefaultPath],
// which is optional: when it does not exist, [Default] is returned. An
// explicitly given path must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	// #nosec G304 - the path comes from the operator
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("%w: %s", errConfigNotFound, path)
	}

	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) normalize() {
	c.Platform = strings.ToLower(strings.TrimSpace(c.Platform))
	c.GitHub.BaseURL = strings.TrimSpace(c.GitHub.BaseURL)
	c.GitHub.UploadURL = strings.TrimSpace(c.GitHub.UploadURL)
	c.GitHub.App.PrivateKeyPath = strings.TrimSpace(c.GitHub.App.PrivateKeyPath)
	c.GitLab.BaseURL = strings.TrimSpace(c.GitLab.BaseURL)
	c.Probe.State = strings.ToLower(strings.TrimSpace(c.Probe.State))
	if c.Probe.State == "" {
		c.Probe.State = defaultProbeState
	}
	if c.GitHub.UploadURL == "" {
		c.GitHub.UploadURL = c.GitHub.BaseURL
	}
}

// Validate checks that every configured value is usable.
func (c *Config) Validate() error {
	switch c.Platform {
	case PlatformAuto, PlatformGitHub, PlatformGitLab:
	default:
		return fmt.Errorf("%w: %q", errUnknownPlatform, c.Platform)
	}

	switch c.Probe.State {
	case "open", "closed", "all":
	default:
		return fmt.Errorf("%w: %q", errInvalidState, c.Probe.State)
	}

	if c.Probe.PerPage < 0 || c.Probe.PerPage > maxPerPage {
		return fmt.Errorf("%w: %d", errInvalidPerPage, c.Probe.PerPage)
	}

	for _, raw := range []string{c.GitHub.BaseURL, c.GitHub.UploadURL, c.GitLab.BaseURL} {
		if err := validateURL(raw); err != nil {
			return err
		}
	}

	app := c.GitHub.App
	if app.Enabled() && (app.AppID <= 0 || app.InstallationID <= 0 || app.PrivateKeyPath == "") {
		return errIncompleteAppConfig
	}

	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", errInvalidBaseURL, raw)
	}
	return nil
}
