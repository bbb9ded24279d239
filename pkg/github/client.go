// Package github builds authenticated go-github clients.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/api-surface-check/internal/logger"
	"github.com/sgaunet/api-surface-check/internal/security"
	"github.com/sgaunet/api-surface-check/pkg/config"
	"github.com/sgaunet/bullets"
	"golang.org/x/oauth2"
)

// TokenEnv is the environment variable holding the GitHub token.
// GitHub Actions exposes the job token under this name when the workflow
// maps secrets.GITHUB_TOKEN into the step environment.
const TokenEnv = "GITHUB_TOKEN"

// ErrTokenRequired is returned when neither a token nor App credentials are available.
var ErrTokenRequired = errors.New(TokenEnv + " environment variable is required")

// Client represents a GitHub API client wrapper.
type Client struct {
	client *github.Client
	auth   map[string]string
	log    *bullets.Logger
}

// NewClient creates a GitHub client. App credentials from cfg take
// precedence; otherwise token is used through an oauth2 static token source.
func NewClient(cfg config.GitHubConfig, token security.SecureToken) (*Client, error) {
	httpClient, auth, err := newHTTPClient(cfg, token)
	if err != nil {
		return nil, err
	}

	client := github.NewClient(httpClient)
	if cfg.BaseURL != "" {
		client, err = client.WithEnterpriseURLs(cfg.BaseURL, cfg.UploadURL)
		if err != nil {
			return nil, fmt.Errorf("failed to configure GitHub Enterprise URLs: %w", err)
		}
	}

	return &Client{
		client: client,
		auth:   auth,
		log:    logger.NoLogger(),
	}, nil
}

func newHTTPClient(cfg config.GitHubConfig, token security.SecureToken) (*http.Client, map[string]string, error) {
	if cfg.App.Enabled() {
		itr, err := ghinstallation.NewKeyFromFile(
			http.DefaultTransport, cfg.App.AppID, cfg.App.InstallationID, cfg.App.PrivateKeyPath,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load GitHub App credentials: %w", err)
		}
		if cfg.BaseURL != "" {
			itr.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
		}
		return &http.Client{Transport: itr}, map[string]string{
			"method":           "app",
			"app_id":           strconv.FormatInt(cfg.App.AppID, 10),
			"installation_id":  strconv.FormatInt(cfg.App.InstallationID, 10),
			"private_key_path": cfg.App.PrivateKeyPath,
		}, nil
	}

	if token.IsEmpty() {
		return nil, nil, ErrTokenRequired
	}

	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token.Value()},
	)
	return oauth2.NewClient(context.Background(), ts), map[string]string{
		"method": "token",
		"token":  token.String(),
	}, nil
}

// SetLogger sets the logger for the GitHub client.
func (c *Client) SetLogger(logger *bullets.Logger) {
	c.log = logger
	c.log.Debug("GitHub client logger configured, API base: " + c.BaseURL())
	security.DebugAuth(c.log, "GitHub", c.auth)
}

// BaseURL returns the REST API root the client talks to.
func (c *Client) BaseURL() string {
	return c.client.BaseURL.String()
}

// PullRequests returns the pull request service behind the [PullRequestsAPI] contract.
//
//nolint:ireturn // Callers depend on the contract, not the SDK type.
func (c *Client) PullRequests() PullRequestsAPI {
	return c.client.PullRequests
}
