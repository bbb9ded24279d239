// Package gitlab builds authenticated GitLab API clients.
package gitlab

import (
	"errors"
	"fmt"

	"github.com/sgaunet/api-surface-check/internal/logger"
	"github.com/sgaunet/api-surface-check/internal/security"
	"github.com/sgaunet/api-surface-check/pkg/config"
	"github.com/sgaunet/bullets"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// TokenEnv is the environment variable holding the GitLab token.
const TokenEnv = "GITLAB_TOKEN"

// ErrTokenRequired is returned when no GitLab token is available.
var ErrTokenRequired = errors.New(TokenEnv + " environment variable is required")

// Client represents a GitLab API client wrapper.
type Client struct {
	client *gitlab.Client
	token  security.SecureToken
	log    *bullets.Logger
}

// NewClient creates a GitLab client for gitlab.com or cfg.BaseURL.
func NewClient(cfg config.GitLabConfig, token security.SecureToken) (*Client, error) {
	if token.IsEmpty() {
		return nil, ErrTokenRequired
	}

	var opts []gitlab.ClientOptionFunc
	if cfg.BaseURL != "" {
		opts = append(opts, gitlab.WithBaseURL(cfg.BaseURL))
	}

	client, err := gitlab.NewClient(token.Value(), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}

	return &Client{
		client: client,
		token:  token,
		log:    logger.NoLogger(),
	}, nil
}

// SetLogger sets the logger for the GitLab client.
func (c *Client) SetLogger(logger *bullets.Logger) {
	c.log = logger
	c.log.Debug("GitLab client logger configured, API base: " + c.BaseURL())
	security.DebugAuth(c.log, "GitLab", map[string]string{
		"method": "token",
		"token":  c.token.String(),
	})
}

// BaseURL returns the REST API root the client talks to.
func (c *Client) BaseURL() string {
	return c.client.BaseURL().String()
}

// MergeRequests returns the merge request service behind the [MergeRequestsAPI] contract.
//
//nolint:ireturn // Callers depend on the contract, not the SDK type.
func (c *Client) MergeRequests() MergeRequestsAPI {
	return c.client.MergeRequests
}

// Approvals returns the approvals service behind the [ApprovalsAPI] contract.
//
//nolint:ireturn // Callers depend on the contract, not the SDK type.
func (c *Client) Approvals() ApprovalsAPI {
	return c.client.MergeRequestApprovals
}
