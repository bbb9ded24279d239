package platform

import (
	"fmt"

	"github.com/sgaunet/api-surface-check/internal/security"
	"github.com/sgaunet/api-surface-check/pkg/config"
	"github.com/sgaunet/api-surface-check/pkg/git"
	ghclient "github.com/sgaunet/api-surface-check/pkg/github"
	glclient "github.com/sgaunet/api-surface-check/pkg/gitlab"
	"github.com/sgaunet/bullets"
)

// NewProvider creates the appropriate Provider implementation for the platform.
// Credentials come from GITHUB_TOKEN (or the gh CLI) / GITLAB_TOKEN, or the
// GitHub App section of cfg.
//
//nolint:ireturn // Factory function must return interface to enable platform abstraction.
func NewProvider(p git.Platform, cfg *config.Config, logger *bullets.Logger) (Provider, error) {
	switch p {
	case git.PlatformGitLab:
		client, err := glclient.NewClient(cfg.GitLab, security.TokenFromEnv(glclient.TokenEnv))
		if err != nil {
			return nil, fmt.Errorf("failed to create GitLab client: %w", err)
		}
		client.SetLogger(logger)
		return NewGitLabAdapter(client.MergeRequests(), client.Approvals(), logger), nil

	case git.PlatformGitHub:
		token, source := ghclient.ResolveToken(cfg.GitHub)
		if !token.IsEmpty() {
			logger.Debug("GitHub token source: " + source)
		}
		client, err := ghclient.NewClient(cfg.GitHub, token)
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub client: %w", err)
		}
		client.SetLogger(logger)
		return NewGitHubAdapter(client.PullRequests(), logger), nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, p)
	}
}
