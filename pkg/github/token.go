package github

import (
	"net/url"

	"github.com/cli/go-gh/v2/pkg/auth"
	"github.com/sgaunet/api-surface-check/internal/security"
	"github.com/sgaunet/api-surface-check/pkg/config"
)

const defaultHost = "github.com"

// ghTokenForHost looks up GH_TOKEN, the gh CLI config and keyring.
var ghTokenForHost = auth.TokenForHost

// ResolveToken returns GITHUB_TOKEN when set. Otherwise it falls back to
// the credentials of the gh CLI for the configured host, which covers local
// runs after "gh auth login". The second result names the source.
func ResolveToken(cfg config.GitHubConfig) (security.SecureToken, string) {
	if token := security.TokenFromEnv(TokenEnv); !token.IsEmpty() {
		return token, TokenEnv
	}

	token, source := ghTokenForHost(Host(cfg))
	return security.NewSecureToken(token), source
}

// Host returns the GitHub host cfg points at.
func Host(cfg config.GitHubConfig) string {
	if cfg.BaseURL == "" {
		return defaultHost
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Hostname() == "" {
		return defaultHost
	}
	return u.Hostname()
}
