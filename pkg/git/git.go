// Package git reads the local repository to locate the forge project when no
// CI event context is available.
package git

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/sgaunet/api-surface-check/internal/urlutil"
	"github.com/sgaunet/bullets"
)

// Platform identifies the forge hosting a repository.
type Platform string

// Known platforms.
const (
	PlatformGitLab Platform = "gitlab"
	PlatformGitHub Platform = "github"
)

// DefaultRemote is the remote consulted by [Repository.RemoteURL] callers.
const DefaultRemote = "origin"

var (
	errNoRemoteURL         = errors.New("no URLs found for remote")
	errUnsupportedPlatform = errors.New("repository is not hosted on GitLab or GitHub")
)

// Repository wraps a go-git repository.
type Repository struct {
	repo *git.Repository
	log  *bullets.Logger
}

// OpenRepository opens the repository containing path, walking up to the
// directory that holds .git.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	return &Repository{repo: repo}, nil
}

// SetLogger sets the logger for the repository.
func (r *Repository) SetLogger(logger *bullets.Logger) {
	r.log = logger
}

// RemoteURL returns the first URL configured for the named remote.
func (r *Repository) RemoteURL(remoteName string) (string, error) {
	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s", errNoRemoteURL, remoteName)
	}

	if r.log != nil {
		r.log.Debug(fmt.Sprintf("Remote %s resolved to %s", remoteName, urls[0]))
	}
	return urls[0], nil
}

// DetectPlatform classifies a remote URL. extraGitLabHosts lists self-managed
// GitLab hosts; any host containing "github" is treated as GitHub (this covers
// GitHub Enterprise Server naming conventions).
func DetectPlatform(remoteURL string, extraGitLabHosts ...string) (Platform, error) {
	host := strings.ToLower(urlutil.Host(remoteURL))

	for _, h := range extraGitLabHosts {
		if h != "" && host == strings.ToLower(h) {
			return PlatformGitLab, nil
		}
	}

	switch {
	case strings.Contains(host, "gitlab"):
		return PlatformGitLab, nil
	case strings.Contains(host, "github"):
		return PlatformGitHub, nil
	default:
		return "", fmt.Errorf("%w: %s", errUnsupportedPlatform, remoteURL)
	}
}
