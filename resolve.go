package main

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/sgaunet/api-surface-check/internal/urlutil"
	"github.com/sgaunet/api-surface-check/pkg/config"
	"github.com/sgaunet/api-surface-check/pkg/event"
	"github.com/sgaunet/api-surface-check/pkg/git"
	"github.com/sgaunet/bullets"
)

var (
	errUnsupportedPlatform = errors.New("unsupported platform")
	errNoRepository        = errors.New(
		"could not determine the repository: pass --repo, run in CI, run inside a clone, or use --interactive")
)

// resolver finds the repository to probe. Sources are tried in order:
// --repo, CI event context, git origin remote, interactive prompt.
type resolver struct {
	repoFlag         string
	extraGitLabHosts []string
	log              *bullets.Logger

	fromEnv   func() (event.Context, error)
	remoteURL func() (string, error)
	prompt    func(def string) (string, string, error)
}

func newResolver(cfg *config.Config, log *bullets.Logger) *resolver {
	r := &resolver{
		log:     log,
		fromEnv: event.FromEnv,
	}
	r.remoteURL = r.originURL
	if host := urlutil.Host(cfg.GitLab.BaseURL); host != "" {
		r.extraGitLabHosts = append(r.extraGitLabHosts, host)
	}
	return r
}

func (r *resolver) originURL() (string, error) {
	repo, err := git.OpenRepository(".")
	if err != nil {
		return "", err //nolint:wrapcheck // Already wrapped by the git package.
	}
	repo.SetLogger(r.log)
	return repo.RemoteURL(git.DefaultRemote) //nolint:wrapcheck // Already wrapped by the git package.
}

func (r *resolver) resolveTarget() (event.Context, error) {
	if r.repoFlag != "" {
		target, err := event.ParseRepository(r.repoFlag)
		if err != nil {
			return event.Context{}, fmt.Errorf("invalid --repo: %w", err)
		}
		r.log.Debug("Repository taken from --repo")
		return target, nil
	}

	target, err := r.fromEnv()
	switch {
	case err == nil:
		r.log.Debug(fmt.Sprintf("Repository taken from %s event context", target.Platform))
		return target, nil
	case !errors.Is(err, event.ErrNoEventContext):
		return event.Context{}, fmt.Errorf("failed to read CI event context: %w", err)
	}

	remote, remoteErr := r.remoteURL()
	if remoteErr == nil {
		target, err := event.FromRemoteURL(remote, r.extraGitLabHosts...)
		if err == nil {
			r.log.Debug("Repository taken from git remote " + git.DefaultRemote)
			return target, nil
		}
		remoteErr = err
	}
	r.log.Debug(fmt.Sprintf("No usable git remote: %v", remoteErr))

	if r.prompt == nil {
		return event.Context{}, errNoRepository
	}

	def := ""
	if remote != "" {
		if owner, repo, err := urlutil.SplitRepository(remote); err == nil {
			def = owner + "/" + repo
		}
	}
	owner, repo, err := r.prompt(def)
	if err != nil {
		return event.Context{}, err
	}
	return event.Context{Owner: owner, Repo: repo}, nil
}

// resolvePlatform picks the forge: --platform, then the config file, then
// what the target was resolved from, then GitHub.
func resolvePlatform(flag string, cfg *config.Config, target event.Context) (git.Platform, error) {
	for _, candidate := range []string{flag, cfg.Platform} {
		switch strings.ToLower(strings.TrimSpace(candidate)) {
		case "":
			continue
		case config.PlatformGitHub:
			return git.PlatformGitHub, nil
		case config.PlatformGitLab:
			return git.PlatformGitLab, nil
		default:
			return "", fmt.Errorf("%w: %q", errUnsupportedPlatform, candidate)
		}
	}

	if target.Platform != "" {
		return target.Platform, nil
	}
	return git.PlatformGitHub, nil
}

// applyServerURL points the client at a self-hosted instance reported by the
// CI environment, unless the config file already names one.
func applyServerURL(cfg *config.Config, p git.Platform, serverURL string) {
	u, err := url.Parse(serverURL)
	if serverURL == "" || err != nil || u.Host == "" {
		return
	}
	base := strings.TrimSuffix(serverURL, "/")

	switch p {
	case git.PlatformGitHub:
		if cfg.GitHub.BaseURL == "" && !strings.EqualFold(u.Host, "github.com") {
			cfg.GitHub.BaseURL = base + "/api/v3/"
			cfg.GitHub.UploadURL = base + "/api/uploads/"
		}
	case git.PlatformGitLab:
		if cfg.GitLab.BaseURL == "" && !strings.EqualFold(u.Host, "gitlab.com") {
			cfg.GitLab.BaseURL = base
		}
	}
}
