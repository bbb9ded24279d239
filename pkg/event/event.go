// Package event resolves the repository a CI run was triggered for.
//
// GitHub Actions exposes the webhook payload at GITHUB_EVENT_PATH; pull
// request payloads are decoded with go-github's webhook parser. GitLab CI
// exposes the project through CI_PROJECT_PATH. Outside CI, callers fall back
// to [FromRemoteURL] on the local origin remote.
package event

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/api-surface-check/internal/urlutil"
	"github.com/sgaunet/api-surface-check/pkg/git"
)

// Environment variables read by [FromEnv].
const (
	EnvGitHubEventName  = "GITHUB_EVENT_NAME"
	EnvGitHubEventPath  = "GITHUB_EVENT_PATH"
	EnvGitHubRepository = "GITHUB_REPOSITORY"
	EnvGitHubServerURL  = "GITHUB_SERVER_URL"

	EnvGitLabProjectPath = "CI_PROJECT_PATH"
	EnvGitLabServerURL   = "CI_SERVER_URL"
	EnvGitLabMRIID       = "CI_MERGE_REQUEST_IID"
	EnvGitLabPipelineSrc = "CI_PIPELINE_SOURCE"
)

// ErrNoEventContext is returned by [FromEnv] outside a supported CI environment.
var ErrNoEventContext = errors.New("no CI event context found in environment")

// pullRequestEvents are the GitHub events whose payload carries a pull request.
var pullRequestEvents = []string{"pull_request", "pull_request_target", "pull_request_review"}

// Context identifies the repository (and pull request, when known) a run targets.
type Context struct {
	Platform  git.Platform
	ServerURL string
	Owner     string
	Repo      string
	EventName string
	Number    int64 // zero when the event is not tied to a pull request
}

// FullName returns "owner/repo".
func (c Context) FullName() string {
	return c.Owner + "/" + c.Repo
}

// Validate checks that owner and repo are set.
func (c Context) Validate() error {
	if strings.TrimSpace(c.Owner) == "" || strings.TrimSpace(c.Repo) == "" {
		return fmt.Errorf("%w: %q", urlutil.ErrInvalidRepository, c.FullName())
	}
	return nil
}

// FromEnv builds a Context from GitHub Actions or GitLab CI variables.
// A pull request payload wins over GITHUB_REPOSITORY.
func FromEnv() (Context, error) {
	if name := os.Getenv(EnvGitHubEventName); name != "" || os.Getenv(EnvGitHubRepository) != "" {
		return fromGitHubEnv(name)
	}
	if os.Getenv(EnvGitLabProjectPath) != "" {
		return fromGitLabEnv()
	}
	return Context{}, ErrNoEventContext
}

func fromGitHubEnv(name string) (Context, error) {
	if path := os.Getenv(EnvGitHubEventPath); path != "" && slices.Contains(pullRequestEvents, name) {
		payload, err := os.ReadFile(path) //nolint:gosec // Path is provided by the runner.
		if err != nil {
			return Context{}, fmt.Errorf("failed to read event payload: %w", err)
		}
		ctx, err := ParsePayload(name, payload)
		if err != nil {
			return Context{}, err
		}
		ctx.ServerURL = os.Getenv(EnvGitHubServerURL)
		return ctx, nil
	}

	ctx, err := ParseRepository(os.Getenv(EnvGitHubRepository))
	if err != nil {
		return Context{}, err
	}
	ctx.Platform = git.PlatformGitHub
	ctx.ServerURL = os.Getenv(EnvGitHubServerURL)
	ctx.EventName = name
	return ctx, nil
}

func fromGitLabEnv() (Context, error) {
	ctx, err := ParseRepository(os.Getenv(EnvGitLabProjectPath))
	if err != nil {
		return Context{}, err
	}
	ctx.Platform = git.PlatformGitLab
	ctx.ServerURL = os.Getenv(EnvGitLabServerURL)
	ctx.EventName = os.Getenv(EnvGitLabPipelineSrc)

	if iid := os.Getenv(EnvGitLabMRIID); iid != "" {
		n, err := strconv.ParseInt(iid, 10, 64)
		if err != nil {
			return Context{}, fmt.Errorf("invalid %s %q: %w", EnvGitLabMRIID, iid, err)
		}
		ctx.Number = n
	}
	return ctx, nil
}

// ParsePayload decodes a GitHub webhook payload of the given event type.
func ParsePayload(eventName string, payload []byte) (Context, error) {
	parsed, err := github.ParseWebHook(eventName, payload)
	if err != nil {
		return Context{}, fmt.Errorf("failed to parse %s payload: %w", eventName, err)
	}

	var (
		repo   *github.Repository
		number int
	)
	switch e := parsed.(type) {
	case *github.PullRequestEvent:
		repo, number = e.GetRepo(), e.GetNumber()
	case *github.PullRequestTargetEvent:
		repo, number = e.GetRepo(), e.GetNumber()
	case *github.PullRequestReviewEvent:
		repo, number = e.GetRepo(), e.GetPullRequest().GetNumber()
	default:
		return Context{}, fmt.Errorf("%w: unsupported event %s", ErrNoEventContext, eventName)
	}

	ctx := Context{
		Platform:  git.PlatformGitHub,
		Owner:     repo.GetOwner().GetLogin(),
		Repo:      repo.GetName(),
		EventName: eventName,
		Number:    int64(number),
	}
	if err := ctx.Validate(); err != nil {
		return Context{}, fmt.Errorf("event payload: %w", err)
	}
	return ctx, nil
}

// ParseRepository parses an "owner/repo" slug. GitLab group paths keep every
// namespace segment in Owner.
func ParseRepository(slug string) (Context, error) {
	if strings.Contains(slug, "://") || strings.HasPrefix(strings.TrimSpace(slug), "git@") {
		return Context{}, fmt.Errorf("%w: %q is a URL, not owner/repo", urlutil.ErrInvalidRepository, slug)
	}
	owner, repo, err := urlutil.SplitRepository(slug)
	if err != nil {
		return Context{}, fmt.Errorf("failed to parse repository: %w", err)
	}
	return Context{Owner: owner, Repo: repo}, nil
}

// FromRemoteURL builds a Context from a git remote URL, detecting the
// platform from its host.
func FromRemoteURL(remoteURL string, extraGitLabHosts ...string) (Context, error) {
	owner, repo, err := urlutil.SplitRepository(remoteURL)
	if err != nil {
		return Context{}, fmt.Errorf("failed to parse remote URL: %w", err)
	}
	platform, err := git.DetectPlatform(remoteURL, extraGitLabHosts...)
	if err != nil {
		return Context{}, fmt.Errorf("failed to detect platform: %w", err)
	}

	ctx := Context{Platform: platform, Owner: owner, Repo: repo}
	if host := urlutil.Host(remoteURL); host != "" {
		ctx.ServerURL = "https://" + host
	}
	return ctx, nil
}
