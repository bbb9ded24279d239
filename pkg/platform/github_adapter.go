package platform

import (
	"context"
	"fmt"

	"github.com/google/go-github/v69/github"
	ghclient "github.com/sgaunet/api-surface-check/pkg/github"
	"github.com/sgaunet/bullets"
)

const maxReviewsPerPage = 100

// GitHubAdapter wraps the go-github pull request service to implement [Provider].
type GitHubAdapter struct {
	api ghclient.PullRequestsAPI
	log *bullets.Logger
}

// NewGitHubAdapter creates a new GitHub adapter.
func NewGitHubAdapter(api ghclient.PullRequestsAPI, log *bullets.Logger) *GitHubAdapter {
	return &GitHubAdapter{
		api: api,
		log: log,
	}
}

// PlatformName returns "GitHub".
func (a *GitHubAdapter) PlatformName() string {
	return "GitHub"
}

// ListPullRequests returns the first page of pull requests, in the order the API returns them.
func (a *GitHubAdapter) ListPullRequests(
	ctx context.Context, owner, repo string, opts ListOptions,
) ([]PullRequest, error) {
	a.log.Debug(fmt.Sprintf("Listing GitHub pull requests for %s/%s (state: %s)", owner, repo, stateOrDefault(opts.State)))

	prs, _, err := a.api.List(ctx, owner, repo, &github.PullRequestListOptions{
		State:       stateOrDefault(opts.State),
		ListOptions: github.ListOptions{PerPage: opts.PerPage},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests: %w", err)
	}

	result := make([]PullRequest, 0, len(prs))
	for _, pr := range prs {
		if pr == nil {
			continue
		}
		result = append(result, PullRequest{
			Number:       int64(pr.GetNumber()),
			Title:        pr.GetTitle(),
			Author:       pr.GetUser().GetLogin(),
			State:        pr.GetState(),
			WebURL:       pr.GetHTMLURL(),
			SourceBranch: pr.GetHead().GetRef(),
			TargetBranch: pr.GetBase().GetRef(),
			Draft:        pr.GetDraft(),
			CreatedAt:    pr.GetCreatedAt().Time,
		})
	}

	a.log.Debug(fmt.Sprintf("Pull requests retrieved, count: %d", len(result)))
	return result, nil
}

// ListReviews returns every review on the pull request, following pagination.
func (a *GitHubAdapter) ListReviews(ctx context.Context, owner, repo string, number int64) ([]Review, error) {
	var reviews []Review
	page := 1

	for {
		ghReviews, resp, err := a.api.ListReviews(ctx, owner, repo, int(number), &github.ListOptions{
			Page:    page,
			PerPage: maxReviewsPerPage,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list reviews for pull request #%d: %w", number, err)
		}

		for _, r := range ghReviews {
			reviews = append(reviews, convertGitHubReview(r))
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}

	return reviews, nil
}

// CreateReview submits a review on the pull request.
func (a *GitHubAdapter) CreateReview(
	ctx context.Context, owner, repo string, number int64, req ReviewRequest,
) (*Review, error) {
	switch req.Event {
	case ReviewApprove, ReviewComment, ReviewRequestChanges:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedReviewEvent, req.Event)
	}

	reviewRequest := &github.PullRequestReviewRequest{
		Event: github.Ptr(string(req.Event)),
	}
	if req.Body != "" {
		reviewRequest.Body = github.Ptr(req.Body)
	}

	review, _, err := a.api.CreateReview(ctx, owner, repo, int(number), reviewRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to create review on pull request #%d: %w", number, err)
	}

	converted := convertGitHubReview(review)
	return &converted, nil
}

func convertGitHubReview(r *github.PullRequestReview) Review {
	return Review{
		ID:          r.GetID(),
		Author:      r.GetUser().GetLogin(),
		State:       r.GetState(),
		SubmittedAt: r.GetSubmittedAt().Time,
	}
}

func stateOrDefault(state string) string {
	if state == "" {
		return "open"
	}
	return state
}

// Ensure GitHubAdapter implements Provider at compile time.
var _ Provider = (*GitHubAdapter)(nil)
