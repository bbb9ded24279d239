package github

import (
	"context"

	"github.com/google/go-github/v69/github"
)

// PullRequestsAPI lists the go-github pull request operations this tool and
// the auto-approve workflow depend on. The assertion below makes a go-github
// upgrade that drops or reshapes any of them fail at build time.
type PullRequestsAPI interface {
	// List lists pull requests for a repository.
	List(
		ctx context.Context, owner, repo string, opts *github.PullRequestListOptions,
	) ([]*github.PullRequest, *github.Response, error)

	// ListReviews lists the reviews submitted on a pull request.
	ListReviews(
		ctx context.Context, owner, repo string, number int, opts *github.ListOptions,
	) ([]*github.PullRequestReview, *github.Response, error)

	// CreateReview submits a review on a pull request.
	CreateReview(
		ctx context.Context, owner, repo string, number int, review *github.PullRequestReviewRequest,
	) (*github.PullRequestReview, *github.Response, error)
}

// Ensure the SDK service satisfies PullRequestsAPI at compile time.
var _ PullRequestsAPI = (*github.PullRequestsService)(nil)
