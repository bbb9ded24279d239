package platform

import "context"

// PullRequestLister lists pull requests of a repository.
type PullRequestLister interface {
	ListPullRequests(ctx context.Context, owner, repo string, opts ListOptions) ([]PullRequest, error)
}

// ReviewLister lists the reviews of a pull request.
type ReviewLister interface {
	ListReviews(ctx context.Context, owner, repo string, number int64) ([]Review, error)
}

// ReviewCreator submits a review on a pull request.
type ReviewCreator interface {
	CreateReview(ctx context.Context, owner, repo string, number int64, req ReviewRequest) (*Review, error)
}

// Provider defines the unified interface for GitLab and GitHub operations.
type Provider interface {
	PullRequestLister
	ReviewLister
	ReviewCreator

	// PlatformName returns "GitLab" or "GitHub".
	PlatformName() string
}
