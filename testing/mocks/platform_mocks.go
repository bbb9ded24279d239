package mocks

import (
	"context"

	"github.com/sgaunet/api-surface-check/pkg/platform"
)

// PullRequestLister only lists pull requests: a client whose review surface
// has disappeared.
type PullRequestLister struct {
	callTracker

	ListPullRequestsResponse []platform.PullRequest
	ListPullRequestsError    error
}

// NewPullRequestLister creates a mock exposing only ListPullRequests.
func NewPullRequestLister() *PullRequestLister {
	return &PullRequestLister{}
}

// ListPullRequests implements platform.PullRequestLister.
func (m *PullRequestLister) ListPullRequests(
	_ context.Context, owner, repo string, opts platform.ListOptions,
) ([]platform.PullRequest, error) {
	m.trackCall("ListPullRequests", map[string]any{
		"owner": owner,
		"repo":  repo,
		"opts":  opts,
	})
	return m.ListPullRequestsResponse, m.ListPullRequestsError
}

// ReviewListingClient lists pull requests and reviews but cannot create reviews.
type ReviewListingClient struct {
	PullRequestLister

	ListReviewsResponse []platform.Review
	ListReviewsError    error
}

// NewReviewListingClient creates a mock lacking CreateReview.
func NewReviewListingClient() *ReviewListingClient {
	return &ReviewListingClient{}
}

// ListReviews implements platform.ReviewLister.
func (m *ReviewListingClient) ListReviews(
	_ context.Context, owner, repo string, number int64,
) ([]platform.Review, error) {
	m.trackCall("ListReviews", map[string]any{
		"owner":  owner,
		"repo":   repo,
		"number": number,
	})
	return m.ListReviewsResponse, m.ListReviewsError
}

// PlatformProvider is a mock implementation of platform.Provider with call tracking.
type PlatformProvider struct {
	ReviewListingClient

	CreateReviewResponse *platform.Review
	CreateReviewError    error
	PlatformNameValue    string
}

// NewPlatformProvider creates a new mock platform provider.
func NewPlatformProvider() *PlatformProvider {
	return &PlatformProvider{
		PlatformNameValue: "MockPlatform",
	}
}

// CreateReview implements platform.ReviewCreator.
func (m *PlatformProvider) CreateReview(
	_ context.Context, owner, repo string, number int64, req platform.ReviewRequest,
) (*platform.Review, error) {
	m.trackCall("CreateReview", map[string]any{
		"owner":  owner,
		"repo":   repo,
		"number": number,
		"event":  req.Event,
	})
	return m.CreateReviewResponse, m.CreateReviewError
}

// PlatformName implements platform.Provider.
func (m *PlatformProvider) PlatformName() string {
	return m.PlatformNameValue
}

// ReviewOnlyClient has both review capabilities but cannot list pull requests.
type ReviewOnlyClient struct {
	callTracker
}

// NewReviewOnlyClient creates a mock lacking ListPullRequests.
func NewReviewOnlyClient() *ReviewOnlyClient {
	return &ReviewOnlyClient{}
}

// ListReviews implements platform.ReviewLister.
func (m *ReviewOnlyClient) ListReviews(_ context.Context, owner, repo string, number int64) ([]platform.Review, error) {
	m.trackCall("ListReviews", map[string]any{"owner": owner, "repo": repo, "number": number})
	return nil, nil
}

// CreateReview implements platform.ReviewCreator.
func (m *ReviewOnlyClient) CreateReview(
	_ context.Context, owner, repo string, number int64, req platform.ReviewRequest,
) (*platform.Review, error) {
	m.trackCall("CreateReview", map[string]any{"owner": owner, "repo": repo, "number": number, "event": req.Event})
	return nil, nil
}

// Compile-time checks of the capability sets each mock exposes.
var (
	_ platform.PullRequestLister = (*PullRequestLister)(nil)
	_ platform.ReviewLister      = (*ReviewListingClient)(nil)
	_ platform.Provider          = (*PlatformProvider)(nil)
	_ platform.ReviewCreator     = (*ReviewOnlyClient)(nil)
)
