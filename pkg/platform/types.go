// Package platform provides a unified abstraction over the GitHub and GitLab
// pull request APIs.
//
// Each capability is its own interface so callers can check for it with a
// type assertion. [Provider] bundles all of them; both adapters satisfy it at
// compile time:
//
//	provider, err := platform.NewProvider(git.PlatformGitHub, cfg, logger)
//	prs, err := provider.ListPullRequests(ctx, "owner", "repo", platform.ListOptions{State: "open"})
package platform

import "time"

// PullRequest is a platform-agnostic pull/merge request summary.
type PullRequest struct {
	Number       int64 // GitHub: PR number; GitLab: MR IID
	Title        string
	Author       string
	State        string
	WebURL       string
	SourceBranch string
	TargetBranch string
	Draft        bool
	CreatedAt    time.Time
}

// Review is a platform-agnostic review. GitLab approvals map to APPROVED reviews.
type Review struct {
	ID          int64
	Author      string
	State       string
	SubmittedAt time.Time
}

// ReviewEvent is the action a new review performs.
type ReviewEvent string

// Review events understood by [ReviewCreator] implementations.
const (
	ReviewApprove        ReviewEvent = "APPROVE"
	ReviewComment        ReviewEvent = "COMMENT"
	ReviewRequestChanges ReviewEvent = "REQUEST_CHANGES"
)

// ReviewRequest holds parameters for creating a review.
type ReviewRequest struct {
	Event ReviewEvent
	Body  string
}

// ListOptions narrows a pull request listing.
// An empty State means open; a zero PerPage leaves the API default.
type ListOptions struct {
	State   string
	PerPage int
}
