package platform

import (
	"context"
	"fmt"

	glclient "github.com/sgaunet/api-surface-check/pkg/gitlab"
	"github.com/sgaunet/bullets"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

const reviewStateApproved = "APPROVED"

// GitLabAdapter wraps the GitLab merge request services to implement [Provider].
// Merge requests stand in for pull requests and approvals for reviews; the
// project path is owner + "/" + repo, so owner may contain nested groups.
type GitLabAdapter struct {
	mergeRequests glclient.MergeRequestsAPI
	approvals     glclient.ApprovalsAPI
	log           *bullets.Logger
}

// NewGitLabAdapter creates a new GitLab adapter.
func NewGitLabAdapter(
	mergeRequests glclient.MergeRequestsAPI, approvals glclient.ApprovalsAPI, log *bullets.Logger,
) *GitLabAdapter {
	return &GitLabAdapter{
		mergeRequests: mergeRequests,
		approvals:     approvals,
		log:           log,
	}
}

// PlatformName returns "GitLab".
func (a *GitLabAdapter) PlatformName() string {
	return "GitLab"
}

// ListPullRequests returns the first page of merge requests of the project.
func (a *GitLabAdapter) ListPullRequests(
	ctx context.Context, owner, repo string, opts ListOptions,
) ([]PullRequest, error) {
	project := projectPath(owner, repo)
	a.log.Debug(fmt.Sprintf("Listing GitLab merge requests for %s (state: %s)", project, stateOrDefault(opts.State)))

	listOptions := &gitlab.ListProjectMergeRequestsOptions{}
	switch stateOrDefault(opts.State) {
	case "open":
		listOptions.State = gitlab.Ptr("opened")
	case "closed":
		listOptions.State = gitlab.Ptr("closed")
	}
	if opts.PerPage > 0 {
		listOptions.PerPage = opts.PerPage
	}

	mrs, _, err := a.mergeRequests.ListProjectMergeRequests(project, listOptions, gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list merge requests: %w", err)
	}

	result := make([]PullRequest, 0, len(mrs))
	for _, mr := range mrs {
		if mr == nil {
			continue
		}
		pr := PullRequest{
			Number:       int64(mr.IID),
			Title:        mr.Title,
			State:        mr.State,
			WebURL:       mr.WebURL,
			SourceBranch: mr.SourceBranch,
			TargetBranch: mr.TargetBranch,
			Draft:        mr.Draft,
		}
		if mr.Author != nil {
			pr.Author = mr.Author.Username
		}
		if mr.CreatedAt != nil {
			pr.CreatedAt = *mr.CreatedAt
		}
		result = append(result, pr)
	}

	a.log.Debug(fmt.Sprintf("Merge requests retrieved, count: %d", len(result)))
	return result, nil
}

// ListReviews returns one APPROVED review per user who approved the merge request.
func (a *GitLabAdapter) ListReviews(ctx context.Context, owner, repo string, number int64) ([]Review, error) {
	approvals, _, err := a.approvals.GetConfiguration(projectPath(owner, repo), int(number), gitlab.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get approvals for merge request !%d: %w", number, err)
	}

	var reviews []Review
	for _, approver := range approvals.ApprovedBy {
		if approver == nil || approver.User == nil {
			continue
		}
		reviews = append(reviews, Review{
			ID:     int64(approver.User.ID),
			Author: approver.User.Username,
			State:  reviewStateApproved,
		})
	}
	return reviews, nil
}

// CreateReview approves the merge request. GitLab has no equivalent for
// comment-only or request-changes reviews.
func (a *GitLabAdapter) CreateReview(
	ctx context.Context, owner, repo string, number int64, req ReviewRequest,
) (*Review, error) {
	if req.Event != ReviewApprove {
		return nil, fmt.Errorf("%w on GitLab: %q", ErrUnsupportedReviewEvent, req.Event)
	}

	_, _, err := a.approvals.ApproveMergeRequest(
		projectPath(owner, repo), int(number), &gitlab.ApproveMergeRequestOptions{}, gitlab.WithContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to approve merge request !%d: %w", number, err)
	}

	return &Review{State: reviewStateApproved}, nil
}

func projectPath(owner, repo string) string {
	return owner + "/" + repo
}

// Ensure GitLabAdapter implements Provider at compile time.
var _ Provider = (*GitLabAdapter)(nil)
