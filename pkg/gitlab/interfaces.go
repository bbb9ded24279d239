package gitlab

import (
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

// MergeRequestsAPI is the subset of the merge request service used here.
type MergeRequestsAPI interface {
	// ListProjectMergeRequests lists the merge requests of a project.
	ListProjectMergeRequests(
		pid any, opt *gitlab.ListProjectMergeRequestsOptions, options ...gitlab.RequestOptionFunc,
	) ([]*gitlab.BasicMergeRequest, *gitlab.Response, error)
}

// ApprovalsAPI is the subset of the merge request approvals service used here.
// Approvals are GitLab's counterpart of pull request reviews.
type ApprovalsAPI interface {
	// GetConfiguration returns the approval state, including who approved.
	GetConfiguration(
		pid any, mr int, options ...gitlab.RequestOptionFunc,
	) (*gitlab.MergeRequestApprovals, *gitlab.Response, error)

	// ApproveMergeRequest approves a merge request.
	ApproveMergeRequest(
		pid any, mr int, opt *gitlab.ApproveMergeRequestOptions, options ...gitlab.RequestOptionFunc,
	) (*gitlab.MergeRequestApprovals, *gitlab.Response, error)
}

// Ensure the SDK services satisfy the contracts at compile time.
var (
	_ MergeRequestsAPI = (*gitlab.MergeRequestsService)(nil)
	_ ApprovalsAPI     = (*gitlab.MergeRequestApprovalsService)(nil)
)
