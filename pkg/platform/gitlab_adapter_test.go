package platform_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sgaunet/api-surface-check/internal/logger"
	"github.com/sgaunet/api-surface-check/pkg/platform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gitlab "gitlab.com/gitlab-org/api/client-go"
)

const gitlabProjectPath = "/api/v4/projects/group/sub/widgets"

// newGitLabAdapter points a real GitLab client at a test server.
func newGitLabAdapter(t *testing.T, handler http.HandlerFunc) *platform.GitLabAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := gitlab.NewClient("glpat-test-token", gitlab.WithBaseURL(srv.URL))
	require.NoError(t, err)

	return platform.NewGitLabAdapter(client.MergeRequests, client.MergeRequestApprovals, logger.NoLogger())
}

func TestGitLabAdapter_ListPullRequests(t *testing.T) {
	adapter := newGitLabAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != gitlabProjectPath+"/merge_requests" {
			fmt.Fprint(w, `{}`)
			return
		}
		assert.Equal(t, "opened", r.URL.Query().Get("state"))
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `[
			{"iid": 12, "title": "Bump rack", "state": "opened", "draft": false,
			 "web_url": "https://gitlab.com/group/sub/widgets/-/merge_requests/12",
			 "source_branch": "renovate/rack", "target_branch": "main",
			 "author": {"username": "renovate-bot"},
			 "created_at": "2026-01-02T03:04:05Z"}
		]`)
	})

	prs, err := adapter.ListPullRequests(context.Background(), "group/sub", "widgets", platform.ListOptions{PerPage: 1})
	require.NoError(t, err)
	require.Len(t, prs, 1)
	assert.Equal(t, int64(12), prs[0].Number)
	assert.Equal(t, "Bump rack", prs[0].Title)
	assert.Equal(t, "renovate-bot", prs[0].Author)
	assert.Equal(t, "renovate/rack", prs[0].SourceBranch)
	assert.Equal(t, "main", prs[0].TargetBranch)
	assert.False(t, prs[0].CreatedAt.IsZero())
}

func TestGitLabAdapter_ListPullRequestsAllStates(t *testing.T) {
	adapter := newGitLabAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != gitlabProjectPath+"/merge_requests" {
			fmt.Fprint(w, `{}`)
			return
		}
		assert.Empty(t, r.URL.Query().Get("state"))
		fmt.Fprint(w, `[]`)
	})

	prs, err := adapter.ListPullRequests(context.Background(), "group/sub", "widgets", platform.ListOptions{State: "all"})
	require.NoError(t, err)
	assert.Empty(t, prs)
}

func TestGitLabAdapter_ListPullRequestsError(t *testing.T) {
	adapter := newGitLabAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != gitlabProjectPath+"/merge_requests" {
			fmt.Fprint(w, `{}`)
			return
		}
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "404 Project Not Found"}`)
	})

	_, err := adapter.ListPullRequests(context.Background(), "group/sub", "widgets", platform.ListOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list merge requests")
}

func TestGitLabAdapter_ListReviews(t *testing.T) {
	adapter := newGitLabAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != gitlabProjectPath+"/merge_requests/12/approvals" {
			fmt.Fprint(w, `{}`)
			return
		}
		fmt.Fprint(w, `{"iid": 12, "approved_by": [
			{"user": {"id": 5, "username": "alice"}},
			{"user": {"id": 6, "username": "bob"}}
		]}`)
	})

	reviews, err := adapter.ListReviews(context.Background(), "group/sub", "widgets", 12)
	require.NoError(t, err)
	assert.Equal(t, []platform.Review{
		{ID: 5, Author: "alice", State: "APPROVED"},
		{ID: 6, Author: "bob", State: "APPROVED"},
	}, reviews)
}

func TestGitLabAdapter_CreateReview(t *testing.T) {
	approved := false
	adapter := newGitLabAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == gitlabProjectPath+"/merge_requests/12/approve" {
			approved = true
		}
		fmt.Fprint(w, `{}`)
	})

	review, err := adapter.CreateReview(context.Background(), "group/sub", "widgets", 12, platform.ReviewRequest{
		Event: platform.ReviewApprove,
	})
	require.NoError(t, err)
	assert.True(t, approved)
	assert.Equal(t, "APPROVED", review.State)
}

func TestGitLabAdapter_CreateReviewOnlyApproves(t *testing.T) {
	adapter := newGitLabAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
		fmt.Fprint(w, `{}`)
	})

	_, err := adapter.CreateReview(context.Background(), "group/sub", "widgets", 12, platform.ReviewRequest{
		Event: platform.ReviewComment,
		Body:  "nit",
	})
	require.ErrorIs(t, err, platform.ErrUnsupportedReviewEvent)
}

func TestGitLabAdapter_PlatformName(t *testing.T) {
	adapter := platform.NewGitLabAdapter(nil, nil, logger.NoLogger())
	assert.Equal(t, "GitLab", adapter.PlatformName())
}
