package probe_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sgaunet/api-surface-check/internal/logger"
	"github.com/sgaunet/api-surface-check/pkg/platform"
	"github.com/sgaunet/api-surface-check/pkg/probe"
	"github.com/sgaunet/api-surface-check/testing/fixtures"
	"github.com/sgaunet/api-surface-check/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(sink probe.Sink, opts ...probe.Option) *probe.Validator {
	return probe.New(logger.NoLogger(), append([]probe.Option{probe.WithSink(sink)}, opts...)...)
}

func TestValidate_ReportsFirstPullRequest(t *testing.T) {
	client := mocks.NewPlatformProvider()
	client.ListPullRequestsResponse = fixtures.PullRequests()
	sink := mocks.NewSink()

	err := newValidator(sink).Validate(context.Background(), client, fixtures.DefaultOwner, fixtures.DefaultRepo)

	require.NoError(t, err)
	reported := sink.Reported()
	require.Len(t, reported, 1)
	assert.Equal(t, fixtures.DependabotPullRequest(), reported[0])

	assert.Equal(t, 1, client.GetCallCount("ListPullRequests"))
	call := client.GetLastCall("ListPullRequests")
	require.NotNil(t, call)
	assert.Equal(t, fixtures.DefaultOwner, call.Args["owner"])
	assert.Equal(t, fixtures.DefaultRepo, call.Args["repo"])
}

func TestValidate_EmptyListIsSuccess(t *testing.T) {
	client := mocks.NewPlatformProvider()
	sink := mocks.NewSink()

	err := newValidator(sink).Validate(context.Background(), client, fixtures.DefaultOwner, fixtures.DefaultRepo)

	require.NoError(t, err)
	assert.Empty(t, sink.Reported())
	assert.Equal(t, 1, client.GetCallCount("ListPullRequests"))
}

func TestValidate_NeverWrites(t *testing.T) {
	client := mocks.NewPlatformProvider()
	client.ListPullRequestsResponse = fixtures.PullRequests()

	require.NoError(t, newValidator(mocks.NewSink()).Validate(context.Background(), client, "o", "r"))

	assert.Zero(t, client.GetCallCount("CreateReview"))
	assert.Zero(t, client.GetCallCount("ListReviews"))
	assert.Len(t, client.GetCalls(), 1)
}

func TestValidate_MissingListReviews(t *testing.T) {
	client := mocks.NewPullRequestLister()
	client.ListPullRequestsResponse = fixtures.PullRequests()
	sink := mocks.NewSink()

	err := newValidator(sink).Validate(context.Background(), client, "o", "r")

	require.Error(t, err)
	require.ErrorIs(t, err, probe.ErrMissingCapability)
	var missing *probe.MissingCapabilityError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, probe.CapabilityListReviews, missing.Name)
	assert.Contains(t, err.Error(), "listReviews")

	assert.Empty(t, client.GetCalls())
	assert.Empty(t, sink.Reported())
}

func TestValidate_MissingCreateReview(t *testing.T) {
	client := mocks.NewReviewListingClient()
	client.ListPullRequestsResponse = fixtures.PullRequests()
	sink := mocks.NewSink()

	err := newValidator(sink).Validate(context.Background(), client, "o", "r")

	var missing *probe.MissingCapabilityError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, probe.CapabilityCreateReview, missing.Name)
	assert.Contains(t, err.Error(), "createReview")

	assert.Empty(t, client.GetCalls())
	assert.Empty(t, sink.Reported())
}

func TestValidate_MissingListPullRequests(t *testing.T) {
	client := mocks.NewReviewOnlyClient()

	err := newValidator(mocks.NewSink()).Validate(context.Background(), client, "o", "r")

	var missing *probe.MissingCapabilityError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, probe.CapabilityListPullRequests, missing.Name)
	assert.Empty(t, client.GetCalls())
}

func TestValidate_NilClient(t *testing.T) {
	err := newValidator(mocks.NewSink()).Validate(context.Background(), nil, "o", "r")

	var missing *probe.MissingCapabilityError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, probe.CapabilityListReviews, missing.Name)
}

func TestValidate_APICallFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	client := mocks.NewPlatformProvider()
	client.ListPullRequestsError = cause
	sink := mocks.NewSink()

	err := newValidator(sink).Validate(context.Background(), client, "o", "r")

	require.Error(t, err)
	require.ErrorIs(t, err, probe.ErrAPICallFailed)
	require.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, probe.ErrMissingCapability)

	var apiErr *probe.APICallError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, cause, apiErr.Cause)
	assert.Contains(t, err.Error(), "connection refused")

	assert.Equal(t, 1, client.GetCallCount("ListPullRequests"))
	assert.Empty(t, sink.Reported())
}

func TestValidate_InvalidRepository(t *testing.T) {
	tests := []struct {
		name  string
		owner string
		repo  string
	}{
		{name: "empty owner", owner: "", repo: "r"},
		{name: "empty repo", owner: "o", repo: ""},
		{name: "blank owner", owner: "  ", repo: "r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := mocks.NewPlatformProvider()

			err := newValidator(mocks.NewSink()).Validate(context.Background(), client, tt.owner, tt.repo)

			require.ErrorIs(t, err, probe.ErrInvalidRepository)
			assert.Empty(t, client.GetCalls())
		})
	}
}

func TestValidate_CapabilityCheckedBeforeRepository(t *testing.T) {
	err := newValidator(mocks.NewSink()).Validate(context.Background(), mocks.NewPullRequestLister(), "", "")

	require.ErrorIs(t, err, probe.ErrMissingCapability)
	assert.NotErrorIs(t, err, probe.ErrInvalidRepository)
}

func TestValidate_Idempotent(t *testing.T) {
	client := mocks.NewPlatformProvider()
	client.ListPullRequestsResponse = fixtures.PullRequests()
	sink := mocks.NewSink()
	v := newValidator(sink)

	first := v.Validate(context.Background(), client, "o", "r")
	second := v.Validate(context.Background(), client, "o", "r")

	require.NoError(t, first)
	require.NoError(t, second)
	reported := sink.Reported()
	require.Len(t, reported, 2)
	assert.Equal(t, reported[0], reported[1])

	failing := mocks.NewReviewListingClient()
	errA := v.Validate(context.Background(), failing, "o", "r")
	errB := v.Validate(context.Background(), failing, "o", "r")
	assert.Equal(t, errA.Error(), errB.Error())
}

func TestValidate_PassesListOptions(t *testing.T) {
	client := mocks.NewPlatformProvider()
	opts := platform.ListOptions{State: "all", PerPage: 1}

	err := newValidator(mocks.NewSink(), probe.WithListOptions(opts)).
		Validate(context.Background(), client, "o", "r")

	require.NoError(t, err)
	call := client.GetLastCall("ListPullRequests")
	require.NotNil(t, call)
	assert.Equal(t, opts, call.Args["opts"])
}

func TestNew_DefaultSinkLogsAtInfo(t *testing.T) {
	client := mocks.NewPlatformProvider()
	client.ListPullRequestsResponse = fixtures.PullRequests()

	var buf bytes.Buffer
	v := probe.New(logger.NewLoggerWithWriter("info", &buf))

	require.NoError(t, v.Validate(context.Background(), client, "o", "r"))

	out := buf.String()
	assert.Contains(t, out, "#42")
	assert.Contains(t, out, "dependabot[bot]")
	assert.NotContains(t, out, "#7 ")
	assert.NotContains(t, out, "Capability")
}

func TestHasCapability(t *testing.T) {
	provider := mocks.NewPlatformProvider()
	lister := mocks.NewPullRequestLister()
	reviewOnly := mocks.NewReviewOnlyClient()

	for _, c := range probe.RequiredCapabilities {
		assert.True(t, probe.HasCapability(provider, c), c)
	}

	assert.True(t, probe.HasCapability(lister, probe.CapabilityListPullRequests))
	assert.False(t, probe.HasCapability(lister, probe.CapabilityListReviews))
	assert.False(t, probe.HasCapability(lister, probe.CapabilityCreateReview))

	assert.False(t, probe.HasCapability(reviewOnly, probe.CapabilityListPullRequests))
	assert.True(t, probe.HasCapability(reviewOnly, probe.CapabilityCreateReview))

	assert.False(t, probe.HasCapability(provider, probe.Capability("mergePullRequest")))
	assert.False(t, probe.HasCapability(nil, probe.CapabilityListReviews))
}

func TestErrorMessages(t *testing.T) {
	missing := &probe.MissingCapabilityError{Name: probe.CapabilityCreateReview}
	assert.Equal(t, "missing capability: createReview", missing.Error())

	apiErr := &probe.APICallError{Cause: errors.New("boom")}
	assert.Equal(t, "api call failed: boom", apiErr.Error())
}
