// Package probe checks that a forge client still exposes the pull request
// review operations the auto-approve workflow depends on, then confirms
// connectivity with one read-only listing call.
//
// The sequence is linear and fails fast:
//
//	listReviews? -> createReview? -> list pull requests -> report first (or nothing)
//
// Nothing is retried and nothing is written to the forge.
package probe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sgaunet/api-surface-check/internal/timeutil"
	"github.com/sgaunet/api-surface-check/pkg/platform"
	"github.com/sgaunet/bullets"
)

// Validator runs the API surface check. It keeps no state between runs.
type Validator struct {
	log         *bullets.Logger
	sink        Sink
	listOptions platform.ListOptions
}

// Option configures a Validator.
type Option func(*Validator)

// WithSink replaces the default log sink.
func WithSink(sink Sink) Option {
	return func(v *Validator) {
		v.sink = sink
	}
}

// WithListOptions sets the options of the probe list call.
func WithListOptions(opts platform.ListOptions) Option {
	return func(v *Validator) {
		v.listOptions = opts
	}
}

// New creates a Validator. Progress goes to log at debug level; the reported
// pull request goes to the sink, which defaults to an Info line on log.
func New(log *bullets.Logger, opts ...Option) *Validator {
	v := &Validator{log: log}
	for _, opt := range opts {
		opt(v)
	}
	if v.sink == nil {
		v.sink = NewLogSink(log)
	}
	return v
}

// Validate checks client's capabilities and probes (owner, repo).
//
// Errors:
//   - *MissingCapabilityError for the first absent capability; no call is made
//   - ErrInvalidRepository when owner or repo is empty; no call is made
//   - *APICallError wrapping the list call failure
func (v *Validator) Validate(ctx context.Context, client any, owner, repo string) error {
	for _, c := range []Capability{CapabilityListReviews, CapabilityCreateReview} {
		if !HasCapability(client, c) {
			return &MissingCapabilityError{Name: c}
		}
		v.log.Debug(fmt.Sprintf("Capability %s present", c))
	}

	lister, ok := client.(platform.PullRequestLister)
	if !ok {
		return &MissingCapabilityError{Name: CapabilityListPullRequests}
	}

	if strings.TrimSpace(owner) == "" || strings.TrimSpace(repo) == "" {
		return fmt.Errorf("%w: owner=%q repo=%q", ErrInvalidRepository, owner, repo)
	}

	v.log.Debug(fmt.Sprintf("Listing pull requests for %s/%s", owner, repo))
	start := time.Now()
	prs, err := lister.ListPullRequests(ctx, owner, repo, v.listOptions)
	if err != nil {
		return &APICallError{Cause: err}
	}
	v.log.Debug(fmt.Sprintf("List call returned %d pull request(s) in %s",
		len(prs), timeutil.FormatDuration(time.Since(start))))

	if len(prs) == 0 {
		v.log.Debug("No pull requests to report")
		return nil
	}

	v.sink.PullRequest(prs[0])
	return nil
}
