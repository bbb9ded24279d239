// Package fixtures provides canned pull requests and webhook payloads for tests.
package fixtures

import (
	"time"

	"github.com/sgaunet/api-surface-check/pkg/platform"
)

// Test constants for platform fixtures.
const (
	DefaultOwner    = "octo-org"
	DefaultRepo     = "octo-repo"
	defaultPRNumber = 42
	defaultWebURL   = "https://github.com/octo-org/octo-repo/pull/42"
	defaultSourceBr = "dependabot/go_modules/github.com/google/go-github/v69-69.2.0"
	defaultTargetBr = "main"
	defaultTitle    = "build(deps): bump github.com/google/go-github/v69 from 69.0.0 to 69.2.0"
)

// CreatedAt is the fixed creation time of fixture pull requests.
var CreatedAt = time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC)

// DependabotPullRequest returns an open Dependabot pull request.
func DependabotPullRequest() platform.PullRequest {
	return platform.PullRequest{
		Number:       defaultPRNumber,
		Title:        defaultTitle,
		Author:       "dependabot[bot]",
		State:        "open",
		WebURL:       defaultWebURL,
		SourceBranch: defaultSourceBr,
		TargetBranch: defaultTargetBr,
		CreatedAt:    CreatedAt,
	}
}

// HumanPullRequest returns an open draft pull request from a person.
func HumanPullRequest() platform.PullRequest {
	return platform.PullRequest{
		Number:       7,
		Title:        "Add retry to release job",
		Author:       "octocat",
		State:        "open",
		WebURL:       "https://github.com/octo-org/octo-repo/pull/7",
		SourceBranch: "feature/retry",
		TargetBranch: defaultTargetBr,
		Draft:        true,
		CreatedAt:    CreatedAt.Add(-24 * time.Hour),
	}
}

// PullRequests returns a non-empty listing, newest first.
func PullRequests() []platform.PullRequest {
	return []platform.PullRequest{DependabotPullRequest(), HumanPullRequest()}
}

// ApprovedReview returns an approval left by the auto-approve bot.
func ApprovedReview() platform.Review {
	return platform.Review{
		ID:          1001,
		Author:      "github-actions[bot]",
		State:       "APPROVED",
		SubmittedAt: CreatedAt.Add(time.Minute),
	}
}
