package fixtures

import (
	"os"
	"path/filepath"
	"testing"
)

// PullRequestEvent is a trimmed pull_request webhook payload.
const PullRequestEvent = `{
  "action": "opened",
  "number": 42,
  "pull_request": {
    "number": 42,
    "title": "build(deps): bump github.com/google/go-github/v69 from 69.0.0 to 69.2.0",
    "state": "open",
    "user": {"login": "dependabot[bot]"}
  },
  "repository": {
    "name": "octo-repo",
    "full_name": "octo-org/octo-repo",
    "owner": {"login": "octo-org"}
  }
}`

// PullRequestReviewEvent is a trimmed pull_request_review webhook payload.
const PullRequestReviewEvent = `{
  "action": "submitted",
  "review": {"id": 1001, "state": "approved", "user": {"login": "octocat"}},
  "pull_request": {"number": 42, "state": "open"},
  "repository": {
    "name": "octo-repo",
    "full_name": "octo-org/octo-repo",
    "owner": {"login": "octo-org"}
  }
}`

// PushEvent is a payload for an event the probe does not decode.
const PushEvent = `{
  "ref": "refs/heads/main",
  "repository": {"name": "octo-repo", "owner": {"login": "octo-org"}}
}`

// WriteEvent writes payload to a file under t.TempDir and returns its path.
func WriteEvent(t *testing.T, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("failed to write event payload: %v", err)
	}
	return path
}
