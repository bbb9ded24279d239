package probe

import (
	"fmt"
	"strings"
	"time"

	"github.com/sgaunet/api-surface-check/internal/timeutil"
	"github.com/sgaunet/api-surface-check/pkg/platform"
	"github.com/sgaunet/bullets"
)

// Sink receives the pull request the probe reports.
type Sink interface {
	PullRequest(pr platform.PullRequest)
}

// LogSink writes each reported pull request as one Info line.
type LogSink struct {
	log *bullets.Logger
	now func() time.Time
}

// NewLogSink creates a sink writing to log.
func NewLogSink(log *bullets.Logger) *LogSink {
	return &LogSink{log: log, now: time.Now}
}

// PullRequest implements Sink.
func (s *LogSink) PullRequest(pr platform.PullRequest) {
	s.log.Info(FormatPullRequest(pr, s.now()))
}

// FormatPullRequest renders a one-line summary. The parenthesized details
// are left out when the forge returned none of them:
//
//	#42 build(deps): bump x by dependabot[bot] (open, dependabot/x -> main, opened 2h 5m ago) https://...
func FormatPullRequest(pr platform.PullRequest, now time.Time) string {
	author := pr.Author
	if author == "" {
		author = "unknown"
	}

	var details []string
	if pr.State != "" {
		details = append(details, pr.State)
	}
	if pr.Draft {
		details = append(details, "draft")
	}
	if pr.SourceBranch != "" || pr.TargetBranch != "" {
		details = append(details, fmt.Sprintf("%s -> %s", pr.SourceBranch, pr.TargetBranch))
	}
	if !pr.CreatedAt.IsZero() {
		if age := timeutil.FormatAge(pr.CreatedAt, now); age == "just now" {
			details = append(details, "opened just now")
		} else {
			details = append(details, "opened "+age+" ago")
		}
	}

	line := fmt.Sprintf("#%d %s by %s", pr.Number, pr.Title, author)
	if len(details) > 0 {
		line += " (" + strings.Join(details, ", ") + ")"
	}
	if pr.WebURL != "" {
		line += " " + pr.WebURL
	}
	return line
}
