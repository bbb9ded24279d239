package mocks

import (
	"sync"

	"github.com/sgaunet/api-surface-check/pkg/platform"
)

// Sink records every pull request reported to it.
type Sink struct {
	mu       sync.Mutex
	reported []platform.PullRequest
}

// NewSink creates an empty recording sink.
func NewSink() *Sink {
	return &Sink{}
}

// PullRequest implements probe.Sink.
func (s *Sink) PullRequest(pr platform.PullRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reported = append(s.reported, pr)
}

// Reported returns a copy of everything reported so far.
func (s *Sink) Reported() []platform.PullRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]platform.PullRequest{}, s.reported...)
}
