// Package mocks provides call-tracking test doubles for the platform capabilities.
package mocks

import "sync"

// MethodCall represents a tracked method call with its parameters.
type MethodCall struct {
	Method string
	Args   map[string]any
}

// callTracker records calls; embed it to share GetCalls and friends.
type callTracker struct {
	mu    sync.Mutex
	calls []MethodCall
}

// GetCalls returns all tracked method calls.
func (t *callTracker) GetCalls() []MethodCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]MethodCall{}, t.calls...)
}

// GetCallCount returns the number of times a method was called.
func (t *callTracker) GetCallCount(method string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	count := 0
	for _, call := range t.calls {
		if call.Method == method {
			count++
		}
	}
	return count
}

// GetLastCall returns the last call to the specified method, or nil if not called.
func (t *callTracker) GetLastCall(method string) *MethodCall {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := len(t.calls) - 1; i >= 0; i-- {
		if t.calls[i].Method == method {
			call := t.calls[i]
			return &call
		}
	}
	return nil
}

// Reset clears all tracked calls.
func (t *callTracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = nil
}

func (t *callTracker) trackCall(method string, args map[string]any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.calls = append(t.calls, MethodCall{
		Method: method,
		Args:   args,
	})
}
