// Package testutil provides fakes shared by package tests.
package testutil

import (
	"context"
	"sync"

	"github.com/johnquangdev/client-meetings/pkg/ai"
)

// FakeCompleter is an ai.Completer driven by a function. It records every
// request it receives and is safe for concurrent use.
type FakeCompleter struct {
	Fn func(ctx context.Context, req ai.CompletionRequest) (*ai.Completion, error)

	mu       sync.Mutex
	requests []ai.CompletionRequest
}

// Complete implements ai.Completer
func (f *FakeCompleter) Complete(ctx context.Context, req ai.CompletionRequest) (*ai.Completion, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.Fn(ctx, req)
}

// Name implements ai.Completer
func (f *FakeCompleter) Name() string {
	return "fake"
}

// Requests returns a copy of the recorded requests
func (f *FakeCompleter) Requests() []ai.CompletionRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ai.CompletionRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// StaticCompleter always returns text with a normal stop
func StaticCompleter(text string) *FakeCompleter {
	return &FakeCompleter{Fn: func(context.Context, ai.CompletionRequest) (*ai.Completion, error) {
		return &ai.Completion{Text: text, FinishReason: ai.FinishReasonStop}, nil
	}}
}

// StaticPrompt is a summary prompt loader returning a fixed string or error
type StaticPrompt struct {
	Text string
	Err  error
}

// Load returns the configured prompt
func (p StaticPrompt) Load(context.Context) (string, error) {
	return p.Text, p.Err
}
