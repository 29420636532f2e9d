// Package ai wraps the LLM providers used for meeting summaries and
// discovery reports behind a single Completer interface.
package ai

import (
	"context"
	"strings"
)

// FinishReason is the provider-independent termination reason of a completion
type FinishReason string

const (
	FinishReasonStop      FinishReason = "stop"
	FinishReasonMaxTokens FinishReason = "max_tokens"
	FinishReasonSafety    FinishReason = "safety"
	FinishReasonOther     FinishReason = "other"
)

// Schema is a minimal JSON schema used to constrain structured output.
// Object schemas never allow additional properties.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Schema types
const (
	TypeObject = "object"
	TypeString = "string"
	TypeArray  = "array"
)

// CompletionRequest is a single-turn completion
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
	// Schema, when set, asks the provider to return JSON conforming to it.
	Schema *Schema
	// SchemaName labels the structured output for providers that need one.
	SchemaName string
}

// Completion is the normalized provider response
type Completion struct {
	Text         string
	FinishReason FinishReason
	// RawReason is the provider's own reason string, kept for logging.
	RawReason string
	Model     string
}

// Completer is implemented by every LLM provider
type Completer interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
	Name() string
}

// CheckCompletion maps a completion's termination to a typed error.
// A nil return means the completion stopped normally with non-empty text.
func CheckCompletion(provider, op string, c *Completion) error {
	if c == nil {
		return NewError(CauseEmptyResponse, provider, op, nil)
	}
	switch c.FinishReason {
	case FinishReasonStop:
	case FinishReasonSafety:
		return NewError(CauseSafetyBlocked, provider, op, reasonError(c.RawReason))
	case FinishReasonMaxTokens:
		return NewError(CauseTokenLimitReached, provider, op, reasonError(c.RawReason))
	default:
		return NewError(CauseUnexpectedTermination, provider, op, reasonError(c.RawReason))
	}
	if strings.TrimSpace(c.Text) == "" {
		return NewError(CauseEmptyResponse, provider, op, nil)
	}
	return nil
}

type reasonError string

func (r reasonError) Error() string {
	if r == "" {
		return "no finish reason reported"
	}
	return "finish reason " + string(r)
}
