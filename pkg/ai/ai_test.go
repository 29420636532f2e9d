package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/johnquangdev/client-meetings/pkg/config"
)

func TestCheckCompletion(t *testing.T) {
	tests := []struct {
		name  string
		in    *Completion
		cause Cause
	}{
		{"normal stop", &Completion{Text: "{}", FinishReason: FinishReasonStop}, CauseUnknown},
		{"safety", &Completion{FinishReason: FinishReasonSafety, RawReason: "SAFETY"}, CauseSafetyBlocked},
		{"max tokens", &Completion{Text: "{\"meeting", FinishReason: FinishReasonMaxTokens}, CauseTokenLimitReached},
		{"other", &Completion{Text: "x", FinishReason: FinishReasonOther, RawReason: "RECITATION"}, CauseUnexpectedTermination},
		{"empty text", &Completion{Text: "  \n", FinishReason: FinishReasonStop}, CauseEmptyResponse},
		{"nil completion", nil, CauseEmptyResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckCompletion("fake", "summary", tt.in)
			if tt.cause == CauseUnknown {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.cause, CauseOf(err))
		})
	}
}

func TestGenerationErrorMatching(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewError(CauseTokenLimitReached, "gemini", "summary", nil))

	assert.True(t, errors.Is(err, ErrTokenLimitReached))
	assert.False(t, errors.Is(err, ErrSafetyBlocked))
	assert.Equal(t, CauseTokenLimitReached, CauseOf(err))
	assert.Equal(t, CauseUnknown, CauseOf(errors.New("plain")))
	assert.Contains(t, err.Error(), "summary: ai token_limit_reached (gemini)")
}

func TestAsGenerationError(t *testing.T) {
	t.Run("plain error becomes transport", func(t *testing.T) {
		ge := AsGenerationError("anthropic", "summary", errors.New("connection reset"))
		assert.Equal(t, CauseTransport, ge.Cause)
		assert.Equal(t, "summary", ge.Op)
	})

	t.Run("keeps existing cause without mutating it", func(t *testing.T) {
		orig := NewError(CauseSafetyBlocked, "", "", nil)
		ge := AsGenerationError("gemini", "report:fact_find", orig)
		assert.Equal(t, CauseSafetyBlocked, ge.Cause)
		assert.Equal(t, "report:fact_find", ge.Op)
		assert.Equal(t, "gemini", ge.Provider)
		assert.Empty(t, orig.Op)
	})
}

func summarySchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"meeting_summary": {Type: TypeString},
			"adviser_actions": {Type: TypeArray, Items: &Schema{Type: TypeString}},
		},
		Required: []string{"meeting_summary", "adviser_actions"},
	}
}

func TestAnthropicComplete(t *testing.T) {
	t.Run("structured output via forced tool", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/messages", r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
			assert.Equal(t, "2023-06-01", r.Header.Get("anthropic-version"))

			var payload map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			system := payload["system"].([]interface{})
			assert.Equal(t, "system prompt", system[0].(map[string]interface{})["text"])
			assert.EqualValues(t, 0, payload["temperature"])
			choice := payload["tool_choice"].(map[string]interface{})
			assert.Equal(t, "meeting_summary", choice["name"])
			tools := payload["tools"].([]interface{})
			schema := tools[0].(map[string]interface{})["input_schema"].(map[string]interface{})
			assert.Equal(t, false, schema["additionalProperties"])
			assert.Equal(t, "object", schema["type"])

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"model":"claude-test","stop_reason":"tool_use","content":[{"type":"tool_use","name":"meeting_summary","input":{"meeting_summary":"X","adviser_actions":[]}}]}`))
		}))
		defer ts.Close()

		client := NewAnthropicClient(&config.AnthropicConfig{APIKey: "test-key", Model: "claude-test", BaseURL: ts.URL})
		out, err := client.Complete(context.Background(), CompletionRequest{
			System:     "system prompt",
			Prompt:     "transcript",
			MaxTokens:  100,
			Schema:     summarySchema(),
			SchemaName: "meeting_summary",
		})
		require.NoError(t, err)
		assert.Equal(t, FinishReasonStop, out.FinishReason)
		assert.JSONEq(t, `{"meeting_summary":"X","adviser_actions":[]}`, out.Text)
	})

	t.Run("plain text and max tokens", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"stop_reason":"max_tokens","content":[{"type":"text","text":"partial"}]}`))
		}))
		defer ts.Close()

		client := NewAnthropicClient(&config.AnthropicConfig{APIKey: "k", BaseURL: ts.URL})
		out, err := client.Complete(context.Background(), CompletionRequest{Prompt: "p", MaxTokens: 10})
		require.NoError(t, err)
		assert.Equal(t, FinishReasonMaxTokens, out.FinishReason)
		assert.Equal(t, "partial", out.Text)
	})

	t.Run("error status is a transport failure without retries", func(t *testing.T) {
		var calls int32
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error":{"type":"rate_limit_error"}}`))
		}))
		defer ts.Close()

		client := NewAnthropicClient(&config.AnthropicConfig{APIKey: "k", BaseURL: ts.URL})
		_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "p", MaxTokens: 10})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrTransport))
		assert.Contains(t, err.Error(), "429")
		assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
	})

	t.Run("missing key", func(t *testing.T) {
		client := NewAnthropicClient(nil)
		_, err := client.Complete(context.Background(), CompletionRequest{Prompt: "p"})
		assert.True(t, errors.Is(err, ErrTransport))
	})
}

func TestAnthropicStopReasons(t *testing.T) {
	cases := map[anthropic.StopReason]FinishReason{
		anthropic.StopReasonEndTurn:      FinishReasonStop,
		anthropic.StopReasonStopSequence: FinishReasonStop,
		anthropic.StopReasonToolUse:      FinishReasonStop,
		anthropic.StopReasonRefusal:      FinishReasonSafety,
		anthropic.StopReasonMaxTokens:    FinishReasonMaxTokens,
		anthropic.StopReasonPauseTurn:    FinishReasonOther,
	}
	for reason, want := range cases {
		out := anthropicCompletion(&anthropic.Message{StopReason: reason}, false)
		assert.Equal(t, want, out.FinishReason, reason)
	}
}

func TestGeminiCompletion(t *testing.T) {
	candidate := func(reason genai.FinishReason, text string) *genai.GenerateContentResponse {
		return &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{
				Content:      &genai.Content{Parts: []*genai.Part{{Text: text}}},
				FinishReason: reason,
			}},
		}
	}

	t.Run("stop with text", func(t *testing.T) {
		out := geminiCompletion(candidate(genai.FinishReasonStop, `{"a":1}`), "m")
		assert.Equal(t, FinishReasonStop, out.FinishReason)
		assert.Equal(t, `{"a":1}`, out.Text)
	})

	t.Run("safety variants", func(t *testing.T) {
		for _, r := range []genai.FinishReason{genai.FinishReasonSafety, genai.FinishReasonProhibitedContent, genai.FinishReasonBlocklist, genai.FinishReasonSPII} {
			assert.Equal(t, FinishReasonSafety, geminiCompletion(candidate(r, ""), "m").FinishReason)
		}
	})

	t.Run("max tokens", func(t *testing.T) {
		assert.Equal(t, FinishReasonMaxTokens, geminiCompletion(candidate(genai.FinishReasonMaxTokens, "x"), "m").FinishReason)
	})

	t.Run("recitation is unexpected", func(t *testing.T) {
		assert.Equal(t, FinishReasonOther, geminiCompletion(candidate(genai.FinishReasonRecitation, "x"), "m").FinishReason)
	})

	t.Run("blocked prompt", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			PromptFeedback: &genai.GenerateContentResponsePromptFeedback{BlockReason: genai.BlockedReasonSafety},
		}
		assert.Equal(t, FinishReasonSafety, geminiCompletion(resp, "m").FinishReason)
	})

	t.Run("no candidates", func(t *testing.T) {
		assert.Equal(t, FinishReasonOther, geminiCompletion(&genai.GenerateContentResponse{}, "m").FinishReason)
	})
}

func TestToGeminiSchema(t *testing.T) {
	gs := toGeminiSchema(summarySchema())
	assert.Equal(t, genai.TypeObject, gs.Type)
	assert.Equal(t, []string{"adviser_actions", "meeting_summary"}, gs.PropertyOrdering)
	assert.Equal(t, genai.TypeArray, gs.Properties["adviser_actions"].Type)
	assert.Equal(t, genai.TypeString, gs.Properties["adviser_actions"].Items.Type)
	assert.ElementsMatch(t, []string{"meeting_summary", "adviser_actions"}, gs.Required)
}
