package ai

import (
	"context"
	"fmt"
	"sort"

	"google.golang.org/genai"

	"github.com/johnquangdev/client-meetings/pkg/config"
)

// GeminiClient calls the Gemini API through the genai SDK
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client using values from the provided config
func NewGeminiClient(ctx context.Context, cfg *config.GeminiConfig) (*GeminiClient, error) {
	if cfg == nil || cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiClient{client: client, model: cfg.Model}, nil
}

// Name identifies the provider in logs and errors
func (g *GeminiClient) Name() string {
	return "gemini"
}

// Complete runs a single-turn generation
func (g *GeminiClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	gc := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(req.Temperature),
		MaxOutputTokens: int32(req.MaxTokens),
	}
	if req.System != "" {
		gc.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Schema != nil {
		gc.ResponseMIMEType = "application/json"
		gc.ResponseSchema = toGeminiSchema(req.Schema)
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(req.Prompt), gc)
	if err != nil {
		return nil, NewError(CauseTransport, g.Name(), "", err)
	}
	return geminiCompletion(resp, g.model), nil
}

func geminiCompletion(resp *genai.GenerateContentResponse, model string) *Completion {
	out := &Completion{Model: model}
	if resp == nil {
		out.FinishReason = FinishReasonOther
		out.RawReason = "nil response"
		return out
	}

	// A blocked prompt produces no candidates at all.
	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		out.FinishReason = FinishReasonSafety
		out.RawReason = string(fb.BlockReason)
		return out
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		out.FinishReason = FinishReasonOther
		out.RawReason = "no candidates"
		return out
	}

	reason := resp.Candidates[0].FinishReason
	out.RawReason = string(reason)
	switch reason {
	case genai.FinishReasonStop:
		out.FinishReason = FinishReasonStop
	case genai.FinishReasonMaxTokens:
		out.FinishReason = FinishReasonMaxTokens
	case genai.FinishReasonSafety,
		genai.FinishReasonProhibitedContent,
		genai.FinishReasonBlocklist,
		genai.FinishReasonSPII:
		out.FinishReason = FinishReasonSafety
	default:
		out.FinishReason = FinishReasonOther
	}
	out.Text = resp.Text()
	return out
}

func toGeminiSchema(s *Schema) *genai.Schema {
	if s == nil {
		return nil
	}
	gs := &genai.Schema{
		Description: s.Description,
		Required:    s.Required,
	}
	switch s.Type {
	case TypeObject:
		gs.Type = genai.TypeObject
	case TypeArray:
		gs.Type = genai.TypeArray
	default:
		gs.Type = genai.TypeString
	}
	if s.Items != nil {
		gs.Items = toGeminiSchema(s.Items)
	}
	if len(s.Properties) > 0 {
		gs.Properties = make(map[string]*genai.Schema, len(s.Properties))
		names := make([]string, 0, len(s.Properties))
		for name, prop := range s.Properties {
			gs.Properties[name] = toGeminiSchema(prop)
			names = append(names, name)
		}
		sort.Strings(names)
		gs.PropertyOrdering = names
	}
	return gs
}
