package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/johnquangdev/client-meetings/pkg/config"
)

// AnthropicClient calls the Anthropic Messages API through the official SDK
type AnthropicClient struct {
	client anthropic.Client
	apiKey string
	model  string
}

// NewAnthropicClient creates an Anthropic client using values from the provided config
func NewAnthropicClient(cfg *config.AnthropicConfig) *AnthropicClient {
	var apiKey, model string
	opts := []option.RequestOption{option.WithMaxRetries(0)}
	if cfg != nil {
		apiKey = cfg.APIKey
		model = cfg.Model
		if cfg.BaseURL != "" {
			opts = append(opts, option.WithBaseURL(strings.TrimRight(cfg.BaseURL, "/")))
		}
	}
	opts = append(opts, option.WithAPIKey(apiKey))

	return &AnthropicClient{
		client: anthropic.NewClient(opts...),
		apiKey: apiKey,
		model:  model,
	}
}

// Name identifies the provider in logs and errors
func (a *AnthropicClient) Name() string {
	return "anthropic"
}

// Complete sends a single user message. When a schema is requested the model
// is forced to call a tool whose input schema is that schema, and the tool
// input is returned as the completion text.
func (a *AnthropicClient) Complete(ctx context.Context, req CompletionRequest) (*Completion, error) {
	if a.apiKey == "" {
		return nil, NewError(CauseTransport, a.Name(), "", fmt.Errorf("anthropic API key not configured"))
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(a.model),
		MaxTokens:   int64(req.MaxTokens),
		Temperature: anthropic.Float(float64(req.Temperature)),
		Messages:    []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt))},
	}
	if req.System != "" {
		params.System = []anthropic.TextBlockParam{{Text: req.System}}
	}

	if req.Schema != nil {
		name := req.SchemaName
		if name == "" {
			name = "structured_output"
		}
		tool := anthropic.ToolUnionParamOfTool(anthropicInputSchema(req.Schema), name)
		tool.OfTool.Description = anthropic.String("Record the structured result.")
		params.Tools = []anthropic.ToolUnionParam{tool}
		params.ToolChoice = anthropic.ToolChoiceParamOfTool(name)
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, NewError(CauseTransport, a.Name(), "", err)
	}
	return anthropicCompletion(msg, req.Schema != nil), nil
}

func anthropicCompletion(msg *anthropic.Message, structured bool) *Completion {
	out := &Completion{Model: string(msg.Model), RawReason: string(msg.StopReason)}
	switch msg.StopReason {
	case anthropic.StopReasonEndTurn, anthropic.StopReasonStopSequence, anthropic.StopReasonToolUse:
		out.FinishReason = FinishReasonStop
	case anthropic.StopReasonMaxTokens:
		out.FinishReason = FinishReasonMaxTokens
	case anthropic.StopReasonRefusal:
		out.FinishReason = FinishReasonSafety
	default:
		out.FinishReason = FinishReasonOther
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		switch {
		case structured && block.Type == "tool_use":
			out.Text = string(block.Input)
			return out
		case block.Type == "text":
			sb.WriteString(block.Text)
		}
	}
	out.Text = sb.String()
	return out
}

// anthropicInputSchema renders the schema with additionalProperties=false on
// every object, which the tool input schema requires to be explicit.
func anthropicInputSchema(s *Schema) anthropic.ToolInputSchemaParam {
	root := strictSchema(s)
	in := anthropic.ToolInputSchemaParam{
		Properties:  root["properties"],
		ExtraFields: map[string]any{"additionalProperties": false},
	}
	if len(s.Required) > 0 {
		in.Required = s.Required
	}
	return in
}

func strictSchema(s *Schema) map[string]interface{} {
	m := map[string]interface{}{"type": s.Type}
	if s.Description != "" {
		m["description"] = s.Description
	}
	if s.Items != nil {
		m["items"] = strictSchema(s.Items)
	}
	if s.Type == TypeObject {
		props := make(map[string]interface{}, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = strictSchema(p)
		}
		m["properties"] = props
		m["additionalProperties"] = false
		if len(s.Required) > 0 {
			m["required"] = s.Required
		}
	}
	return m
}
