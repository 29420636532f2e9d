// Package summary turns a meeting transcript into a structured summary with
// adviser and client action lists.
package summary

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/pkg/ai"
)

const op = "summary"

// Schema is the structured output requested from the provider
var Schema = &ai.Schema{
	Type: ai.TypeObject,
	Properties: map[string]*ai.Schema{
		"meeting_summary": {
			Type:        ai.TypeString,
			Description: "Narrative summary of the meeting.",
		},
		"adviser_actions": {
			Type:        ai.TypeArray,
			Description: "Follow-up tasks for the adviser.",
			Items:       &ai.Schema{Type: ai.TypeString},
		},
		"client_actions": {
			Type:        ai.TypeArray,
			Description: "Follow-up tasks for the client.",
			Items:       &ai.Schema{Type: ai.TypeString},
		},
	},
	Required: requiredFields,
}

// Service generates structured meeting summaries
type Service struct {
	completer ai.Completer
	prompts   PromptLoader
	maxTokens int
	logger    *zap.Logger
}

// NewService creates a summary service
func NewService(completer ai.Completer, prompts PromptLoader, maxTokens int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		completer: completer,
		prompts:   prompts,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Generate returns the structured summary for transcript. Failures are
// *ai.GenerationError values whose Cause tells safety blocks, token limits,
// unexpected terminations, empty responses and transport failures apart.
func (s *Service) Generate(ctx context.Context, transcript string) (*entities.StructuredSummary, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, entities.ErrEmptyTranscript
	}

	result, err := s.generate(ctx, transcript)
	if err != nil {
		ge := ai.AsGenerationError(s.completer.Name(), op, err)
		s.logger.Error("summary generation failed",
			zap.String("provider", ge.Provider),
			zap.String("cause", ge.Cause.String()),
			zap.Error(ge),
		)
		return nil, ge
	}

	s.logger.Info("summary generated",
		zap.String("provider", s.completer.Name()),
		zap.Int("adviser_actions", len(result.AdviserActions)),
		zap.Int("client_actions", len(result.ClientActions)),
	)
	return result, nil
}

func (s *Service) generate(ctx context.Context, transcript string) (*entities.StructuredSummary, error) {
	prompt, err := s.prompts.Load(ctx)
	if err != nil {
		return nil, ai.NewError(ai.CausePromptLoad, s.completer.Name(), op, err)
	}

	completion, err := s.completer.Complete(ctx, ai.CompletionRequest{
		System:      prompt,
		Prompt:      transcript,
		MaxTokens:   s.maxTokens,
		Temperature: 0,
		Schema:      Schema,
		SchemaName:  "meeting_summary",
	})
	if err != nil {
		return nil, err
	}

	if err := ai.CheckCompletion(s.completer.Name(), op, completion); err != nil {
		return nil, err
	}

	result, err := parseStructuredSummary(completion.Text)
	if err != nil {
		return nil, ai.NewError(ai.CauseMalformedResponse, s.completer.Name(), op, err)
	}
	return result, nil
}
