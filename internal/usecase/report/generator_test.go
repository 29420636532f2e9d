package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/internal/testutil"
	"github.com/johnquangdev/client-meetings/pkg/ai"
)

// sectionOf recovers the section from a prompt built by BuildPrompt
func sectionOf(prompt string) Section {
	for _, s := range Sections {
		if strings.Contains(prompt, "the "+sectionSpecs[s].title+" section") {
			return s
		}
	}
	return ""
}

func TestGenerate(t *testing.T) {
	t.Run("assembles all four sections", func(t *testing.T) {
		fake := &testutil.FakeCompleter{Fn: func(_ context.Context, req ai.CompletionRequest) (*ai.Completion, error) {
			return &ai.Completion{Text: " text for " + string(sectionOf(req.Prompt)) + "\n", FinishReason: ai.FinishReasonStop}, nil
		}}
		gen := NewGenerator(fake, 2048, zaptest.NewLogger(t))

		got, err := gen.Generate(context.Background(), "Client: I am cautious.")
		require.NoError(t, err)
		assert.Equal(t, &entities.DiscoveryReport{
			RiskTolerance:       "text for risk_tolerance",
			FactFind:            "text for fact_find",
			CapacityForLoss:     "text for capacity_for_loss",
			FinancialObjectives: "text for financial_objectives",
		}, got)

		reqs := fake.Requests()
		require.Len(t, reqs, 4)
		for _, r := range reqs {
			assert.Contains(t, r.Prompt, "Client: I am cautious.")
			assert.Nil(t, r.Schema)
			assert.Equal(t, 2048, r.MaxTokens)
		}
	})

	t.Run("one failing section fails the report", func(t *testing.T) {
		fake := &testutil.FakeCompleter{Fn: func(_ context.Context, req ai.CompletionRequest) (*ai.Completion, error) {
			if sectionOf(req.Prompt) == SectionCapacityForLoss {
				return &ai.Completion{FinishReason: ai.FinishReasonSafety}, nil
			}
			return &ai.Completion{Text: "ok", FinishReason: ai.FinishReasonStop}, nil
		}}
		gen := NewGenerator(fake, 2048, zaptest.NewLogger(t))

		got, err := gen.Generate(context.Background(), "transcript")
		assert.Nil(t, got)
		require.Error(t, err)
		assert.ErrorIs(t, err, ai.ErrSafetyBlocked)

		var ge *ai.GenerationError
		require.True(t, errors.As(err, &ge))
		assert.Equal(t, "report:capacity_for_loss", ge.Op)
	})

	t.Run("transport failure", func(t *testing.T) {
		fake := &testutil.FakeCompleter{Fn: func(context.Context, ai.CompletionRequest) (*ai.Completion, error) {
			return nil, errors.New("connection refused")
		}}
		gen := NewGenerator(fake, 2048, zaptest.NewLogger(t))

		_, err := gen.Generate(context.Background(), "transcript")
		assert.ErrorIs(t, err, ai.ErrTransport)
	})

	t.Run("empty transcript", func(t *testing.T) {
		fake := testutil.StaticCompleter("x")
		_, err := NewGenerator(fake, 2048, nil).Generate(context.Background(), "")
		assert.ErrorIs(t, err, entities.ErrEmptyTranscript)
		assert.Empty(t, fake.Requests())
	})
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(SectionFactFind, "the transcript")
	assert.Contains(t, p, "Fact Find section")
	assert.Contains(t, p, "no more than 3 paragraphs")
	assert.True(t, strings.HasSuffix(p, "the transcript"))
}
