// Package report builds the four-section discovery report from a meeting
// transcript.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/pkg/ai"
)

// Section identifies one part of the discovery report
type Section string

const (
	SectionRiskTolerance       Section = "risk_tolerance"
	SectionFactFind            Section = "fact_find"
	SectionCapacityForLoss     Section = "capacity_for_loss"
	SectionFinancialObjectives Section = "financial_objectives"
)

// Sections lists every section in report order
var Sections = []Section{
	SectionRiskTolerance,
	SectionFactFind,
	SectionCapacityForLoss,
	SectionFinancialObjectives,
}

type sectionSpec struct {
	title       string
	instruction string
	paragraphs  int
}

var sectionSpecs = map[Section]sectionSpec{
	SectionRiskTolerance: {
		title:       "Risk Tolerance",
		instruction: "Assess the client's attitude to investment risk. Cover their stated comfort with volatility, past investment experience, and any reactions to market falls they described.",
		paragraphs:  2,
	},
	SectionFactFind: {
		title:       "Fact Find",
		instruction: "Summarise the factual information gathered: personal circumstances, dependants, employment and income, assets, liabilities, existing pensions and protection.",
		paragraphs:  3,
	},
	SectionCapacityForLoss: {
		title:       "Capacity for Loss",
		instruction: "Evaluate how much the client could lose without a material impact on their standard of living, referring to emergency funds, income security and time horizon.",
		paragraphs:  2,
	},
	SectionFinancialObjectives: {
		title:       "Financial Objectives",
		instruction: "Set out the client's short, medium and long term financial goals with any target amounts or dates mentioned, in priority order.",
		paragraphs:  2,
	},
}

// Generator produces discovery reports
type Generator struct {
	completer ai.Completer
	maxTokens int
	logger    *zap.Logger
}

// NewGenerator creates a report generator
func NewGenerator(completer ai.Completer, maxTokens int, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{completer: completer, maxTokens: maxTokens, logger: logger}
}

// Generate runs all four section completions concurrently. The report is
// returned only when every section succeeds; the first failure cancels the
// remaining calls and is returned as an *ai.GenerationError naming the section.
func (g *Generator) Generate(ctx context.Context, transcript string) (*entities.DiscoveryReport, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, entities.ErrEmptyTranscript
	}

	start := time.Now()
	results := make([]string, len(Sections))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, section := range Sections {
		i, section := i, section
		eg.Go(func() error {
			text, err := g.generateSection(egCtx, section, transcript)
			if err != nil {
				return err
			}
			results[i] = text
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		ge := ai.AsGenerationError(g.completer.Name(), "report", err)
		g.logger.Error("discovery report generation failed",
			zap.String("provider", ge.Provider),
			zap.String("op", ge.Op),
			zap.String("cause", ge.Cause.String()),
			zap.Error(ge),
		)
		return nil, ge
	}

	g.logger.Info("discovery report generated",
		zap.String("provider", g.completer.Name()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &entities.DiscoveryReport{
		RiskTolerance:       results[0],
		FactFind:            results[1],
		CapacityForLoss:     results[2],
		FinancialObjectives: results[3],
	}, nil
}

func (g *Generator) generateSection(ctx context.Context, section Section, transcript string) (string, error) {
	op := "report:" + string(section)

	completion, err := g.completer.Complete(ctx, ai.CompletionRequest{
		Prompt:      BuildPrompt(section, transcript),
		MaxTokens:   g.maxTokens,
		Temperature: 0,
	})
	if err != nil {
		return "", ai.AsGenerationError(g.completer.Name(), op, err)
	}
	if err := ai.CheckCompletion(g.completer.Name(), op, completion); err != nil {
		return "", err
	}
	return strings.TrimSpace(completion.Text), nil
}

// BuildPrompt embeds the full transcript in the section's instruction
func BuildPrompt(section Section, transcript string) string {
	spec := sectionSpecs[section]
	return fmt.Sprintf(`You are preparing the %s section of a financial adviser's discovery report.

%s

Write no more than %d paragraphs of plain prose. Do not use headings, bullet points or markdown. Only use information stated in the transcript; if something was not discussed, say so.

Transcript:
%s`, spec.title, spec.instruction, spec.paragraphs, transcript)
}
