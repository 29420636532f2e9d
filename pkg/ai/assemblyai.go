package ai

import (
	"context"
	"fmt"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/client-meetings/pkg/config"
)

// AssemblyAIClient transcribes recorded meetings through the official SDK
type AssemblyAIClient struct {
	client   *aai.Client
	language string
}

// NewAssemblyAIClient creates an AssemblyAI client. It returns nil when no
// API key is configured so callers can fall back to another source.
func NewAssemblyAIClient(cfg *config.AssemblyAIConfig) *AssemblyAIClient {
	if cfg == nil || cfg.APIKey == "" {
		return nil
	}
	return &AssemblyAIClient{
		client:   aai.NewClient(cfg.APIKey),
		language: cfg.LanguageCode,
	}
}

// Transcribe submits an audio URL and blocks until the transcript is ready
func (c *AssemblyAIClient) Transcribe(ctx context.Context, audioURL string) (string, error) {
	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	if c.language != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(c.language)
	}

	transcript, err := c.client.Transcripts.TranscribeFromURL(ctx, strings.TrimSpace(audioURL), params)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcription failed: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		reason := "unknown error"
		if transcript.Error != nil {
			reason = *transcript.Error
		}
		return "", fmt.Errorf("assemblyai transcription failed: %s", reason)
	}

	if transcript.Text == nil || strings.TrimSpace(*transcript.Text) == "" {
		return "", fmt.Errorf("assemblyai returned an empty transcript")
	}
	return *transcript.Text, nil
}
