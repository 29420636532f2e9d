package summary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
)

var requiredFields = []string{"meeting_summary", "adviser_actions", "client_actions"}

// parseStructuredSummary decodes the model output. The provider is asked to
// constrain the output, but a response missing any required field is still
// rejected so callers never see a partial object.
func parseStructuredSummary(content string) (*entities.StructuredSummary, error) {
	content = extractJSON(content)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &fields); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	for _, name := range requiredFields {
		raw, ok := fields[name]
		if !ok || string(raw) == "null" {
			return nil, fmt.Errorf("missing %s in response", name)
		}
	}

	var result entities.StructuredSummary
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("failed to decode summary fields: %w", err)
	}
	return &result, nil
}

// extractJSON strips a markdown code fence if the model added one
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}

	return strings.TrimSpace(content)
}
