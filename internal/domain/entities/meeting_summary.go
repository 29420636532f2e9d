package entities

// StructuredSummary is the constrained JSON returned by the summary model
type StructuredSummary struct {
	MeetingSummary string   `json:"meeting_summary"`
	AdviserActions []string `json:"adviser_actions"`
	ClientActions  []string `json:"client_actions"`
}
