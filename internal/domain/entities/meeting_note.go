package entities

// MeetingNote is a saved record of one client meeting.
// Notes are appended or removed, never edited.
type MeetingNote struct {
	ID             string          `json:"id"`
	Date           string          `json:"date"`
	Type           string          `json:"type"`
	Summary        string          `json:"summary"`
	Transcription  string          `json:"transcription"`
	HasAudio       bool            `json:"hasAudio"`
	ClientActions  []string        `json:"clientActions,omitempty"`
	AdvisorActions []string        `json:"advisorActions,omitempty"`
	ReportSections []ReportSection `json:"reportSections,omitempty"`
}

// ReportSection is a named block of report text attached to a note
type ReportSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
