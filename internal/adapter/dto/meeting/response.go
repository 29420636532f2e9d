package meeting

import (
	"time"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
)

// ProcessMeetingResponse is returned by POST /api/meetings/process
type ProcessMeetingResponse struct {
	Transcription  string                      `json:"transcription"`
	Summary        string                      `json:"summary"`
	MeetingID      string                      `json:"meetingId"`
	MeetingDate    string                      `json:"meetingDate"`
	StructuredData *entities.StructuredSummary `json:"structuredData"`
	ActionsSaved   bool                        `json:"actionsSaved"`
}

// DiscoveryReportResponse carries the four report sections at the top level
type DiscoveryReportResponse struct {
	entities.DiscoveryReport
	ClientID    string    `json:"clientId"`
	MeetingID   string    `json:"meetingId"`
	MeetingDate string    `json:"meetingDate"`
	MeetingType string    `json:"meetingType"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// SendEmailResponse is returned by the send-email route
type SendEmailResponse struct {
	Success bool   `json:"success"`
	EmailID string `json:"emailId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Provider    string `json:"provider"`
	NoteStore   string `json:"noteStore"`
}
