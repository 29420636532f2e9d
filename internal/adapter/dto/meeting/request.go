package meeting

import "github.com/johnquangdev/client-meetings/internal/domain/entities"

// ProcessMeetingRequest is the body of POST /api/meetings/process
type ProcessMeetingRequest struct {
	ClientID     string `json:"clientId" validate:"required"`
	MeetingType  string `json:"meetingType" validate:"required"`
	Duration     int    `json:"duration" validate:"min=0"`
	RecordingURL string `json:"recordingUrl,omitempty" validate:"omitempty,url"`
}

// ReportSection is a titled block of report text
type ReportSection struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// SaveMeetingRequest is the body of POST /api/meetings/save
type SaveMeetingRequest struct {
	ClientID       string          `json:"clientId" validate:"required"`
	MeetingID      string          `json:"meetingId" validate:"required"`
	MeetingType    string          `json:"meetingType" validate:"required"`
	Date           string          `json:"date" validate:"required"`
	Summary        string          `json:"summary"`
	Transcription  string          `json:"transcription"`
	HasAudio       bool            `json:"hasAudio"`
	ClientActions  []string        `json:"clientActions,omitempty"`
	AdvisorActions []string        `json:"advisorActions,omitempty"`
	ReportSections []ReportSection `json:"reportSections,omitempty" validate:"omitempty,dive"`
}

// DiscoveryReportRequest is the body of POST /api/meetings/discovery-report
type DiscoveryReportRequest struct {
	ClientID      string `json:"clientId" validate:"required"`
	MeetingID     string `json:"meetingId" validate:"required"`
	Transcription string `json:"transcription" validate:"required"`
	MeetingDate   string `json:"meetingDate" validate:"required"`
	MeetingType   string `json:"meetingType" validate:"required"`
}

// SendEmailRequest is the body of POST /api/meetings/:clientId/:meetingId/send-email.
// The recipient is only checked for presence here; address checks belong
// to the email dispatcher.
type SendEmailRequest struct {
	RecipientEmail       string `json:"recipientEmail" validate:"required"`
	ClientName           string `json:"clientName" validate:"required"`
	AdvisorName          string `json:"advisorName" validate:"required"`
	IncludeTranscription bool   `json:"includeTranscription"`
	IncludeReport        bool   `json:"includeReport"`
}

// ToNote builds the stored note from a save request
func (r *SaveMeetingRequest) ToNote() *entities.MeetingNote {
	note := &entities.MeetingNote{
		ID:             r.MeetingID,
		Date:           r.Date,
		Type:           r.MeetingType,
		Summary:        r.Summary,
		Transcription:  r.Transcription,
		HasAudio:       r.HasAudio,
		ClientActions:  r.ClientActions,
		AdvisorActions: r.AdvisorActions,
	}
	for _, s := range r.ReportSections {
		note.ReportSections = append(note.ReportSections, entities.ReportSection{Title: s.Title, Content: s.Content})
	}
	return note
}
