package entities

import "github.com/google/uuid"

// ActionItemStatus is the lifecycle state of an action item
type ActionItemStatus string

const (
	ActionItemStatusPending   ActionItemStatus = "pending"
	ActionItemStatusCompleted ActionItemStatus = "completed"
)

// ActionItem is a follow-up task extracted from a meeting transcript
type ActionItem struct {
	ID          string           `json:"id"`
	Text        string           `json:"text"`
	Status      ActionItemStatus `json:"status"`
	MeetingDate string           `json:"meetingDate"`
	MeetingID   string           `json:"meetingId"`
}

// NewActionItem creates a pending action item with a fresh identifier
func NewActionItem(text, meetingID, meetingDate string) ActionItem {
	return ActionItem{
		ID:          uuid.NewString(),
		Text:        text,
		Status:      ActionItemStatusPending,
		MeetingDate: meetingDate,
		MeetingID:   meetingID,
	}
}

// ActionItemFile is the on-disk envelope for one list of action items
type ActionItemFile struct {
	ClientID    string       `json:"clientId"`
	MeetingID   string       `json:"meetingId"`
	MeetingDate string       `json:"meetingDate"`
	Actions     []ActionItem `json:"actions"`
}
