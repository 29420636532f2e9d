package entities

import "errors"

// Domain errors
var (
	ErrMeetingNotFound = errors.New("meeting not found")
	ErrReportNotFound  = errors.New("discovery report not found")
	ErrEmptyTranscript = errors.New("transcript is empty")
)
