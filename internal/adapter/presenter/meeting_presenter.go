package presenter

import (
	dto "github.com/johnquangdev/client-meetings/internal/adapter/dto/meeting"
	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/internal/usecase/email"
	meetingUsecase "github.com/johnquangdev/client-meetings/internal/usecase/meeting"
)

// ToProcessMeetingResponse converts a process result to its response DTO
func ToProcessMeetingResponse(res *meetingUsecase.ProcessResult) *dto.ProcessMeetingResponse {
	if res == nil {
		return nil
	}
	return &dto.ProcessMeetingResponse{
		Transcription:  res.Transcription,
		Summary:        res.Summary,
		MeetingID:      res.MeetingID,
		MeetingDate:    res.MeetingDate,
		StructuredData: res.StructuredData,
		ActionsSaved:   res.ActionsSaved,
	}
}

// ToDiscoveryReportResponse flattens a stored report so the four sections
// sit at the top level of the response
func ToDiscoveryReportResponse(s *entities.StoredDiscoveryReport) *dto.DiscoveryReportResponse {
	if s == nil {
		return nil
	}
	return &dto.DiscoveryReportResponse{
		DiscoveryReport: s.Report,
		ClientID:        s.ClientID,
		MeetingID:       s.MeetingID,
		MeetingDate:     s.MeetingDate,
		MeetingType:     s.MeetingType,
		GeneratedAt:     s.GeneratedAt,
	}
}

// ToSendEmailResponse converts a dispatcher result
func ToSendEmailResponse(res email.Result) *dto.SendEmailResponse {
	return &dto.SendEmailResponse{Success: res.Success, EmailID: res.EmailID, Error: res.Error}
}
