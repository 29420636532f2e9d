package handler

import (
	"context"
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/client-meetings/errors"
	dto "github.com/johnquangdev/client-meetings/internal/adapter/dto/meeting"
	"github.com/johnquangdev/client-meetings/internal/adapter/presenter"
	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/internal/usecase/email"
	meetingUsecase "github.com/johnquangdev/client-meetings/internal/usecase/meeting"
)

// MeetingService is the use case surface the meeting handler depends on
type MeetingService interface {
	Process(ctx context.Context, in meetingUsecase.ProcessInput) (*meetingUsecase.ProcessResult, error)
	SaveNote(ctx context.Context, clientID string, note *entities.MeetingNote) (*entities.MeetingNote, error)
	ListNotes(ctx context.Context, clientID string) ([]*entities.MeetingNote, error)
	ListAllNotes(ctx context.Context) (map[string][]*entities.MeetingNote, error)
	DeleteNote(ctx context.Context, clientID, meetingID string) error
	GenerateDiscoveryReport(ctx context.Context, in meetingUsecase.ReportInput) (*entities.StoredDiscoveryReport, error)
	GetDiscoveryReport(ctx context.Context, clientID, meetingID string) (*entities.StoredDiscoveryReport, error)
	SendEmail(ctx context.Context, in meetingUsecase.EmailInput) (email.Result, error)
}

// Meeting handles meeting-related HTTP requests
type Meeting struct {
	svc    MeetingService
	logger *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(svc MeetingService, logger *zap.Logger) *Meeting {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Meeting{svc: svc, logger: logger}
}

// notFound attaches the path ids to a missing meeting or report
func notFound(err error, clientID, meetingID string) error {
	switch {
	case stdErrors.Is(err, entities.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(clientID, meetingID)
	case stdErrors.Is(err, entities.ErrReportNotFound):
		return errors.ErrReportNotFound(clientID, meetingID)
	}
	return err
}

// ListAll handles GET /api/meetings
// @Summary      List all meeting notes
// @Description  Returns every client's meeting notes keyed by client id, most recent first
// @Tags         Meetings
// @Produce      json
// @Success      200  {object}  map[string][]entities.MeetingNote
// @Failure      500  {object}  common.ErrorResponse
// @Router       /api/meetings [get]
func (h *Meeting) ListAll(c echo.Context) error {
	all, err := h.svc.ListAllNotes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, all)
}

// ListByClient handles GET /api/meetings/:clientId
// @Summary      List a client's meeting notes
// @Tags         Meetings
// @Produce      json
// @Param        clientId  path      string  true  "Client ID"
// @Success      200       {array}   entities.MeetingNote
// @Failure      500       {object}  common.ErrorResponse
// @Router       /api/meetings/{clientId} [get]
func (h *Meeting) ListByClient(c echo.Context) error {
	notes, err := h.svc.ListNotes(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}

// Process handles POST /api/meetings/process
// @Summary      Process a meeting transcript
// @Description  Loads the transcript, generates a structured summary and saves the action items
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.ProcessMeetingRequest  true  "Meeting to process"
// @Success      200      {object}  meeting.ProcessMeetingResponse
// @Failure      400      {object}  common.ErrorResponse  "Validation failed"
// @Failure      502      {object}  common.ErrorResponse  "AI service error"
// @Router       /api/meetings/process [post]
func (h *Meeting) Process(c echo.Context) error {
	var req dto.ProcessMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.svc.Process(c.Request().Context(), meetingUsecase.ProcessInput{
		ClientID:     req.ClientID,
		MeetingType:  req.MeetingType,
		Duration:     req.Duration,
		RecordingURL: req.RecordingURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, presenter.ToProcessMeetingResponse(res))
}

// Save handles POST /api/meetings/save
// @Summary      Save a meeting note
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.SaveMeetingRequest  true  "Note to save"
// @Success      200      {object}  entities.MeetingNote
// @Failure      400      {object}  common.ErrorResponse
// @Router       /api/meetings/save [post]
func (h *Meeting) Save(c echo.Context) error {
	var req dto.SaveMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	note, err := h.svc.SaveNote(c.Request().Context(), req.ClientID, req.ToNote())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

// Delete handles DELETE /api/meetings/:clientId/:meetingId
// @Summary      Delete a meeting note
// @Tags         Meetings
// @Param        clientId   path  string  true  "Client ID"
// @Param        meetingId  path  string  true  "Meeting ID"
// @Success      204
// @Failure      404  {object}  common.ErrorResponse
// @Router       /api/meetings/{clientId}/{meetingId} [delete]
func (h *Meeting) Delete(c echo.Context) error {
	clientID, meetingID := c.Param("clientId"), c.Param("meetingId")
	if err := h.svc.DeleteNote(c.Request().Context(), clientID, meetingID); err != nil {
		return notFound(err, clientID, meetingID)
	}
	return c.NoContent(http.StatusNoContent)
}

// GenerateDiscoveryReport handles POST /api/meetings/discovery-report
// @Summary      Generate a discovery report
// @Description  Runs the four report sections concurrently and saves the result next to the meeting's action items
// @Tags         Reports
// @Accept       json
// @Produce      json
// @Param        request  body      meeting.DiscoveryReportRequest  true  "Meeting transcript"
// @Success      200      {object}  meeting.DiscoveryReportResponse
// @Failure      400      {object}  common.ErrorResponse
// @Failure      500      {object}  common.ErrorResponse  "Report could not be saved"
// @Failure      502      {object}  common.ErrorResponse  "AI service error"
// @Router       /api/meetings/discovery-report [post]
func (h *Meeting) GenerateDiscoveryReport(c echo.Context) error {
	var req dto.DiscoveryReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	stored, err := h.svc.GenerateDiscoveryReport(c.Request().Context(), meetingUsecase.ReportInput{
		ClientID:      req.ClientID,
		MeetingID:     req.MeetingID,
		MeetingDate:   req.MeetingDate,
		MeetingType:   req.MeetingType,
		Transcription: req.Transcription,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, presenter.ToDiscoveryReportResponse(stored))
}

// GetDiscoveryReport handles GET /api/meetings/:clientId/:meetingId/discovery-report
// @Summary      Get a stored discovery report
// @Tags         Reports
// @Produce      json
// @Param        clientId   path      string  true  "Client ID"
// @Param        meetingId  path      string  true  "Meeting ID"
// @Success      200        {object}  meeting.DiscoveryReportResponse
// @Failure      404        {object}  common.ErrorResponse
// @Router       /api/meetings/{clientId}/{meetingId}/discovery-report [get]
func (h *Meeting) GetDiscoveryReport(c echo.Context) error {
	clientID, meetingID := c.Param("clientId"), c.Param("meetingId")
	stored, err := h.svc.GetDiscoveryReport(c.Request().Context(), clientID, meetingID)
	if err != nil {
		return notFound(err, clientID, meetingID)
	}
	return c.JSON(http.StatusOK, presenter.ToDiscoveryReportResponse(stored))
}

// SendEmail handles POST /api/meetings/:clientId/:meetingId/send-email
// @Summary      Email a meeting summary or discovery report
// @Description  Sends the discovery report when includeReport is set and a report is stored, otherwise the meeting summary
// @Tags         Email
// @Accept       json
// @Produce      json
// @Param        clientId   path      string                    true  "Client ID"
// @Param        meetingId  path      string                    true  "Meeting ID"
// @Param        request    body      meeting.SendEmailRequest  true  "Recipient and options"
// @Success      200        {object}  meeting.SendEmailResponse
// @Failure      404        {object}  common.ErrorResponse
// @Failure      500        {object}  meeting.SendEmailResponse  "Email could not be sent"
// @Router       /api/meetings/{clientId}/{meetingId}/send-email [post]
func (h *Meeting) SendEmail(c echo.Context) error {
	clientID, meetingID := c.Param("clientId"), c.Param("meetingId")

	var req dto.SendEmailRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.svc.SendEmail(c.Request().Context(), meetingUsecase.EmailInput{
		ClientID:             clientID,
		MeetingID:            meetingID,
		RecipientEmail:       req.RecipientEmail,
		ClientName:           req.ClientName,
		AdvisorName:          req.AdvisorName,
		IncludeTranscription: req.IncludeTranscription,
		IncludeReport:        req.IncludeReport,
	})
	if err != nil {
		return notFound(err, clientID, meetingID)
	}

	body := presenter.ToSendEmailResponse(res)
	if !res.Success {
		h.logger.Warn("email not sent",
			zap.String("client_id", clientID),
			zap.String("meeting_id", meetingID),
			zap.String("reason", res.Error),
		)
		return c.JSON(http.StatusInternalServerError, body)
	}
	return c.JSON(http.StatusOK, body)
}
