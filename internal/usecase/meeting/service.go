// Package meeting orchestrates transcript processing, note storage,
// discovery reports and email delivery for the HTTP layer.
package meeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/internal/infrastructure/metrics"
	"github.com/johnquangdev/client-meetings/internal/usecase/actions"
	"github.com/johnquangdev/client-meetings/internal/usecase/email"
	"github.com/johnquangdev/client-meetings/pkg/ai"
	"github.com/johnquangdev/client-meetings/pkg/config"
	"github.com/johnquangdev/client-meetings/pkg/reqcontext"
)

// Summarizer produces a structured summary from a transcript
type Summarizer interface {
	Generate(ctx context.Context, transcript string) (*entities.StructuredSummary, error)
}

// ReportGenerator produces a discovery report from a transcript
type ReportGenerator interface {
	Generate(ctx context.Context, transcript string) (*entities.DiscoveryReport, error)
}

// FileWriter persists action items and reports for a meeting
type FileWriter interface {
	Save(ctx context.Context, m actions.Meeting, clientActions, adviserActions []string) (*actions.SaveResult, error)
	SaveReport(ctx context.Context, m actions.Meeting, report *entities.DiscoveryReport) (*entities.StoredDiscoveryReport, error)
	LoadReport(ctx context.Context, m actions.Meeting) (*entities.StoredDiscoveryReport, error)
}

// NoteStore keeps meeting notes per client
type NoteStore interface {
	Save(ctx context.Context, clientID string, note *entities.MeetingNote) error
	Get(ctx context.Context, clientID string) ([]*entities.MeetingNote, error)
	GetAll(ctx context.Context) (map[string][]*entities.MeetingNote, error)
	Find(ctx context.Context, clientID, meetingID string) (*entities.MeetingNote, error)
	Delete(ctx context.Context, clientID, meetingID string) (bool, error)
}

// TranscriptSource supplies the transcript when no recording is given
type TranscriptSource interface {
	Load(ctx context.Context) (string, error)
}

// Transcriber turns a recording URL into text
type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (string, error)
}

// Mailer sends meeting emails
type Mailer interface {
	SendMeetingSummary(ctx context.Context, p email.Params) email.Result
	SendDiscoveryReport(ctx context.Context, p email.Params) email.Result
}

// Deps groups the collaborators of Service
type Deps struct {
	Summarizer  Summarizer
	Reports     ReportGenerator
	Files       FileWriter
	Notes       NoteStore
	Transcripts TranscriptSource
	Transcriber Transcriber
	Mailer      Mailer
	EmailConfig config.EmailConfig
	Metrics     *metrics.Metrics
	Logger      *zap.Logger
}

// Service implements the meeting operations
type Service struct {
	summarizer  Summarizer
	reports     ReportGenerator
	files       FileWriter
	notes       NoteStore
	transcripts TranscriptSource
	transcriber Transcriber
	mailer      Mailer
	emailCfg    config.EmailConfig
	metrics     *metrics.Metrics
	logger      *zap.Logger

	now   func() time.Time
	newID func() string
}

// NewService creates a meeting service
func NewService(d Deps) *Service {
	logger := d.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		summarizer:  d.Summarizer,
		reports:     d.Reports,
		files:       d.Files,
		notes:       d.Notes,
		transcripts: d.Transcripts,
		transcriber: d.Transcriber,
		mailer:      d.Mailer,
		emailCfg:    d.EmailConfig,
		metrics:     d.Metrics,
		logger:      logger,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// ProcessInput describes a meeting to summarize
type ProcessInput struct {
	ClientID     string
	MeetingType  string
	Duration     int
	RecordingURL string
}

// ProcessResult is the outcome of Process
type ProcessResult struct {
	MeetingID      string
	MeetingDate    string
	Transcription  string
	Summary        string
	StructuredData *entities.StructuredSummary
	ActionsSaved   bool
}

// Process loads the transcript, generates the structured summary and saves
// the action items. Saving is best effort: a failure is logged and the
// summary is still returned.
func (s *Service) Process(ctx context.Context, in ProcessInput) (*ProcessResult, error) {
	ctx = reqcontext.WithMeeting(reqcontext.WithOperation(ctx, "process"), in.ClientID, "")
	transcript, err := s.loadTranscript(ctx, in.RecordingURL)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	structured, err := s.summarizer.Generate(ctx, transcript)
	s.metrics.ObserveGeneration("summary", time.Since(start), err == nil)
	if err != nil {
		return nil, err
	}

	res := &ProcessResult{
		MeetingID:      s.newID(),
		MeetingDate:    s.now().UTC().Format(time.RFC3339),
		Transcription:  transcript,
		Summary:        structured.MeetingSummary,
		StructuredData: structured,
	}

	ctx = reqcontext.WithMeeting(ctx, "", res.MeetingID)
	log := reqcontext.Logger(ctx, s.logger)

	m := actions.Meeting{ClientID: in.ClientID, ID: res.MeetingID, Date: res.MeetingDate, Type: in.MeetingType}
	if _, err := s.files.Save(ctx, m, structured.ClientActions, structured.AdviserActions); err != nil {
		s.metrics.ObserveWrite("actions", false)
		log.Error("failed to save action items", zap.Error(err))
	} else {
		s.metrics.ObserveWrite("actions", true)
		res.ActionsSaved = true
	}

	log.Info("meeting processed",
		zap.String("meeting_type", in.MeetingType),
		zap.Int("duration", in.Duration),
	)
	return res, nil
}

func (s *Service) loadTranscript(ctx context.Context, recordingURL string) (string, error) {
	if recordingURL != "" {
		if s.transcriber != nil {
			text, err := s.transcriber.Transcribe(ctx, recordingURL)
			if err != nil {
				return "", ai.NewError(ai.CauseTransport, "assemblyai", "transcription", err)
			}
			return text, nil
		}
		reqcontext.Logger(ctx, s.logger).Warn("recording url given but no transcriber configured, using mock transcript")
	}

	text, err := s.transcripts.Load(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load transcript: %w", err)
	}
	return text, nil
}

// SaveNote stores note for a client and returns it
func (s *Service) SaveNote(ctx context.Context, clientID string, note *entities.MeetingNote) (*entities.MeetingNote, error) {
	if err := s.notes.Save(ctx, clientID, note); err != nil {
		return nil, err
	}
	return note, nil
}

// ListNotes returns one client's notes, most recent first
func (s *Service) ListNotes(ctx context.Context, clientID string) ([]*entities.MeetingNote, error) {
	return s.notes.Get(ctx, clientID)
}

// ListAllNotes returns every client's notes
func (s *Service) ListAllNotes(ctx context.Context) (map[string][]*entities.MeetingNote, error) {
	return s.notes.GetAll(ctx)
}

// DeleteNote removes a note, returning entities.ErrMeetingNotFound when absent
func (s *Service) DeleteNote(ctx context.Context, clientID, meetingID string) error {
	found, err := s.notes.Delete(ctx, clientID, meetingID)
	if err != nil {
		return err
	}
	if !found {
		return entities.ErrMeetingNotFound
	}
	return nil
}

// ReportInput identifies the meeting a report is generated for
type ReportInput struct {
	ClientID      string
	MeetingID     string
	MeetingDate   string
	MeetingType   string
	Transcription string
}

// GenerateDiscoveryReport generates and persists the report. Unlike Process,
// a persistence failure fails the call.
func (s *Service) GenerateDiscoveryReport(ctx context.Context, in ReportInput) (*entities.StoredDiscoveryReport, error) {
	ctx = reqcontext.WithMeeting(reqcontext.WithOperation(ctx, "discovery_report"), in.ClientID, in.MeetingID)
	start := time.Now()
	report, err := s.reports.Generate(ctx, in.Transcription)
	s.metrics.ObserveGeneration("report", time.Since(start), err == nil)
	if err != nil {
		return nil, err
	}

	stored, err := s.files.SaveReport(ctx, reportMeeting(in.ClientID, in.MeetingID, in.MeetingDate, in.MeetingType), report)
	s.metrics.ObserveWrite("report", err == nil)
	if err != nil {
		reqcontext.Logger(ctx, s.logger).Error("failed to save discovery report", zap.Error(err))
		return nil, err
	}
	return stored, nil
}

// GetDiscoveryReport reads the stored report for a saved meeting note
func (s *Service) GetDiscoveryReport(ctx context.Context, clientID, meetingID string) (*entities.StoredDiscoveryReport, error) {
	note, err := s.notes.Find(ctx, clientID, meetingID)
	if err != nil {
		return nil, err
	}
	return s.files.LoadReport(ctx, reportMeeting(clientID, note.ID, note.Date, note.Type))
}

func reportMeeting(clientID, meetingID, date, meetingType string) actions.Meeting {
	return actions.Meeting{ClientID: clientID, ID: meetingID, Date: date, Type: meetingType}
}

// EmailInput describes a send-email request
type EmailInput struct {
	ClientID             string
	MeetingID            string
	RecipientEmail       string
	ClientName           string
	AdvisorName          string
	IncludeTranscription bool
	IncludeReport        bool
}

// EmailConfigError reports email settings that fail validation
type EmailConfigError struct {
	Err error
}

func (e *EmailConfigError) Error() string {
	return "email service not configured: " + e.Err.Error()
}

func (e *EmailConfigError) Unwrap() error {
	return e.Err
}

// SendEmail emails a stored meeting note. With IncludeReport and a stored
// discovery report the report email is sent, otherwise the summary email.
// Dispatcher failures come back in the Result, not as an error.
func (s *Service) SendEmail(ctx context.Context, in EmailInput) (email.Result, error) {
	ctx = reqcontext.WithMeeting(reqcontext.WithOperation(ctx, "send_email"), in.ClientID, in.MeetingID)
	log := reqcontext.Logger(ctx, s.logger)

	note, err := s.notes.Find(ctx, in.ClientID, in.MeetingID)
	if err != nil {
		return email.Result{}, err
	}

	if err := email.ValidateConfig(s.emailCfg); err != nil {
		log.Warn("email configuration invalid", zap.Error(err))
		return email.Result{}, &EmailConfigError{Err: err}
	}

	p := email.Params{
		RecipientEmail: in.RecipientEmail,
		ClientName:     in.ClientName,
		AdvisorName:    in.AdvisorName,
		MeetingType:    note.Type,
		MeetingDate:    note.Date,
		Summary:        note.Summary,
		ClientActions:  note.ClientActions,
		AdvisorActions: note.AdvisorActions,
	}
	if in.IncludeTranscription {
		p.Transcription = note.Transcription
	}

	kind := "meeting_summary"
	if in.IncludeReport {
		stored, err := s.files.LoadReport(ctx, reportMeeting(in.ClientID, note.ID, note.Date, note.Type))
		switch {
		case err == nil:
			p.Report = &stored.Report
			kind = "discovery_report"
		case errors.Is(err, entities.ErrReportNotFound):
			log.Info("no stored discovery report, sending summary")
		default:
			return email.Result{}, err
		}
	}

	var res email.Result
	if p.Report != nil {
		res = s.mailer.SendDiscoveryReport(ctx, p)
	} else {
		res = s.mailer.SendMeetingSummary(ctx, p)
	}
	s.metrics.ObserveEmail(kind, res.Success)
	return res, nil
}
