// Package email renders meeting summaries and discovery reports and hands
// them to a transactional email provider.
package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/pkg/config"
	"github.com/johnquangdev/client-meetings/pkg/mailer"
)

// Failure reasons returned in Result.Error
const (
	ReasonInvalidRecipient = "invalid recipient email address"
	ReasonNotConfigured    = "email service not configured"
)

const displayDateLayout = "Monday, January 2, 2006"

//go:embed templates/*
var templateFS embed.FS

var (
	htmlTemplates = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
)

// Sender delivers a rendered message and returns the provider message id
type Sender interface {
	Send(ctx context.Context, msg *mailer.Message) (string, error)
}

// Params is everything needed to render either email kind
type Params struct {
	RecipientEmail string
	ClientName     string
	AdvisorName    string
	MeetingType    string
	MeetingDate    string
	Summary        string
	Transcription  string
	ClientActions  []string
	AdvisorActions []string
	Report         *entities.DiscoveryReport
}

// Result is the outcome of a send. Callers check Success.
type Result struct {
	Success bool   `json:"success"`
	EmailID string `json:"emailId,omitempty"`
	Error   string `json:"error,omitempty"`
}

func failure(reason string) Result {
	return Result{Success: false, Error: reason}
}

// Dispatcher renders and sends meeting emails
type Dispatcher struct {
	cfg    config.EmailConfig
	sender Sender
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher. sender may be nil when no API key is
// configured; sends then fail with ReasonNotConfigured.
func NewDispatcher(cfg config.EmailConfig, sender Sender, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{cfg: cfg, sender: sender, logger: logger}
}

type view struct {
	Params
	Subject     string
	DisplayDate string
	Sections    []entities.ReportSection
}

// SendMeetingSummary sends the meeting summary email
func (d *Dispatcher) SendMeetingSummary(ctx context.Context, p Params) Result {
	date := DisplayDate(p.MeetingDate)
	subject := fmt.Sprintf("%s Meeting Summary - %s - %s", meetingLabel(p.MeetingType), p.ClientName, date)
	return d.send(ctx, "meeting_summary", p, subject, nil)
}

// SendDiscoveryReport sends the discovery report email
func (d *Dispatcher) SendDiscoveryReport(ctx context.Context, p Params) Result {
	if p.Report == nil {
		return failure("discovery report is required")
	}
	date := DisplayDate(p.MeetingDate)
	subject := fmt.Sprintf("Discovery Report - %s - %s", p.ClientName, date)
	return d.send(ctx, "discovery_report", p, subject, p.Report.Sections())
}

func (d *Dispatcher) send(ctx context.Context, kind string, p Params, subject string, sections []entities.ReportSection) Result {
	if !strings.Contains(p.RecipientEmail, "@") {
		d.logger.Warn("rejected email with invalid recipient", zap.String("kind", kind))
		return failure(ReasonInvalidRecipient)
	}
	if d.cfg.APIKey == "" || d.sender == nil {
		d.logger.Warn("email service not configured", zap.String("kind", kind))
		return failure(ReasonNotConfigured)
	}

	v := view{Params: p, Subject: subject, DisplayDate: DisplayDate(p.MeetingDate), Sections: sections}
	v.MeetingType = meetingLabel(p.MeetingType)

	html, text, err := render(kind, v)
	if err != nil {
		d.logger.Error("failed to render email", zap.String("kind", kind), zap.Error(err))
		return failure(err.Error())
	}

	id, err := d.sender.Send(ctx, &mailer.Message{
		From:    d.from(),
		To:      []string{p.RecipientEmail},
		Subject: subject,
		HTML:    html,
		Text:    text,
	})
	if err != nil {
		d.logger.Error("failed to send email", zap.String("kind", kind), zap.Error(err))
		return failure(err.Error())
	}

	d.logger.Info("email sent", zap.String("kind", kind), zap.String("email_id", id))
	return Result{Success: true, EmailID: id}
}

func (d *Dispatcher) from() string {
	if d.cfg.SenderName == "" {
		return d.cfg.SenderEmail
	}
	return fmt.Sprintf("%s <%s>", d.cfg.SenderName, d.cfg.SenderEmail)
}

func render(kind string, v view) (string, string, error) {
	var html, text bytes.Buffer
	if err := htmlTemplates.ExecuteTemplate(&html, kind+".html", v); err != nil {
		return "", "", fmt.Errorf("render %s html: %w", kind, err)
	}
	if err := textTemplates.ExecuteTemplate(&text, kind+".txt", v); err != nil {
		return "", "", fmt.Errorf("render %s text: %w", kind, err)
	}
	return html.String(), text.String(), nil
}

// DisplayDate formats a meeting date like "Tuesday, March 5, 2024". Values
// that do not parse are returned unchanged.
func DisplayDate(meetingDate string) string {
	raw := strings.TrimSpace(meetingDate)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(displayDateLayout)
		}
	}
	return raw
}

// meetingLabel title-cases a meeting type for display
func meetingLabel(meetingType string) string {
	words := strings.Fields(meetingType)
	if len(words) == 0 {
		return "Client"
	}
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
