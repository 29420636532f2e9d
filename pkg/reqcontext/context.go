package reqcontext

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type KeyContext string

var (
	keyRequestID KeyContext = "request_id"
	keyOperation KeyContext = "operation"
	keyClientID  KeyContext = "client_id"
	keyMeetingID KeyContext = "meeting_id"
	keyStartTime KeyContext = "start_time"
)

// Metadata holds the per-request values carried through the usecase layer
type Metadata struct {
	RequestID string
	Operation string
	ClientID  string
	MeetingID string
	StartTime time.Time
}

// Begin marks the start of a request on ctx
func Begin(parent context.Context, requestID string) context.Context {
	ctx := context.WithValue(parent, keyRequestID, requestID)
	return context.WithValue(ctx, keyStartTime, time.Now())
}

// WithOperation names the usecase operation handling the request
func WithOperation(ctx context.Context, op string) context.Context {
	return context.WithValue(ctx, keyOperation, op)
}

// WithMeeting records the client and meeting the request works on.
// Empty values leave any earlier value in place.
func WithMeeting(ctx context.Context, clientID, meetingID string) context.Context {
	if clientID != "" {
		ctx = context.WithValue(ctx, keyClientID, clientID)
	}
	if meetingID != "" {
		ctx = context.WithValue(ctx, keyMeetingID, meetingID)
	}
	return ctx
}

func GetRequestID(ctx context.Context) string {
	return stringValue(ctx, keyRequestID)
}

func GetOperation(ctx context.Context) string {
	return stringValue(ctx, keyOperation)
}

func GetClientID(ctx context.Context) string {
	return stringValue(ctx, keyClientID)
}

func GetMeetingID(ctx context.Context) string {
	return stringValue(ctx, keyMeetingID)
}

// GetElapsed returns the time since Begin, or zero if Begin was never called
func GetElapsed(ctx context.Context) time.Duration {
	if t, ok := ctx.Value(keyStartTime).(time.Time); ok {
		return time.Since(t)
	}
	return 0
}

// GetMetadata collects every value set on ctx
func GetMetadata(ctx context.Context) Metadata {
	m := Metadata{
		RequestID: GetRequestID(ctx),
		Operation: GetOperation(ctx),
		ClientID:  GetClientID(ctx),
		MeetingID: GetMeetingID(ctx),
	}
	if t, ok := ctx.Value(keyStartTime).(time.Time); ok {
		m.StartTime = t
	}
	return m
}

// Fields returns zap fields for the values present on ctx
func Fields(ctx context.Context) []zap.Field {
	m := GetMetadata(ctx)
	fields := make([]zap.Field, 0, 5)
	if m.RequestID != "" {
		fields = append(fields, zap.String("request_id", m.RequestID))
	}
	if m.Operation != "" {
		fields = append(fields, zap.String("operation", m.Operation))
	}
	if m.ClientID != "" {
		fields = append(fields, zap.String("client_id", m.ClientID))
	}
	if m.MeetingID != "" {
		fields = append(fields, zap.String("meeting_id", m.MeetingID))
	}
	if !m.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", time.Since(m.StartTime)))
	}
	return fields
}

// Logger decorates logger with the request fields on ctx
func Logger(ctx context.Context, logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger.With(Fields(ctx)...)
}

func stringValue(ctx context.Context, key KeyContext) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(key).(string)
	return v
}
