package ai

import (
	"errors"
	"fmt"
)

// Cause classifies why a generation failed
type Cause int

const (
	CauseUnknown Cause = iota
	CauseSafetyBlocked
	CauseTokenLimitReached
	CauseUnexpectedTermination
	CauseEmptyResponse
	CausePromptLoad
	CauseTransport
	CauseMalformedResponse
)

func (c Cause) String() string {
	switch c {
	case CauseSafetyBlocked:
		return "safety_blocked"
	case CauseTokenLimitReached:
		return "token_limit_reached"
	case CauseUnexpectedTermination:
		return "unexpected_termination"
	case CauseEmptyResponse:
		return "empty_response"
	case CausePromptLoad:
		return "prompt_load"
	case CauseTransport:
		return "transport"
	case CauseMalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against a GenerationError's cause
var (
	ErrSafetyBlocked         = &GenerationError{Cause: CauseSafetyBlocked}
	ErrTokenLimitReached     = &GenerationError{Cause: CauseTokenLimitReached}
	ErrUnexpectedTermination = &GenerationError{Cause: CauseUnexpectedTermination}
	ErrEmptyResponse         = &GenerationError{Cause: CauseEmptyResponse}
	ErrPromptLoad            = &GenerationError{Cause: CausePromptLoad}
	ErrTransport             = &GenerationError{Cause: CauseTransport}
	ErrMalformedResponse     = &GenerationError{Cause: CauseMalformedResponse}
)

// GenerationError is returned by every AI operation that fails
type GenerationError struct {
	Cause    Cause
	Provider string
	// Op names the operation, e.g. "summary" or "report:risk_tolerance".
	Op  string
	Err error
}

// NewError builds a GenerationError
func NewError(cause Cause, provider, op string, err error) *GenerationError {
	return &GenerationError{Cause: cause, Provider: provider, Op: op, Err: err}
}

func (e *GenerationError) Error() string {
	msg := fmt.Sprintf("ai %s", e.Cause)
	if e.Op != "" {
		msg = fmt.Sprintf("%s: %s", e.Op, msg)
	}
	if e.Provider != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Provider)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is matches any GenerationError with the same cause
func (e *GenerationError) Is(target error) bool {
	var t *GenerationError
	if !errors.As(target, &t) {
		return false
	}
	return t.Cause == e.Cause
}

// CauseOf reports the cause of err, or CauseUnknown when err is not a
// GenerationError.
func CauseOf(err error) Cause {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Cause
	}
	return CauseUnknown
}

// AsGenerationError wraps err as a transport failure unless it already
// carries a cause.
func AsGenerationError(provider, op string, err error) *GenerationError {
	var ge *GenerationError
	if errors.As(err, &ge) {
		out := *ge
		if out.Op == "" {
			out.Op = op
		}
		if out.Provider == "" {
			out.Provider = provider
		}
		return &out
	}
	return NewError(CauseTransport, provider, op, err)
}
