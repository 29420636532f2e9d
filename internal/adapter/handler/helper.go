package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/client-meetings/errors"
	"github.com/johnquangdev/client-meetings/internal/adapter/dto/common"
	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/internal/usecase/actions"
	"github.com/johnquangdev/client-meetings/internal/usecase/meeting"
	"github.com/johnquangdev/client-meetings/pkg/ai"
	"github.com/johnquangdev/client-meetings/pkg/reqcontext"
	customValidator "github.com/johnquangdev/client-meetings/pkg/validator"
)

// getRequestID reads the id set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// RequestContext copies the request id onto the request context so the
// usecase layer can tag its logs with it
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := reqcontext.Begin(c.Request().Context(), getRequestID(c))
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// bindAndValidate decodes the body into req and runs struct validation
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload()
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrValidationFailed(customValidator.Describe(err))
	}
	return nil
}

// ToAppError maps use case errors onto the HTTP error taxonomy
func ToAppError(err error) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	var httpErr *echo.HTTPError
	if stdErrors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusNotFound:
			return errors.ErrNotFound("Route")
		case http.StatusBadRequest:
			return errors.ErrInvalidPayload()
		case http.StatusMethodNotAllowed:
			return errors.ErrMethodNotAllowed()
		default:
			if httpErr.Code >= http.StatusInternalServerError {
				return errors.ErrInternal(err)
			}
			msg := http.StatusText(httpErr.Code)
			if s, ok := httpErr.Message.(string); ok && s != "" {
				msg = s
			}
			appErr := errors.ErrInvalidArgument(msg)
			appErr.Raw = err
			appErr.HTTPCode = httpErr.Code
			return appErr
		}
	}

	var verrs validator.ValidationErrors
	if stdErrors.As(err, &verrs) {
		return errors.ErrValidationFailed(customValidator.Describe(err))
	}

	var genErr *ai.GenerationError
	if stdErrors.As(err, &genErr) {
		if genErr.Op == "transcription" {
			return errors.ErrAITranscriptionFailed(err)
		}
		return errors.ErrAIServiceFailed(err)
	}

	var saveErr *actions.SaveError
	if stdErrors.As(err, &saveErr) {
		return errors.ErrStorageFailed("save", err)
	}

	var cfgErr *meeting.EmailConfigError
	if stdErrors.As(err, &cfgErr) {
		return errors.ErrEmailNotConfigured(err)
	}

	switch {
	case stdErrors.Is(err, entities.ErrEmptyTranscript):
		return errors.ErrValidationFailed("transcription is required")
	case stdErrors.Is(err, entities.ErrMeetingNotFound):
		return errors.ErrNotFound("Meeting")
	case stdErrors.Is(err, entities.ErrReportNotFound):
		return errors.ErrNotFound("Discovery report")
	}

	return errors.ErrInternal(err)
}

// ErrorHandler renders every error returned by a handler or raised by
// routing. Raw causes are logged and never written to the response.
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		appErr := ToAppError(err)
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Int("status", appErr.HTTPCode),
			zap.String("app_code", appErr.Code.String()),
		}
		if appErr.Raw != nil {
			fields = append(fields, zap.Error(appErr.Raw))
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}

		body := common.ErrorResponse{
			Code:    appErr.Code.String(),
			Message: appErr.Message,
			Details: appErr.Details,
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(appErr.HTTPCode)
		} else {
			writeErr = c.JSON(appErr.HTTPCode, body)
		}
		if writeErr != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}
