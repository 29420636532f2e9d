package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveGeneration("summary", time.Second, true)
		m.ObserveWrite("actions", false)
		m.ObserveEmail("meeting_summary", true)
	})
}

func TestObserve(t *testing.T) {
	m := New()

	m.ObserveGeneration("summary", 2*time.Second, true)
	m.ObserveGeneration("summary", time.Second, false)
	m.ObserveWrite("actions", false)
	m.ObserveEmail("discovery_report", true)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.aiGenerations.WithLabelValues("summary", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.aiGenerations.WithLabelValues("summary", OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.fileWrites.WithLabelValues("actions", OutcomeFailure)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.emailsSent.WithLabelValues("discovery_report", OutcomeSuccess)))
}

func TestMiddlewareAndHandler(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/meetings/:clientId", func(c echo.Context) error {
		return c.JSON(http.StatusOK, []string{})
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/meetings/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodGet, "/api/meetings/:clientId", "200")))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "client_meetings_http_requests_total"))
}

type statusError struct{ code int }

func (e statusError) Error() string { return http.StatusText(e.code) }

func TestMiddlewareRecordsRenderedErrorStatus(t *testing.T) {
	m := New()
	e := echo.New()
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var se statusError
		if errors.As(err, &se) {
			_ = c.JSON(se.code, map[string]string{"error": se.Error()})
			return
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
	e.Use(m.Middleware())
	e.DELETE("/api/meetings/:clientId/:meetingId", func(c echo.Context) error {
		return statusError{code: http.StatusNotFound}
	})
	e.POST("/api/meetings/process", func(c echo.Context) error {
		return statusError{code: http.StatusBadRequest}
	})
	e.GET("/boom", func(c echo.Context) error {
		return errors.New("boom")
	})

	cases := []struct {
		method, target, route, status string
		code                          int
	}{
		{http.MethodDelete, "/api/meetings/1/missing", "/api/meetings/:clientId/:meetingId", "404", http.StatusNotFound},
		{http.MethodPost, "/api/meetings/process", "/api/meetings/process", "400", http.StatusBadRequest},
		{http.MethodGet, "/boom", "/boom", "500", http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.target, nil))
		assert.Equal(t, tc.code, rec.Code, tc.target)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(tc.method, tc.route, tc.status)), tc.target)
		assert.Equal(t, 0.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(tc.method, tc.route, "200")), tc.target)
	}
	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodDelete, "/api/meetings/:clientId/:meetingId", "500")))
}
