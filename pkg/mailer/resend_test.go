package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResendSenderSend(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Adviser <adviser@example.com>", body["from"])
		assert.Equal(t, "Subject line", body["subject"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email-123"}`))
	}))
	defer ts.Close()

	s := NewResendSender("re_test")
	base, err := url.Parse(ts.URL + "/")
	require.NoError(t, err)
	s.client.BaseURL = base

	id, err := s.Send(context.Background(), &Message{
		From:    "Adviser <adviser@example.com>",
		To:      []string{"client@example.com"},
		Subject: "Subject line",
		HTML:    "<p>hi</p>",
		Text:    "hi",
	})
	require.NoError(t, err)
	assert.Equal(t, "email-123", id)
}

func TestResendSenderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	}))
	defer ts.Close()

	s := NewResendSender("re_test")
	base, err := url.Parse(ts.URL + "/")
	require.NoError(t, err)
	s.client.BaseURL = base

	_, err = s.Send(context.Background(), &Message{From: "x", To: []string{"y@example.com"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid from field")
}
